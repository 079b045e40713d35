package bot

import (
	"log"

	tele "gopkg.in/telebot.v3"

	"leadbot/internal/grok"
)

// answerFreeText routes anything that is not a button or a phone number.
// With no AI client configured the bot just points back at the menu.
func (b *Bot) answerFreeText(c tele.Context, question string) error {
	if b.ai == nil {
		return c.Send("Я тебя не понял. Пожалуйста, выбери одну из кнопок: «О нас» или «Кейсы».")
	}

	c.Notify(tele.Typing)

	reply, err := b.ai.Ask(question)
	if err != nil {
		log.Printf("[Grok xAI] Ошибка: %v", err)
		if msg := grok.UserMessage(err); msg != "" {
			return c.Send(msg)
		}
		return c.Send("Сейчас не удалось получить ответ. Попробуйте позже или выберите кнопку: «О нас» или «Кейсы».")
	}

	// Telegram caps messages around 4096 chars.
	if r := []rune(reply); len(r) > 4000 {
		reply = string(r[:3997]) + "..."
	}
	return c.Send(reply)
}
