package bot

import (
	tele "gopkg.in/telebot.v3"
)

// Reply-keyboard button labels. handleText matches on these.
const (
	btnAbout = "О нас"
	btnCases = "Кейсы"
	btnStats = "Статистика"
)

// mainKeyboard builds the persistent menu. The stats button is admin-only.
func (b *Bot) mainKeyboard(userID int64) *tele.ReplyMarkup {
	kb := &tele.ReplyMarkup{ResizeKeyboard: true}
	about := kb.Text(btnAbout)
	cases := kb.Text(btnCases)

	if userID == b.cfg.AdminID {
		kb.Reply(kb.Row(about, cases, kb.Text(btnStats)))
	} else {
		kb.Reply(kb.Row(about, cases))
	}
	return kb
}

// contactKeyboard offers the one-time "share my phone number" button.
func contactKeyboard() *tele.ReplyMarkup {
	kb := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	kb.Reply(kb.Row(kb.Contact("📞 Отправить контакт")))
	return kb
}
