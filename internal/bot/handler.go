package bot

import (
	"fmt"
	"log"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"leadbot/internal/grok"
	"leadbot/internal/store"
)

type Bot struct {
	api *tele.Bot
	db  *store.DB
	cfg Config
	ai  *grok.Client

	// notify delivers a Markdown message to the admin chat.
	// Swappable so handler tests can record instead of hitting the API.
	notify func(text string) error
}

type Config struct {
	Token   string
	AdminID int64
}

func New(cfg Config, db *store.DB, ai *grok.Client) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	// Drop updates accumulated while the bot was down.
	if err := b.RemoveWebhook(true); err != nil {
		log.Printf("⚠ drop pending updates: %v", err)
	}

	bot := &Bot{api: b, db: db, cfg: cfg, ai: ai}
	bot.notify = func(text string) error {
		_, err := b.Send(&tele.User{ID: cfg.AdminID}, text, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
		return err
	}
	bot.register()
	return bot, nil
}

func (b *Bot) Start() {
	fmt.Printf("Bot started: %s\n", b.api.Me.Username)
	b.api.Start()
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/stats", b.handleStats)

	b.api.Handle(tele.OnContact, b.handleContact)

	// Buttons, manual phone numbers and free text all arrive here.
	b.api.Handle(tele.OnText, b.handleText)
}

func (b *Bot) handleStart(c tele.Context) error {
	b.track(c, store.ButtonOther)
	return c.Send(
		"Привет! Я бот компании.\nВыбери нужный раздел на клавиатуре.",
		b.mainKeyboard(c.Sender().ID),
	)
}

// /stats: all-time totals from the aggregate table.
func (b *Bot) handleStats(c tele.Context) error {
	t, err := b.db.Stats()
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"📊 *Статистика бота*\n\n"+
			"Всего пользователей: *%d*\n"+
			"Нажатий кнопки «О нас»: *%d*\n"+
			"Нажатий кнопки «Кейсы»: *%d*\n"+
			"Всего сообщений: *%d*",
		t.Users, t.About, t.Cases, t.Messages,
	)
	return c.Send(text, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}

func (b *Bot) handleContact(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Contact == nil || msg.Contact.PhoneNumber == "" {
		return nil
	}
	return b.acceptLead(c, msg.Contact.PhoneNumber)
}

func (b *Bot) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	switch text {
	case btnAbout:
		b.track(c, store.ButtonAbout)
		return c.Send(
			"🧾 *О нас*\n\n"+
				"Мы создаём телеграм-ботов и автоматизируем бизнес-процессы.\n"+
				"Помогаем компаниям экономить время и увеличивать продажи.",
			&tele.SendOptions{ParseMode: tele.ModeMarkdown},
		)

	case btnCases:
		b.track(c, store.ButtonCases)
		cases := "📌 *Кейсы*\n\n" +
			"1. Бот для поддержки клиентов — сократил нагрузку на операторов на 40%.\n" +
			"2. Бот для заявок в отдел продаж — ускорил обработку лидов в 2 раза.\n" +
			"3. Внутренний бот-комбайн — автоматизировал рутинные задачи в команде.\n\n" +
			"💡 *Хотите получить наш продукт?*\n\n" +
			"Это очень просто! Оставьте заявку, указав ваш номер телефона, " +
			"и мы свяжемся с вами в ближайшее время."
		if err := c.Send(cases, &tele.SendOptions{ParseMode: tele.ModeMarkdown}); err != nil {
			return err
		}
		return c.Send(
			"Пожалуйста, отправьте ваш номер телефона для связи.\n"+
				"Вы можете нажать кнопку ниже или ввести номер вручную.",
			contactKeyboard(),
		)

	case btnStats:
		// Button is hidden from non-admins, but check again anyway.
		if c.Sender().ID != b.cfg.AdminID {
			b.track(c, store.ButtonOther)
			return c.Send("Эта функция доступна только админу.")
		}
		b.track(c, store.ButtonOther)
		t, err := b.db.WindowStats(30)
		if err != nil {
			return err
		}
		return c.Send(fmt.Sprintf(
			"📊 *Статистика за последние 30 дней*\n\n"+
				"Пользователей взаимодействовало: *%d*\n"+
				"Нажатий «О нас»: *%d*\n"+
				"Нажатий «Кейсы»: *%d*\n"+
				"Всего сообщений: *%d*",
			t.Users, t.About, t.Cases, t.Messages,
		), &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	}

	// A manually typed phone number is a lead, not a question.
	if IsPhoneNumber(text) {
		return b.acceptLead(c, text)
	}

	b.track(c, store.ButtonOther)
	return b.answerFreeText(c, text)
}

// acceptLead stores the application, notifies the admin and thanks the user.
// Shared by the contact button and manually typed numbers.
func (b *Bot) acceptLead(c tele.Context, phone string) error {
	sender := c.Sender()
	u := store.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}

	if err := b.db.SaveApplication(u, phone); err != nil {
		return err
	}

	if err := b.notify(leadCard(u, phone)); err != nil {
		log.Printf("⚠ admin notify failed: %v", err)
	}

	if err := c.Send(
		"✅ Спасибо за ваше обращение!\n\n" +
			"Мы получили вашу заявку и свяжемся с вами в ближайшее время.",
	); err != nil {
		return err
	}
	return c.Send("Выберите нужный раздел на клавиатуре.", b.mainKeyboard(u.ID))
}

func leadCard(u store.User, phone string) string {
	return fmt.Sprintf(
		"🔔 *Новая заявка*\n\n"+
			"Пользователь оставил заявку на получение продукта.\n\n"+
			"👤 *Информация о пользователе:*\n"+
			"ID: `%d`\n"+
			"Имя: %s\n"+
			"Фамилия: %s\n"+
			"Username: @%s\n\n"+
			"📞 *Телефон:* `%s`\n\n"+
			"⏰ Время заявки: %s\n\n"+
			"Пожалуйста, свяжитесь с клиентом как можно скорее!",
		u.ID,
		orDefault(u.FirstName, "не указано"),
		orDefault(u.LastName, "не указано"),
		orDefault(u.Username, "не указан"),
		phone,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
}

func (b *Bot) track(c tele.Context, button string) {
	sender := c.Sender()
	if sender == nil {
		return
	}
	u := store.User{
		ID:        sender.ID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
	}
	if err := b.db.TrackInteraction(u, button); err != nil {
		log.Printf("⚠ track interaction: %v", err)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
