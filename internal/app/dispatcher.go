package app

import (
	"context"
	"database/sql"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/bot/handlers"
	"github.com/ponyclub/telegram-lesson-bot/internal/bot/menu"
	"github.com/ponyclub/telegram-lesson-bot/internal/config"
	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/ctxutil"
	"github.com/ponyclub/telegram-lesson-bot/internal/metrics"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Dispatcher раскладывает входящие сообщения по обработчикам. Состояния
// между сообщениями не хранит: каждый хендлер перечитывает всё из БД,
// поэтому их можно выполнять параллельно для разных чатов.
type Dispatcher struct {
	Bot    *tgbotapi.BotAPI
	DB     *sql.DB
	Gate   *access.Gate
	Course *course.Engine
	Cfg    *config.Config

	limiter *ChatLimiter
}

func NewDispatcher(bot *tgbotapi.BotAPI, database *sql.DB, gate *access.Gate, eng *course.Engine, cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		Bot:     bot,
		DB:      database,
		Gate:    gate,
		Course:  eng,
		Cfg:     cfg,
		limiter: NewChatLimiter(),
	}
}

// HandleUpdate обрабатывает один апдейт. Дубли из одного чата
// сериализуются через ChatLimiter.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	metrics.BotUpdates.Inc()

	unlock := d.limiter.Lock(msg.Chat.ID)
	defer unlock()

	ctx = ctxutil.WithChatID(ctx, msg.Chat.ID)
	d.route(ctx, msg)
}

func (d *Dispatcher) route(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			handlers.HandleStart(ctxutil.WithOp(ctx, "start"), d.Bot, d.Course, msg)
		case "activate":
			handlers.HandleActivate(ctxutil.WithOp(ctx, "activate"), d.Bot, d.Gate, msg, msg.CommandArguments())
		case "status":
			handlers.HandleStatus(ctxutil.WithOp(ctx, "status"), d.Bot, d.Course, msg)
		case "continue":
			handlers.HandleAdvance(ctxutil.WithOp(ctx, "advance"), d.Bot, d.Course, msg)
		case "gencodes":
			if d.Cfg.IsAdmin(msg.Chat.ID) {
				handlers.HandleGenCodes(ctxutil.WithOp(ctx, "gencodes"), d.Bot, d.DB, msg, msg.CommandArguments())
				return
			}
			d.unknown(msg.Chat.ID)
		default:
			d.unknown(msg.Chat.ID)
		}
		return
	}

	switch msg.Text {
	case menu.BtnContinue, "Continue", "Продолжить":
		handlers.HandleAdvance(ctxutil.WithOp(ctx, "advance"), d.Bot, d.Course, msg)
	case menu.BtnStatus:
		handlers.HandleStatus(ctxutil.WithOp(ctx, "status"), d.Bot, d.Course, msg)
	default:
		d.unknown(msg.Chat.ID)
	}
}

func (d *Dispatcher) unknown(chatID int64) {
	_, _ = tg.Send(d.Bot, tgbotapi.NewMessage(chatID, "⚠️ Неизвестная команда. Используйте /start"))
}
