package handlers

import (
	"github.com/ponyclub/telegram-lesson-bot/internal/metrics"
	"github.com/ponyclub/telegram-lesson-bot/internal/observability"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const activateHint = "🔒 Доступ к курсу закрыт. Введите код активации: /activate <код>"

func replyInternalError(bot *tgbotapi.BotAPI, chatID int64, err error) {
	metrics.HandlerErrors.Inc()
	observability.CaptureErr(err)
	_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "⚠️ Что-то пошло не так. Попробуйте позже."))
}
