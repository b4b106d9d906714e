package handlers

import (
	"context"
	"errors"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/bot/menu"
	"github.com/ponyclub/telegram-lesson-bot/internal/metrics"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleActivate — /activate <код>: гасим одноразовый код и открываем доступ.
func HandleActivate(ctx context.Context, bot *tgbotapi.BotAPI, gate *access.Gate, msg *tgbotapi.Message, rawCode string) {
	chatID := msg.Chat.ID

	err := gate.Redeem(ctx, chatID, rawCode)
	switch {
	case err == nil:
		metrics.Activations.Inc()
		reply := tgbotapi.NewMessage(chatID, "✅ Код принят, доступ к курсу открыт!\nНажмите /start, чтобы получить первый урок.")
		reply.ReplyMarkup = menu.Main()
		_, _ = tg.Send(bot, reply)
	case errors.Is(err, access.ErrCodeMissing):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "Укажите код после команды, например: /activate PON-ABCD1234"))
	case errors.Is(err, access.ErrCodeNotFound):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "❌ Такой код не найден. Проверьте написание и попробуйте ещё раз."))
	case errors.Is(err, access.ErrCodeAlreadyUsed):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "❌ Этот код уже использован."))
	default:
		replyInternalError(bot, chatID, err)
	}
}
