package handlers

import (
	"context"
	"errors"

	"github.com/ponyclub/telegram-lesson-bot/internal/bot/menu"
	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/lessons"
	"github.com/ponyclub/telegram-lesson-bot/internal/metrics"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleStart — /start: начинаем (или начинаем заново) курс с первого урока.
// Повторный /start — осознанное поведение: прогресс сбрасывается на урок 1.
func HandleStart(ctx context.Context, bot *tgbotapi.BotAPI, eng *course.Engine, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	lesson, err := eng.Start(ctx, chatID)
	switch {
	case err == nil:
		metrics.LessonsServed.Inc()
		reply := tgbotapi.NewMessage(chatID, lessons.Render(lesson))
		reply.ReplyMarkup = menu.Main()
		_, _ = tg.Send(bot, reply)
	case errors.Is(err, course.ErrAccessDenied):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, activateHint))
	default:
		replyInternalError(bot, chatID, err)
	}
}
