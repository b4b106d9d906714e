package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/lessons"
	"github.com/ponyclub/telegram-lesson-bot/internal/metrics"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleAdvance — кнопка «Продолжить»: выдаём следующий урок.
func HandleAdvance(ctx context.Context, bot *tgbotapi.BotAPI, eng *course.Engine, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	res, err := eng.Advance(ctx, chatID)
	switch {
	case err == nil && res.Completed:
		text := fmt.Sprintf("🎉 Поздравляем! Вы прошли все %d уроков курса.", lessons.Count())
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, text))
	case err == nil:
		metrics.LessonsServed.Inc()
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, lessons.Render(res.Lesson)))
	case errors.Is(err, course.ErrNoSuchUser):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "Нажмите /start, чтобы начать курс."))
	case errors.Is(err, course.ErrAccessDenied):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, activateHint))
	case errors.Is(err, course.ErrTooSoon):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "⏳ Урок на сегодня вы уже получили. Возвращайтесь завтра!"))
	default:
		replyInternalError(bot, chatID, err)
	}
}
