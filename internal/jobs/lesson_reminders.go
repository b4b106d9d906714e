package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/bot/menu"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/lessons"
	"github.com/ponyclub/telegram-lesson-bot/internal/observability"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	reminderHour  = 18 // локальное время, когда напоминаем про урок
	reminderBatch = 200
)

// LessonReminder возвращает джобу, которая раз в день вечером напоминает
// пользователям с доступом, что сегодняшний урок ещё не получен.
// Запускать с интервалом в час: джоба сама следит, чтобы не слать дважды.
func LessonReminder(bot *tgbotapi.BotAPI, database *sql.DB, loc *time.Location) Job {
	var lastSent time.Time // дата последней рассылки

	return func(ctx context.Context) error {
		now := time.Now().In(loc)
		if now.Hour() != reminderHour {
			return nil
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		if lastSent.Equal(today) {
			return nil
		}

		ids, err := db.ListDueForReminder(ctx, database, today, lessons.Count(), reminderBatch)
		if err != nil {
			observability.CaptureErr(err)
			return err
		}
		for _, chatID := range ids {
			msg := tgbotapi.NewMessage(chatID, "🐴 Сегодняшний урок ждёт вас! Нажмите «"+menu.BtnContinue+"», чтобы продолжить курс.")
			if _, err := tg.Send(bot, msg); err != nil {
				// пользователь мог заблокировать бота — не считаем это ошибкой джобы
				continue
			}
		}
		lastSent = today
		return nil
	}
}
