package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleStatus — /status: где пользователь находится в курсе. Только чтение.
func HandleStatus(ctx context.Context, bot *tgbotapi.BotAPI, eng *course.Engine, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	st, err := eng.GetStatus(ctx, chatID)
	switch {
	case err == nil:
		var text string
		if st.Completed {
			text = fmt.Sprintf("🎉 Курс пройден: все %d уроков позади!", st.Total)
		} else {
			text = fmt.Sprintf("📚 Текущий урок: %d из %d (%d%%)", st.CurrentLesson, st.Total, st.Percent)
		}
		if st.LastLessonDate != nil {
			text += fmt.Sprintf("\nПоследний урок выдан: %s", st.LastLessonDate.Format("02.01.2006"))
		}
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, text))
	case errors.Is(err, course.ErrNoSuchUser):
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, "Нажмите /start, чтобы начать курс."))
	default:
		replyInternalError(bot, chatID, err)
	}
}
