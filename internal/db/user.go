package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/ctxutil"
	"github.com/ponyclub/telegram-lesson-bot/internal/models"
)

// GetUserByTelegramID возвращает пользователя или nil, если записи нет.
func GetUserByTelegramID(ctx context.Context, database *sql.DB, telegramID int64) (*models.User, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	row := database.QueryRowContext(ctx, `
SELECT id, telegram_id, has_access, current_lesson, last_lesson_date, created_at, updated_at
FROM users WHERE telegram_id = $1`, telegramID)

	var u models.User
	var lastDate sql.NullTime
	err := row.Scan(&u.ID, &u.TelegramID, &u.HasAccess, &u.CurrentLesson, &lastDate, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", telegramID, err)
	}
	if lastDate.Valid {
		d := lastDate.Time
		u.LastLessonDate = &d
	}
	return &u, nil
}

// SetProgress записывает новый номер урока и дату выдачи.
func SetProgress(ctx context.Context, database *sql.DB, telegramID int64, lesson int, date time.Time) error {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	res, err := database.ExecContext(ctx, `
UPDATE users SET current_lesson = $2, last_lesson_date = $3, updated_at = now()
WHERE telegram_id = $1`, telegramID, lesson, date)
	if err != nil {
		return fmt.Errorf("set progress %d: %w", telegramID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set progress %d: %w", telegramID, sql.ErrNoRows)
	}
	return nil
}

// ListDueForReminder — telegram_id пользователей с доступом, которые ещё не
// прошли курс и сегодня урок не получали.
func ListDueForReminder(ctx context.Context, database *sql.DB, today time.Time, maxLesson, limit int) ([]int64, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	rows, err := database.QueryContext(ctx, `
SELECT telegram_id FROM users
WHERE has_access = TRUE
  AND current_lesson <= $2
  AND (last_lesson_date IS NULL OR last_lesson_date < $1)
ORDER BY id
LIMIT $3`, today, maxLesson, limit)
	if err != nil {
		return nil, fmt.Errorf("list due for reminder: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
