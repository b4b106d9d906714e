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

// GetCode возвращает код активации или nil, если такого кода нет.
func GetCode(ctx context.Context, database *sql.DB, code string) (*models.AccessCode, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	row := database.QueryRowContext(ctx, `
SELECT code, is_used, used_by, used_at, created_at
FROM access_codes WHERE code = $1`, code)

	var c models.AccessCode
	var usedBy sql.NullInt64
	var usedAt sql.NullTime
	err := row.Scan(&c.Code, &c.IsUsed, &usedBy, &usedAt, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get code %q: %w", code, err)
	}
	if usedBy.Valid {
		v := usedBy.Int64
		c.UsedBy = &v
	}
	if usedAt.Valid {
		t := usedAt.Time
		c.UsedAt = &t
	}
	return &c, nil
}

// RedeemCode атомарно гасит код и выдаёт доступ. Возвращает false, если код
// не найден или уже погашен (в том числе параллельным запросом): условный
// UPDATE с проверкой затронутых строк — два конкурентных погашения одного
// кода не могут пройти оба. Прогресс уже существующего пользователя не
// трогаем, новому ставим первый урок.
func RedeemCode(ctx context.Context, database *sql.DB, code string, telegramID int64, today time.Time) (bool, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin redeem: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
UPDATE access_codes SET is_used = TRUE, used_by = $2, used_at = now()
WHERE code = $1 AND is_used = FALSE`, code, telegramID)
	if err != nil {
		return false, fmt.Errorf("mark code used: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO users (telegram_id, has_access, current_lesson, last_lesson_date)
VALUES ($1, TRUE, 1, $2)
ON CONFLICT (telegram_id) DO UPDATE SET has_access = TRUE, updated_at = now()`, telegramID, today)
	if err != nil {
		return false, fmt.Errorf("grant access %d: %w", telegramID, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit redeem: %w", err)
	}
	return true, nil
}

// InsertCodes добавляет пачку кодов, пропуская дубликаты.
// Возвращает число реально вставленных.
func InsertCodes(ctx context.Context, database *sql.DB, codes []string) (int, error) {
	ctx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert codes: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, c := range codes {
		res, err := tx.ExecContext(ctx, `
INSERT INTO access_codes (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`, c)
		if err != nil {
			return 0, fmt.Errorf("insert code %q: %w", c, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert codes: %w", err)
	}
	return inserted, nil
}
