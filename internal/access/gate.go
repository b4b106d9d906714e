package access

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/db"
)

var (
	ErrCodeMissing     = errors.New("код активации не указан")
	ErrCodeNotFound    = errors.New("код активации не найден")
	ErrCodeAlreadyUsed = errors.New("код активации уже использован")
)

// Gate гасит одноразовые коды и проверяет доступ к курсу.
// Никакого состояния между вызовами не держит.
type Gate struct {
	DB  *sql.DB
	Loc *time.Location
}

// Normalize приводит код к каноническому виду: обрезает пробелы,
// поднимает регистр.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Redeem гасит код и выдаёт пользователю доступ. Всё или ничего: если
// отметить код использованным или завести пользователя не удалось,
// код остаётся непогашенным.
func (g *Gate) Redeem(ctx context.Context, telegramID int64, rawCode string) error {
	code := Normalize(rawCode)
	if code == "" {
		return ErrCodeMissing
	}

	ok, err := db.RedeemCode(ctx, g.DB, code, telegramID, g.today())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	// UPDATE ничего не затронул: кода нет либо он уже погашен
	// (возможно, параллельным запросом). Коды не удаляются и не
	// «разгашаются», так что повторное чтение здесь безопасно.
	c, err := db.GetCode(ctx, g.DB, code)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCodeNotFound
	}
	return ErrCodeAlreadyUsed
}

// CheckAccess — есть ли у пользователя доступ. Нет записи — нет доступа.
func (g *Gate) CheckAccess(ctx context.Context, telegramID int64) (bool, error) {
	u, err := db.GetUserByTelegramID(ctx, g.DB, telegramID)
	if err != nil {
		return false, err
	}
	return u != nil && u.HasAccess, nil
}

func (g *Gate) today() time.Time {
	now := time.Now().In(g.Loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, g.Loc)
}
