package course

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/lessons"
)

var (
	ErrNoSuchUser   = errors.New("пользователь не найден")
	ErrAccessDenied = errors.New("нет доступа к курсу")
	ErrTooSoon      = errors.New("урок сегодня уже выдан")
)

// Result — итог выдачи урока. Completed означает, что курс пройден;
// в этом случае Lesson пустой.
type Result struct {
	Lesson    lessons.Lesson
	Index     int
	Completed bool
}

// Status — текущее положение пользователя в курсе.
type Status struct {
	CurrentLesson  int
	Total          int
	Percent        int
	LastLessonDate *time.Time
	Completed      bool
}

// Engine ведёт продвижение по курсу: номер текущего урока только растёт
// (или сбрасывается на 1 через Start), значение Total+1 — «курс пройден».
type Engine struct {
	DB  *sql.DB
	Loc *time.Location

	// DailyLimit включает правило «не больше одного урока в день».
	// По умолчанию выключено.
	DailyLimit bool
}

// Start всегда начинает курс заново: сбрасывает прогресс на первый урок
// независимо от того, докуда пользователь дошёл.
func (e *Engine) Start(ctx context.Context, telegramID int64) (lessons.Lesson, error) {
	u, err := db.GetUserByTelegramID(ctx, e.DB, telegramID)
	if err != nil {
		return lessons.Lesson{}, err
	}
	if u == nil || !u.HasAccess {
		return lessons.Lesson{}, ErrAccessDenied
	}

	if err := db.SetProgress(ctx, e.DB, telegramID, 1, e.today()); err != nil {
		return lessons.Lesson{}, err
	}
	l, _ := lessons.Get(1)
	return l, nil
}

// Advance выдаёт следующий урок. На последнем уроке переход в состояние
// «курс пройден» и его объявление происходят одним вызовом; дальше Advance
// ничего не меняет и повторяет поздравление.
func (e *Engine) Advance(ctx context.Context, telegramID int64) (Result, error) {
	u, err := db.GetUserByTelegramID(ctx, e.DB, telegramID)
	if err != nil {
		return Result{}, err
	}
	if u == nil {
		return Result{}, ErrNoSuchUser
	}
	if !u.HasAccess {
		return Result{}, ErrAccessDenied
	}

	total := lessons.Count()
	if u.CurrentLesson > total {
		return Result{Completed: true}, nil
	}

	today := e.today()
	if e.DailyLimit && u.LastLessonDate != nil && sameDay(*u.LastLessonDate, today) {
		return Result{}, ErrTooSoon
	}

	if u.CurrentLesson == total {
		if err := db.SetProgress(ctx, e.DB, telegramID, total+1, today); err != nil {
			return Result{}, err
		}
		return Result{Completed: true}, nil
	}

	// Урок 1 уже показан при /start, поэтому следующим всегда идёт
	// current_lesson + 1.
	next := u.CurrentLesson + 1
	if err := db.SetProgress(ctx, e.DB, telegramID, next, today); err != nil {
		return Result{}, err
	}
	l, _ := lessons.Get(next)
	return Result{Lesson: l, Index: next}, nil
}

// GetStatus — чистое чтение, прогресс не меняет.
func (e *Engine) GetStatus(ctx context.Context, telegramID int64) (Status, error) {
	u, err := db.GetUserByTelegramID(ctx, e.DB, telegramID)
	if err != nil {
		return Status{}, err
	}
	if u == nil {
		return Status{}, ErrNoSuchUser
	}

	total := lessons.Count()
	return Status{
		CurrentLesson:  u.CurrentLesson,
		Total:          total,
		Percent:        Percent(u.CurrentLesson, total),
		LastLessonDate: u.LastLessonDate,
		Completed:      u.CurrentLesson > total,
	}, nil
}

// Percent — round(100 * current / total).
func Percent(current, total int) int {
	return int(math.Round(100 * float64(current) / float64(total)))
}

func (e *Engine) today() time.Time {
	now := time.Now().In(e.Loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.Loc)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
