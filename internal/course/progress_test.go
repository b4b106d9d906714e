//go:build testutil
// +build testutil

package course_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/lessons"
	"github.com/ponyclub/telegram-lesson-bot/internal/testutil/testdb"
)

func activate(t *testing.T, database *sql.DB, userID int64, code string) {
	t.Helper()
	ctx := context.Background()
	if _, err := db.InsertCodes(ctx, database, []string{code}); err != nil {
		t.Fatal(err)
	}
	gate := &access.Gate{DB: database, Loc: time.UTC}
	if err := gate.Redeem(ctx, userID, code); err != nil {
		t.Fatal(err)
	}
}

func TestStartAlwaysResetsToFirstLesson(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	eng := &course.Engine{DB: h.DB, Loc: time.UTC}
	activate(t, h.DB, 1, "PON-START001")

	first, err := eng.Start(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := lessons.Get(1)
	if first.Title != want.Title {
		t.Fatalf("после /start ожидали урок 1, получили %q", first.Title)
	}

	// продвинемся и начнём заново
	if _, err := eng.Advance(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Advance(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Start(ctx, 1); err != nil {
		t.Fatal(err)
	}
	u, err := db.GetUserByTelegramID(ctx, h.DB, 1)
	if err != nil || u == nil {
		t.Fatal(err)
	}
	if u.CurrentLesson != 1 {
		t.Fatalf("повторный /start должен сбросить на урок 1, а не %d", u.CurrentLesson)
	}
}

func TestStartWithoutAccess(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	eng := &course.Engine{DB: h.DB, Loc: time.UTC}

	if _, err := eng.Start(ctx, 999); !errors.Is(err, course.ErrAccessDenied) {
		t.Fatalf("без записи о пользователе ожидали ErrAccessDenied, получили %v", err)
	}

	// запись есть, но доступ не выдан
	if _, err := h.DB.ExecContext(ctx, `
		INSERT INTO users (telegram_id, has_access) VALUES (999, FALSE)`); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Start(ctx, 999); !errors.Is(err, course.ErrAccessDenied) {
		t.Fatalf("без доступа ожидали ErrAccessDenied, получили %v", err)
	}
	if _, err := eng.Advance(ctx, 999); !errors.Is(err, course.ErrAccessDenied) {
		t.Fatalf("Advance без доступа: ожидали ErrAccessDenied, получили %v", err)
	}
	u, err := db.GetUserByTelegramID(ctx, h.DB, 999)
	if err != nil || u == nil {
		t.Fatal(err)
	}
	if u.CurrentLesson != 1 || u.LastLessonDate != nil {
		t.Fatalf("отказ в доступе не должен менять состояние: %+v", u)
	}
}

func TestAdvanceLadderToCompletion(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	eng := &course.Engine{DB: h.DB, Loc: time.UTC}
	activate(t, h.DB, 2, "PON-LADDER01")

	if _, err := eng.Start(ctx, 2); err != nil {
		t.Fatal(err)
	}

	total := lessons.Count()
	// первый Advance после /start даёт урок 2, дальше по порядку
	for want := 2; want <= total; want++ {
		res, err := eng.Advance(ctx, 2)
		if err != nil {
			t.Fatalf("advance до урока %d: %v", want, err)
		}
		if res.Completed {
			t.Fatalf("курс закончился раньше времени на уроке %d", want)
		}
		if res.Index != want {
			t.Fatalf("ожидали урок %d, получили %d", want, res.Index)
		}
	}

	// на последнем уроке: переход в N+1 и объявление финиша одним вызовом
	res, err := eng.Advance(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Completed {
		t.Fatal("после последнего урока ожидали завершение курса")
	}
	u, _ := db.GetUserByTelegramID(ctx, h.DB, 2)
	if u.CurrentLesson != total+1 {
		t.Fatalf("ожидали current_lesson = %d, получили %d", total+1, u.CurrentLesson)
	}

	// дальше — идемпотентно, без мутаций
	before := *u
	res, err = eng.Advance(ctx, 2)
	if err != nil || !res.Completed {
		t.Fatalf("повторный advance после финиша: %v %v", res, err)
	}
	after, _ := db.GetUserByTelegramID(ctx, h.DB, 2)
	if after.CurrentLesson != before.CurrentLesson || !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatal("advance после финиша не должен ничего менять")
	}
}

func TestAdvanceNoSuchUser(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	eng := &course.Engine{DB: h.DB, Loc: time.UTC}
	if _, err := eng.Advance(context.Background(), 12345); !errors.Is(err, course.ErrNoSuchUser) {
		t.Fatalf("ожидали ErrNoSuchUser, получили %v", err)
	}
}

func TestStatusIsPureRead(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	eng := &course.Engine{DB: h.DB, Loc: time.UTC}

	if _, err := eng.GetStatus(ctx, 3); !errors.Is(err, course.ErrNoSuchUser) {
		t.Fatalf("ожидали ErrNoSuchUser, получили %v", err)
	}

	activate(t, h.DB, 3, "PON-STATUS01")

	for i := 0; i < 3; i++ {
		st, err := eng.GetStatus(ctx, 3)
		if err != nil {
			t.Fatal(err)
		}
		if st.CurrentLesson != 1 || st.Total != lessons.Count() || st.Percent != 10 {
			t.Fatalf("ожидали урок 1 из 10 (10%%), получили %+v", st)
		}
	}
	u, _ := db.GetUserByTelegramID(ctx, h.DB, 3)
	if u.CurrentLesson != 1 {
		t.Fatalf("status изменил состояние: %+v", u)
	}
}

func TestDailyLimit(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	activate(t, h.DB, 4, "PON-DAILY001")

	// по умолчанию ограничение выключено: можно идти подряд
	free := &course.Engine{DB: h.DB, Loc: time.UTC}
	if _, err := free.Start(ctx, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := free.Advance(ctx, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := free.Advance(ctx, 4); err != nil {
		t.Fatal(err)
	}

	// с включённым лимитом второй урок в тот же день не выдаётся
	limited := &course.Engine{DB: h.DB, Loc: time.UTC, DailyLimit: true}
	if _, err := limited.Advance(ctx, 4); !errors.Is(err, course.ErrTooSoon) {
		t.Fatalf("ожидали ErrTooSoon, получили %v", err)
	}

	// вчерашняя дата — можно
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	if err := db.SetProgress(ctx, h.DB, 4, 3, yesterday); err != nil {
		t.Fatal(err)
	}
	res, err := limited.Advance(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.Index != 4 {
		t.Fatalf("ожидали урок 4, получили %d", res.Index)
	}
}
