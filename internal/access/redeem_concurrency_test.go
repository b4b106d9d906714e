//go:build testutil
// +build testutil

package access_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/testutil/testdb"
)

// Один код, 50 параллельных попыток — погашение должно пройти ровно один раз.
func TestRedeem_Parallel(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	gate := &access.Gate{DB: h.DB, Loc: time.UTC}

	if _, err := db.InsertCodes(ctx, h.DB, []string{"PON-RACE0001"}); err != nil {
		t.Fatal(err)
	}

	const attempts = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		taken   int
		unknown []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			err := gate.Redeem(ctx, userID, "pon-race0001")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, access.ErrCodeAlreadyUsed):
				taken++
			default:
				unknown = append(unknown, err)
			}
		}(int64(1000 + i))
	}
	wg.Wait()

	if len(unknown) > 0 {
		t.Fatalf("неожиданные ошибки: %v", unknown)
	}
	if wins != 1 {
		t.Fatalf("код должен погаситься ровно один раз, а погасился %d", wins)
	}
	if taken != attempts-1 {
		t.Fatalf("остальные попытки должны получить ErrCodeAlreadyUsed: %d из %d", taken, attempts-1)
	}
}
