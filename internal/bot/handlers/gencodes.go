package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/export"
	"github.com/ponyclub/telegram-lesson-bot/internal/tg"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	codePrefix  = "PON"
	maxGenBatch = 500
)

// HandleGenCodes — админская команда /gencodes <N>: выпускает пачку кодов
// и присылает их файлом.
func HandleGenCodes(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message, args string) {
	chatID := msg.Chat.ID

	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 1 || n > maxGenBatch {
		_, _ = tg.Send(bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("Укажите количество от 1 до %d: /gencodes 50", maxGenBatch)))
		return
	}

	codes := access.GenerateCodes(n, codePrefix)
	inserted, err := db.InsertCodes(ctx, database, codes)
	if err != nil {
		replyInternalError(bot, chatID, err)
		return
	}

	now := time.Now()
	buf, name, err := export.CodesWorkbook(codes, now)
	if err != nil {
		replyInternalError(bot, chatID, err)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	doc.Caption = fmt.Sprintf("Выпущено кодов: %d", inserted)
	_, _ = tg.Send(bot, doc)
}
