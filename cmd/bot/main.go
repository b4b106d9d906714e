package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/app"
	"github.com/ponyclub/telegram-lesson-bot/internal/config"
	"github.com/ponyclub/telegram-lesson-bot/internal/course"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/jobs"
	"github.com/ponyclub/telegram-lesson-bot/internal/logging"
	"github.com/ponyclub/telegram-lesson-bot/internal/observability"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

const release = "lessonbot@dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Конфигурация: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Логгер: %v", err)
	}
	defer lg.Closer()

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		lg.Sugar.Fatalw("bot init", "err", err)
	}
	lg.Sugar.Infow("бот запущен", "username", bot.Self.UserName)

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		lg.Sugar.Fatalw("db connect", "err", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		lg.Sugar.Fatalw("db migrate", "err", err)
	}

	app.StartHTTP(ctx, cfg.HTTPAddr, database)

	gate := &access.Gate{DB: database, Loc: cfg.Location}
	engine := &course.Engine{DB: database, Loc: cfg.Location, DailyLimit: cfg.DailyLimit}
	dispatcher := app.NewDispatcher(bot, database, gate, engine, cfg)

	runner := jobs.New(ctx)
	runner.Every(time.Hour, "lesson_reminders", jobs.LessonReminder(bot, database, cfg.Location))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			lg.Sugar.Info("остановка по сигналу")
			bot.StopReceivingUpdates()
			return
		case update := <-updates:
			go dispatcher.HandleUpdate(ctx, update)
		}
	}
}
