// Утилита массового выпуска кодов активации: вставляет их в БД
// и сохраняет список в xlsx рядом.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ponyclub/telegram-lesson-bot/internal/access"
	"github.com/ponyclub/telegram-lesson-bot/internal/db"
	"github.com/ponyclub/telegram-lesson-bot/internal/export"

	"github.com/joho/godotenv"
)

func main() {
	n := flag.Int("n", 50, "сколько кодов выпустить")
	prefix := flag.String("prefix", "PON", "префикс кода")
	out := flag.String("out", "", "путь к xlsx (по умолчанию codes_<дата>.xlsx)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL не задан")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		log.Fatalf("подключение к БД: %v", err)
	}
	defer database.Close()

	codes := access.GenerateCodes(*n, *prefix)
	inserted, err := db.InsertCodes(ctx, database, codes)
	if err != nil {
		log.Fatalf("вставка кодов: %v", err)
	}

	now := time.Now()
	buf, name, err := export.CodesWorkbook(codes, now)
	if err != nil {
		log.Fatalf("xlsx: %v", err)
	}
	if *out != "" {
		name = *out
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("запись файла: %v", err)
	}

	fmt.Printf("выпущено %d кодов, список: %s\n", inserted, name)
}
