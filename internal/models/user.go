package models

import "time"

// User — участница курса. current_lesson указывает на следующий/текущий урок,
// значение N+1 означает «курс пройден».
type User struct {
	ID             int64
	TelegramID     int64
	HasAccess      bool
	CurrentLesson  int
	LastLessonDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
