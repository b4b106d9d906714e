package lessons

import (
	"fmt"
	"strings"
)

// Render собирает текст урока в одно сообщение. Чистая функция:
// один и тот же урок всегда даёт один и тот же текст.
func Render(l Lesson) string {
	var b strings.Builder

	b.WriteString("📖 ")
	b.WriteString(l.Title)
	b.WriteString("\n\n")
	b.WriteString(l.Text)

	if len(l.Materials) > 0 {
		b.WriteString("\n\n📎 Материалы:")
		for i, m := range l.Materials {
			fmt.Fprintf(&b, "\n%d. %s — %s", i+1, m.Title, m.URL)
		}
	}

	if l.Homework != "" {
		b.WriteString("\n\n📝 Домашнее задание:\n")
		b.WriteString(l.Homework)
		if l.HomeworkURL != "" {
			b.WriteString("\n")
			b.WriteString(l.HomeworkURL)
		}
	}

	if l.Extra != "" {
		b.WriteString("\n\n")
		b.WriteString(l.Extra)
	}

	return b.String()
}
