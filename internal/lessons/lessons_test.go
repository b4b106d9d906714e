package lessons

import (
	"strings"
	"testing"
)

func TestCourseShape(t *testing.T) {
	if Count() != 10 {
		t.Fatalf("в курсе должно быть 10 уроков, а не %d", Count())
	}
	for i := 1; i <= Count(); i++ {
		l, ok := Get(i)
		if !ok {
			t.Fatalf("урок %d не найден", i)
		}
		if l.Title == "" || l.Text == "" || l.Homework == "" {
			t.Fatalf("урок %d неполный: %+v", i, l)
		}
	}
	if _, ok := Get(0); ok {
		t.Fatal("Get(0) не должен возвращать урок")
	}
	if _, ok := Get(Count() + 1); ok {
		t.Fatal("Get за границей курса не должен возвращать урок")
	}
}

func TestRenderDeterministic(t *testing.T) {
	for i := 1; i <= Count(); i++ {
		l, _ := Get(i)
		a := Render(l)
		b := Render(l)
		if a != b {
			t.Fatalf("рендер урока %d недетерминирован", i)
		}
	}
}

func TestRenderContents(t *testing.T) {
	l, _ := Get(1)
	out := Render(l)

	if !strings.HasPrefix(out, "📖 "+l.Title) {
		t.Fatalf("рендер должен начинаться с заголовка, получили: %q", out[:40])
	}
	if !strings.Contains(out, l.Text) {
		t.Fatal("в рендере нет текста урока")
	}
	for i, m := range l.Materials {
		if !strings.Contains(out, m.Title) || !strings.Contains(out, m.URL) {
			t.Fatalf("в рендере нет материала %d (%s)", i+1, m.Title)
		}
	}
	// материалы идут в сохранённом порядке
	if len(l.Materials) >= 2 {
		first := strings.Index(out, l.Materials[0].Title)
		second := strings.Index(out, l.Materials[1].Title)
		if first == -1 || second == -1 || first > second {
			t.Fatal("материалы перепутаны местами")
		}
	}
	if !strings.Contains(out, l.Homework) || !strings.Contains(out, l.HomeworkURL) {
		t.Fatal("в рендере нет домашнего задания")
	}
	if l.Extra != "" && !strings.Contains(out, l.Extra) {
		t.Fatal("в рендере нет дополнительного текста")
	}
}

func TestRenderOptionalExtra(t *testing.T) {
	l := Lesson{Title: "Т", Text: "т", Homework: "дз"}
	out := Render(l)
	if strings.Contains(out, "📎") {
		t.Fatal("блок материалов не должен появляться без материалов")
	}
}
