package course

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		current, total, want int
	}{
		{1, 10, 10},
		{5, 10, 50},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
	}
	for _, c := range cases {
		if got := Percent(c.current, c.total); got != c.want {
			t.Errorf("Percent(%d, %d) = %d, ожидали %d", c.current, c.total, got, c.want)
		}
	}
}
