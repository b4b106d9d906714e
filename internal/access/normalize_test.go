package access

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"pon-abcd1234":     "PON-ABCD1234",
		"  PON-ABCD1234  ": "PON-ABCD1234",
		"\tpon-AbCd1234\n": "PON-ABCD1234",
		"":                 "",
		"   ":              "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, ожидали %q", in, got, want)
		}
	}
}

func TestGenerateCodes(t *testing.T) {
	codes := GenerateCodes(100, "pon")
	if len(codes) != 100 {
		t.Fatalf("ожидали 100 кодов, получили %d", len(codes))
	}
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		if len(c) != len("PON-")+codeLength {
			t.Fatalf("неожиданная длина кода %q", c)
		}
		if c[:4] != "PON-" {
			t.Fatalf("код %q без префикса PON-", c)
		}
		if c != Normalize(c) {
			t.Fatalf("код %q не в каноническом виде", c)
		}
		if seen[c] {
			t.Fatalf("дубликат кода %q в одной пачке", c)
		}
		seen[c] = true
	}
}
