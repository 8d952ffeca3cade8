package predicate

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"The Matrix":  "MATRIX",
		"Amélie":      "AMELIE",
		"Léon":        "LEON",
		"A Bug's Life": "BUGSLIFE",
		"Se7en":       "SE7EN",
		"  Up  ":      "UP",
	}
	for in, want := range cases {
		if got := NormalizeTitle(in); got != want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleBucket(t *testing.T) {
	cases := map[string]string{
		"MATRIX": "I-M",
		"AMELIE": "A-D",
		"ZOOLANDER": "S-Z",
		"7EVEN":  "0-9",
		"":       "",
		"FARGO":  "E-H",
		"RONIN":  "N-R",
	}
	for in, want := range cases {
		if got := TitleBucket(in); got != want {
			t.Errorf("TitleBucket(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Christopher Nolan", "nolan") {
		t.Error("expected case-insensitive match")
	}
	if ContainsFold("Christopher Nolan", "spielberg") {
		t.Error("expected no match")
	}
}
