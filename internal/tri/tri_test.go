package tri

import "testing"

func TestFromBool(t *testing.T) {
	if FromBool(true) != True {
		t.Error("FromBool(true) != True")
	}
	if FromBool(false) != False {
		t.Error("FromBool(false) != False")
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want Answer
	}{
		{"yes", Yes},
		{"y", Yes},
		{"no", No},
		{"n", No},
		{"unknown", AnswerUnknown},
		{"?", AnswerUnknown},
		{"probably_yes", ProbablyYes},
		{"py", ProbablyYes},
		{"probably_no", ProbablyNo},
		{"pn", ProbablyNo},
	}
	for _, tt := range tests {
		got, err := ParseAnswer(tt.in)
		if err != nil {
			t.Errorf("ParseAnswer(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnswer(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAnswerInvalid(t *testing.T) {
	if _, err := ParseAnswer("maybe"); err == nil {
		t.Error("expected error for invalid answer token")
	}
}

func TestStringers(t *testing.T) {
	if Tri(True).String() != "true" {
		t.Error("Tri(True).String() mismatch")
	}
	if Answer(Yes).String() != "yes" {
		t.Error("Answer(Yes).String() mismatch")
	}
}
