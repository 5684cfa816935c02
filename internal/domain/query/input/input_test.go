package input

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Class
	}{
		{"1.", Code},
		{"1.2.3", Code},
		{"12", Code},
		{"  1.2.5  ", Code},
		{"007.10", Code},
		{"1.2a", Text},
		{"abc", Text},
		{"1..2", Text},
		{".1", Text},
		{"1.2..", Text},
		{"1 2", Text},
		{"1,2", Text},
		{"насос 1.2", Text},
		{"١٢", Text}, // non-ASCII digits are not code digits
		{"", Empty},
		{"   \t\n", Empty},
		{"\ufeff1.2", Code},
		{"\ufeff", Empty},
		{"\u00a01.2\u00a0", Code},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			if got := Classify(tc.raw); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestIsCode_RequiresDigit(t *testing.T) {
	for _, s := range []string{".", "..", ""} {
		if IsCode(s) {
			t.Errorf("IsCode(%q) = true, want false", s)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := map[string]string{
		"  1.2 ":             "1.2",
		"\ufeff1.2":          "1.2",
		"\ufeff насос\u00a0": "насос",
		"a\ufeffb":           "a\ufeffb",
	}
	for in, want := range tests {
		if got := Trim(in); got != want {
			t.Errorf("Trim(%q) = %q, want %q", in, got, want)
		}
	}
}
