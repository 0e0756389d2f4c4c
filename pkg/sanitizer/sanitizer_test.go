package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "basic trim", input: "  hello  ", want: "hello"},
		{name: "multiple spaces", input: "hello    world", want: "hello world"},
		{name: "tabs and newlines", input: "hello\t\nworld", want: "hello world"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "   \t\n  ", want: ""},
		{name: "unicode preserved", input: " Café  Zürich ", want: "Café Zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A@X.com", "a@x.com"},
		{"  alice@Example.ORG ", "alice@example.org"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeMessage_KeepsNewlines(t *testing.T) {
	got := NormalizeMessage("  line one\nline two\x00\x07  ")
	want := "line one\nline two"
	if got != want {
		t.Errorf("NormalizeMessage() = %q, want %q", got, want)
	}
}

func TestNormalizeName_StripsControl(t *testing.T) {
	got := NormalizeName("  Ali\x00ce   Smith ")
	if got != "Alice Smith" {
		t.Errorf("NormalizeName() = %q", got)
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{"  Mixed  CASE\tText ", "x@Y.z", "a\nb"}
	strategies := map[string]Strategy{
		"TrimAndNormalize": TrimAndNormalize,
		"NormalizeEmail":   NormalizeEmail,
		"NormalizeName":    NormalizeName,
		"NormalizeMessage": NormalizeMessage,
	}

	for name, fn := range strategies {
		for _, in := range inputs {
			once := fn(in)
			if twice := fn(once); twice != once {
				t.Errorf("%s not idempotent for %q: %q then %q", name, in, once, twice)
			}
		}
	}
}
