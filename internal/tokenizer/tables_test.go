package tokenizer

import "testing"

func TestKeywordTable(t *testing.T) {
	if len(keywords) != 32 {
		t.Fatalf("keyword table has %d entries, want 32", len(keywords))
	}
	for _, word := range []string{"auto", "sizeof", "volatile", "while"} {
		if !IsKeyword(word) {
			t.Errorf("IsKeyword(%q) = false", word)
		}
	}
	for _, word := range []string{"main", "Int", "include", ""} {
		if IsKeyword(word) {
			t.Errorf("IsKeyword(%q) = true", word)
		}
	}
}

// TestOperatorPrefixes checks that every multi-character operator can be
// reached one character at a time, which maximal munch relies on.
func TestOperatorPrefixes(t *testing.T) {
	for op := range operators {
		for i := 1; i < len(op); i++ {
			if !IsOperator(op[:i]) {
				t.Errorf("prefix %q of operator %q is not an operator", op[:i], op)
			}
		}
	}
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"10", true},
		{"3.14", true},
		{".5", true},
		{"7.", true},
		{"1.2.3", false},
		{"12a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidNumber(tt.input); got != tt.want {
				t.Errorf("IsValidNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDelimiter(t *testing.T) {
	for _, r := range ",;()[]{}." {
		if !IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = false", r)
		}
	}
	for _, r := range "+-<>@" {
		if IsDelimiter(r) {
			t.Errorf("IsDelimiter(%q) = true", r)
		}
	}
}
