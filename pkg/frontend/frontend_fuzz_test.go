package frontend_test

import (
	"errors"
	"testing"

	"github.com/YangUper/compile-experiment/pkg/frontend"
)

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"int x = 10;",
		"// comment\nx++;",
		`"abc`,
		"a <<= b; /* open",
		"'\\",
		"1.2.3 .5 s.x",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens := frontend.Tokenize(input)
		if len(tokens) > len(input) {
			t.Fatalf("%d tokens from %d bytes", len(tokens), len(input))
		}
		for _, token := range tokens {
			if token.Text == "" {
				t.Errorf("empty %s token", token.Kind)
			}
			if token.Kind == frontend.EndOfFile || token.Kind == frontend.Comment {
				t.Errorf("unexpected %s token", token.Kind)
			}
			if token.Line < 1 || token.Column < 1 {
				t.Errorf("token %v at %d:%d", token, token.Line, token.Column)
			}
		}
		for _, err := range frontend.Diagnostics(tokens) {
			if !errors.Is(err, frontend.ErrUnterminatedString) &&
				!errors.Is(err, frontend.ErrBadCharacter) &&
				!errors.Is(err, frontend.ErrUnexpectedChar) {
				t.Errorf("unclassified diagnostic %v", err)
			}
		}
	})
}

func FuzzTranslate(f *testing.F) {
	seeds := []string{
		"ans = (a + b) * 10;",
		"x 5;",
		"x = ((1);",
		"= ;",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tr := frontend.Translate(input)
		if tr.OK() != (tr.Err == nil) {
			t.Fatal("OK disagrees with Err")
		}
		if tr.OK() && (len(tr.Quads) == 0 || tr.Quads[len(tr.Quads)-1].Op != "=") {
			t.Errorf("valid statement %q did not end in an assignment: %v", input, tr.Quads)
		}
	})
}

func BenchmarkTokenize(b *testing.B) {
	src := "int main() {\n\tint sum = 0;\n\tfor (i = 0; i < 100; i++) { sum += i * 2; }\n\treturn sum; // done\n}\n"
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		frontend.Tokenize(src)
	}
}

func BenchmarkTranslate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		frontend.Translate("ans = (a + b) * (c - d) / 10;")
	}
}
