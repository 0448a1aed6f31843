//go:build go1.18
// +build go1.18

package parser

import (
	"testing"
)

// FuzzParser tests the parser with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzParser -fuzztime=30s ./internal/parser
func FuzzParser(f *testing.F) {
	seeds := []string{
		"",
		"x",
		"x = 1;",
		"ans = (a + b) * 10;",
		"x 5;",
		"x = ((((",
		"x = a +* b;",
		"= = = ;",
		"x = )a(;",
		"x = 3.5;",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		result := NewParser(input).Parse()

		// Every temporary is defined before it is used
		for i, q := range result.Quads {
			if q.Op == "=" || mentionsTemp(input) {
				continue
			}
			for _, earlier := range result.Quads[:i] {
				if earlier.Arg1 == q.Result || earlier.Arg2 == q.Result {
					t.Fatalf("temporary %s used before definition in %q", q.Result, input)
				}
			}
		}

		succeeded := false
		for _, ev := range result.Events {
			if ev.Kind == EventSuccess {
				succeeded = true
			}
		}
		if succeeded != (result.Err == nil) {
			t.Fatalf("success event = %v but err = %v", succeeded, result.Err)
		}
	})
}

// mentionsTemp reports whether the source itself uses an identifier shaped
// like a generated temporary.
func mentionsTemp(input string) bool {
	lexer := NewLexer(input)
	for token := lexer.Next(); token.Kind() != TokenEnd; token = lexer.Next() {
		value := token.ValueString()
		if token.Kind() != TokenIdent || len(value) < 2 || value[0] != 't' {
			continue
		}
		digits := true
		for _, r := range value[1:] {
			if !isDigit(r) {
				digits = false
			}
		}
		if digits {
			return true
		}
	}
	return false
}
