// Package frontend provides error types for lexical and syntax diagnostics.
package frontend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YangUper/compile-experiment/internal/parser"
)

// Lexical anomalies. The lexer never fails; these classify Unknown tokens.
var (
	// ErrUnterminatedString indicates a string literal without closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrBadCharacter indicates a malformed or unterminated character literal.
	ErrBadCharacter = errors.New("malformed character literal")

	// ErrUnexpectedChar indicates characters that start no token.
	ErrUnexpectedChar = errors.New("unrecognised character")
)

// Syntax errors reported by Translate.
var (
	ErrNotIdentifier    = parser.ErrNotIdentifier
	ErrMissingAssign    = parser.ErrMissingAssign
	ErrMissingSemicolon = parser.ErrMissingSemicolon
	ErrBadFactor        = parser.ErrBadFactor
	ErrUnexpectedToken  = parser.ErrUnexpectedToken
)

// SyntaxError is a statement syntax error with the offending token and column.
type SyntaxError = parser.SyntaxError

// LexError describes an Unknown token.
type LexError struct {
	// Line and Column locate the token (1-indexed).
	Line   int
	Column int
	// Text is the token text.
	Text string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *LexError) Unwrap() error {
	return e.Err
}

// Diagnostics returns a LexError for every Unknown token, in order.
func Diagnostics(tokens []Token) []*LexError {
	var errs []*LexError
	for _, token := range tokens {
		if token.Kind != Unknown {
			continue
		}
		errs = append(errs, &LexError{
			Line:   token.Line,
			Column: token.Column,
			Text:   token.Text,
			Err:    classify(token.Text),
		})
	}
	return errs
}

// classify picks the cause of an Unknown token from its first character.
func classify(text string) error {
	switch {
	case strings.HasPrefix(text, `"`):
		return ErrUnterminatedString
	case strings.HasPrefix(text, "'"):
		return ErrBadCharacter
	default:
		return ErrUnexpectedChar
	}
}
