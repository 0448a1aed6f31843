package parser

import (
	"errors"
	"fmt"
)

// Syntax errors reported by the statement parser.
var (
	// ErrNotIdentifier indicates the statement does not start with an identifier.
	ErrNotIdentifier = errors.New("statement must begin with an identifier")

	// ErrMissingAssign indicates the '=' after the target is missing.
	ErrMissingAssign = errors.New("missing assignment operator '='")

	// ErrMissingSemicolon indicates the statement is not terminated by ';'.
	ErrMissingSemicolon = errors.New("missing semicolon ';'")

	// ErrBadFactor indicates a factor that is not '(' Expr ')', an identifier or a number.
	ErrBadFactor = errors.New("expected '(', identifier or number")

	// ErrUnexpectedToken indicates a terminal that did not match the grammar.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// SyntaxError is a syntax error with the offending token and its position.
type SyntaxError struct {
	// Column is the 1-based column of the offending token.
	Column int
	// Found is the text of the offending token ("#" at end of input).
	Found string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v, found '%s' at column %d", e.Err, e.Found, e.Column)
}

// Unwrap returns the underlying error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// firstErr returns the earliest non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
