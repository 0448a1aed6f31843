package frontend

import "fmt"

// Kind classifies a token of the C-like language.
type Kind int

const (
	Keyword Kind = iota
	Identifier
	Number
	Operator
	Delimiter
	String
	Character
	Comment
	EndOfFile
	Unknown
)

var kindNames = [...]string{
	Keyword:    "KEYWORD",
	Identifier: "IDENTIFIER",
	Number:     "NUMBER",
	Operator:   "OPERATOR",
	Delimiter:  "DELIMITER",
	String:     "STRING",
	Character:  "CHARACTER",
	Comment:    "COMMENT",
	EndOfFile:  "END_OF_FILE",
	Unknown:    "UNKNOWN",
}

// String returns the name printed in token tables, e.g. "KEYWORD".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// EOFText is the text of the EndOfFile token.
const EOFText = "EOF"

// Token is a lexeme of the C-like language.
type Token struct {
	Kind Kind
	// Text is the lexeme, truncated to Options.MaxTokenLength characters.
	Text string
	// Line and Column locate the first character, both 1-based.
	Line   int
	Column int
}

// String returns the token as "(KIND, text)".
func (t Token) String() string {
	return fmt.Sprintf("(%s, %s)", t.Kind, t.Text)
}
