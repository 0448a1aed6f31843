// Package frontend provides a small compiler front end.
//
// It has two independent parts:
//
//   - a tokenizer for a C-like language (Lexer, Tokenize, TokenizeReader)
//   - a translator that parses one assignment statement and generates
//     three-address code as quadruples (Translate, Translator)
//
// Both parts are built on Shape's tokenizer framework. Neither part ever
// fails: malformed input becomes Unknown tokens or a recorded syntax error.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each call creates its own lexer or parser with no shared mutable state.
// A single Lexer or Translator must not be shared between goroutines.
//
// # Tokenizing
//
//	for _, tok := range frontend.Tokenize("int x = 10;") {
//	    fmt.Println(tok.Line, tok.Column, tok.Kind, tok.Text)
//	}
//
// # Translating
//
//	tr := frontend.Translate("ans = (a + b) * 10;")
//	for _, q := range tr.Quads {
//	    fmt.Println(q) // (+ , a   , b   , t1) ...
//	}
//	if tr.Err != nil {
//	    // first syntax error
//	}
package frontend

import (
	"io"

	"github.com/YangUper/compile-experiment/internal/source"
)

// Tokenize splits src into tokens in source order.
// The EndOfFile marker is not included.
//
// Example:
//
//	tokens := frontend.Tokenize("int x = 10;")
//	// (KEYWORD, int) (IDENTIFIER, x) (OPERATOR, =) (NUMBER, 10) (DELIMITER, ;)
func Tokenize(src string) []Token {
	return TokenizeWithOptions(src, DefaultOptions())
}

// TokenizeWithOptions splits src into tokens with custom options.
func TokenizeWithOptions(src string, opts Options) []Token {
	return drain(NewLexerWithOptions(src, opts))
}

// TokenizeReader splits the source read from reader into tokens.
//
// Example:
//
//	file, err := os.Open("test.txt")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//	tokens := frontend.TokenizeReader(file)
func TokenizeReader(reader io.Reader) []Token {
	return drain(NewLexerFromReader(reader))
}

// TokenizeFile splits the contents of the file at filename into tokens.
// The file is memory-mapped where the platform supports it and tokenized
// in place. A leading UTF-8 byte order mark is skipped.
func TokenizeFile(filename string) ([]Token, error) {
	file, err := source.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return drain(newLexerWithReader(file, DefaultOptions())), nil
}

func drain(l *Lexer) []Token {
	tokens := make([]Token, 0, 100)
	for {
		token := l.Next()
		if token.Kind == EndOfFile {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
