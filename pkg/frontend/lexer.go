package frontend

import (
	"io"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/YangUper/compile-experiment/internal/source"
	"github.com/YangUper/compile-experiment/internal/tokenizer"
)

// kinds maps tokenizer kinds to public kinds. Whitespace and comments are
// absent: the Lexer never returns them.
var kinds = map[string]Kind{
	tokenizer.TokenKeyword:    Keyword,
	tokenizer.TokenIdentifier: Identifier,
	tokenizer.TokenNumber:     Number,
	tokenizer.TokenOperator:   Operator,
	tokenizer.TokenDelimiter:  Delimiter,
	tokenizer.TokenString:     String,
	tokenizer.TokenCharacter:  Character,
	tokenizer.TokenUnknown:    Unknown,
}

// Lexer splits C-like source into tokens one call at a time.
// A Lexer owns its cursor; use one Lexer per pass.
type Lexer struct {
	tokenizer shapetokenizer.Tokenizer
	stream    shapetokenizer.Stream
	opts      Options
}

// NewLexer creates a lexer over src with default options.
func NewLexer(src string) *Lexer {
	return NewLexerWithOptions(src, DefaultOptions())
}

// NewLexerWithOptions creates a lexer over src with custom options.
func NewLexerWithOptions(src string, opts Options) *Lexer {
	return newLexerWithStream(shapetokenizer.NewStream(src), opts)
}

// NewLexerFromReader creates a lexer that reads source from reader in chunks.
func NewLexerFromReader(reader io.Reader) *Lexer {
	return NewLexerFromReaderWithOptions(reader, DefaultOptions())
}

// NewLexerFromReaderWithOptions creates a reader-backed lexer with custom options.
// Reads are realigned on rune boundaries, so a multi-byte character split
// between two reads of reader is decoded whole.
func NewLexerFromReaderWithOptions(reader io.Reader, opts Options) *Lexer {
	return newLexerWithReader(source.NewRuneReader(reader), opts)
}

// newLexerWithReader streams from a reader that already yields whole runes.
func newLexerWithReader(reader io.Reader, opts Options) *Lexer {
	return newLexerWithStream(shapetokenizer.NewStreamFromReader(reader), opts)
}

func newLexerWithStream(stream shapetokenizer.Stream, opts Options) *Lexer {
	return &Lexer{
		tokenizer: tokenizer.NewTokenizerWithStream(stream),
		stream:    stream,
		opts:      opts,
	}
}

// Next returns the next token, skipping whitespace and comments.
// At the end of input it returns an EndOfFile token with text "EOF",
// and keeps doing so on further calls.
func (l *Lexer) Next() Token {
	for {
		token, ok := l.tokenizer.NextToken()
		if !ok {
			return Token{
				Kind:   EndOfFile,
				Text:   EOFText,
				Line:   l.stream.GetRow(),
				Column: l.stream.GetColumn(),
			}
		}

		kind, ok := kinds[token.Kind()]
		if !ok {
			// Whitespace or comment
			continue
		}
		return Token{
			Kind:   kind,
			Text:   truncate(token.ValueString(), l.opts.MaxTokenLength),
			Line:   token.Row(),
			Column: token.Column(),
		}
	}
}

// truncate keeps at most limit characters of s.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
