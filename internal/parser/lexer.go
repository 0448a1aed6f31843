package parser

import (
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/YangUper/compile-experiment/internal/tokenizer"
)

// Lexer produces the reduced token set used by the statement parser.
// It recognises identifiers, integer literals, "= + - * / ( )" and ";".
// Integer literals have no decimal point, unlike the C-like tokenizer.
type Lexer struct {
	tokenizer shapetokenizer.Tokenizer
	stream    shapetokenizer.Stream
	end       *shapetokenizer.Token
}

// NewLexer creates a lexer over a single line of input.
func NewLexer(input string) *Lexer {
	return NewLexerFromStream(shapetokenizer.NewStream(input))
}

// NewLexerFromStream creates a lexer over a pre-configured stream.
func NewLexerFromStream(stream shapetokenizer.Stream) *Lexer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return &Lexer{
		tokenizer: tok,
		stream:    stream,
		end:       shapetokenizer.NewToken(TokenEnd, []rune(EndMarker)),
	}
}

// NewTokenizer creates the shape tokenizer for the reduced token set.
// Whitespace is matched as TokenSpace so that Lexer can drop it. Any
// character no other matcher accepts becomes a one-character TokenError.
func NewTokenizer() shapetokenizer.Tokenizer {
	return shapetokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.RunMatcher(TokenSpace, isSpace, isSpace),
		tokenizer.RunMatcher(TokenIdent, isLetter, isAlnum),
		tokenizer.RunMatcher(TokenNum, isDigit, isDigit),
		shapetokenizer.StringMatcherFunc(TokenAssign, "="),
		shapetokenizer.StringMatcherFunc(TokenPlus, "+"),
		shapetokenizer.StringMatcherFunc(TokenMinus, "-"),
		shapetokenizer.StringMatcherFunc(TokenMul, "*"),
		shapetokenizer.StringMatcherFunc(TokenDiv, "/"),
		shapetokenizer.StringMatcherFunc(TokenLParen, "("),
		shapetokenizer.StringMatcherFunc(TokenRParen, ")"),
		shapetokenizer.StringMatcherFunc(TokenSemi, ";"),
		errorMatcher,
	)
}

// Next returns the next significant token. Once the input is exhausted it
// keeps returning the TokenEnd token.
func (l *Lexer) Next() *shapetokenizer.Token {
	for {
		token, ok := l.tokenizer.NextToken()
		if !ok {
			return l.end
		}
		if token.Kind() == TokenSpace {
			continue
		}
		return token
	}
}

// Column returns the 1-based column of the next unread character.
func (l *Lexer) Column() int {
	return l.stream.GetColumn()
}

func errorMatcher(stream shapetokenizer.Stream) *shapetokenizer.Token {
	r, ok := stream.NextChar()
	if !ok {
		return nil
	}
	return shapetokenizer.NewToken(TokenError, []rune{r})
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r)
}
