package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for the C-like language.
// Matchers are tried in priority order and the first one that matches wins:
// 1. Whitespace
// 2. Comments (// before /* */)
// 3. Keywords and identifiers
// 4. Numbers (a leading '.' only when followed by a digit)
// 5. String literals
// 6. Character literals
// 7. Operators and delimiters (longest operator first)
// 8. Any other single character as Unknown
//
// The last matcher accepts every character, so each call to NextToken
// consumes at least one character until the stream is exhausted.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		RunMatcher(TokenWhitespace, isSpace, isSpace),
		CommentMatcher(),
		WordMatcher(),
		NumberMatcher(),
		StringMatcher(),
		CharacterMatcher(),
		OperatorMatcher(),
		UnknownMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used to tokenize straight from an io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// RunMatcher creates a matcher for a maximal run of characters: one
// character accepted by start followed by any number accepted by part.
func RunMatcher(kind string, start, part func(rune) bool) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !start(r) {
			return nil
		}
		stream.NextChar()
		value := append([]rune{r}, ScanRun(stream, part)...)
		return tokenizer.NewToken(kind, value)
	}
}

// ScanRun consumes characters while accept returns true and returns them.
//
// Performance: ASCII prefixes are scanned through ByteStream when available.
func ScanRun(stream tokenizer.Stream, accept func(rune) bool) []rune {
	var value []rune
	if byteStream, ok := stream.(tokenizer.ByteStream); ok {
		value = scanASCII(byteStream, accept)
	}

	// Rune fallback, also picks up after a non-ASCII byte stops the fast path
	for {
		r, ok := stream.PeekChar()
		if !ok || !accept(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}
	return value
}

// scanASCII consumes accepted ASCII bytes and stops at the first byte that
// is rejected or starts a multi-byte sequence.
func scanASCII(stream tokenizer.ByteStream, accept func(rune) bool) []rune {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b >= utf8.RuneSelf || !accept(rune(b)) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}
	return []rune(string(stream.SliceFrom(startPos)))
}

// peek2 returns the next two characters without consuming them.
// Missing characters are reported as 0.
func peek2(stream tokenizer.Stream) (first, second rune) {
	lookahead := stream.Clone()
	first, ok := lookahead.NextChar()
	if !ok {
		return 0, 0
	}
	second, _ = lookahead.PeekChar()
	return first, second
}

// CommentMatcher matches a line comment up to (not including) the newline,
// or a block comment through its closing "*/". An unterminated block
// comment runs to the end of input.
func CommentMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		first, second := peek2(stream)
		if first != '/' || (second != '/' && second != '*') {
			return nil
		}
		stream.NextChar()
		stream.NextChar()
		value := []rune{first, second}

		if second == '/' {
			value = append(value, ScanRun(stream, func(r rune) bool { return r != '\n' })...)
			return tokenizer.NewToken(TokenComment, value)
		}

		for {
			r, ok := stream.NextChar()
			if !ok {
				break
			}
			value = append(value, r)
			if r != '*' {
				continue
			}
			if next, ok := stream.PeekChar(); ok && next == '/' {
				stream.NextChar()
				value = append(value, next)
				break
			}
		}
		return tokenizer.NewToken(TokenComment, value)
	}
}

// WordMatcher matches identifiers and classifies reserved words as keywords.
func WordMatcher() tokenizer.Matcher {
	ident := RunMatcher(TokenIdentifier, isIdentStart, isIdentPart)
	return func(stream tokenizer.Stream) *tokenizer.Token {
		token := ident(stream)
		if token == nil {
			return nil
		}
		if value := token.ValueString(); IsKeyword(value) {
			return tokenizer.NewToken(TokenKeyword, []rune(value))
		}
		return token
	}
}

// NumberMatcher matches a run of digits and dots starting with a digit or
// with a '.' that is followed by a digit.
//
// Grammar:
//
//	Number = ( Digit | "." Digit ) { Digit | "." } ;
//
// A second '.' ends the run without being consumed. The captured text is
// validated again; anything but digits with at most one '.' is Unknown.
func NumberMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		first, second := peek2(stream)
		if !isDigit(first) && !(first == '.' && isDigit(second)) {
			return nil
		}

		var value []rune
		dots := 0
		for {
			r, ok := stream.PeekChar()
			if !ok || !isNumberPart(r) {
				break
			}
			if r == '.' {
				dots++
				if dots > 1 {
					break
				}
			}
			stream.NextChar()
			value = append(value, r)
		}

		if !IsValidNumber(string(value)) {
			return tokenizer.NewToken(TokenUnknown, value)
		}
		return tokenizer.NewToken(TokenNumber, value)
	}
}

// StringMatcher matches a double-quoted string. There are no escapes: the
// first '"' after the opening one closes the literal. If the input ends
// first, the collected text is returned as Unknown.
func StringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '"' {
			return nil
		}
		stream.NextChar()
		value := append([]rune{'"'}, ScanRun(stream, func(r rune) bool { return r != '"' })...)

		if _, ok := stream.NextChar(); !ok {
			return tokenizer.NewToken(TokenUnknown, value)
		}
		return tokenizer.NewToken(TokenString, append(value, '"'))
	}
}

// CharacterMatcher matches a character literal.
//
// Grammar:
//
//	Character = "'" ( "\" AnyChar | AnyChar ) "'" ;
//
// Early end of input or a missing closing quote yields Unknown carrying
// whatever was consumed.
func CharacterMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\'' {
			return nil
		}
		stream.NextChar()
		value := []rune{'\''}

		r, ok = stream.NextChar()
		if !ok {
			return tokenizer.NewToken(TokenUnknown, value)
		}
		value = append(value, r)

		if r == '\\' {
			r, ok = stream.NextChar()
			if !ok {
				return tokenizer.NewToken(TokenUnknown, value)
			}
			value = append(value, r)
		}

		if r, ok := stream.PeekChar(); !ok || r != '\'' {
			return tokenizer.NewToken(TokenUnknown, value)
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenCharacter, append(value, '\''))
	}
}

// OperatorMatcher matches operators by maximal munch and single-character
// delimiters.
//
// The candidate grows one character at a time for as long as the candidate
// plus the next character is still an operator. The character that stops
// the growth is left in the stream for the next token. A single character
// that is neither operator nor delimiter is returned as Unknown.
func OperatorMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || !isSymbolStart(r) {
			return nil
		}
		stream.NextChar()
		candidate := []rune{r}

		for {
			next, ok := stream.PeekChar()
			if !ok || !IsOperator(string(candidate)+string(next)) {
				break
			}
			stream.NextChar()
			candidate = append(candidate, next)
		}

		switch {
		case IsOperator(string(candidate)):
			return tokenizer.NewToken(TokenOperator, candidate)
		case len(candidate) == 1 && IsDelimiter(r):
			return tokenizer.NewToken(TokenDelimiter, candidate)
		}
		return tokenizer.NewToken(TokenUnknown, candidate)
	}
}

// UnknownMatcher consumes any single character as Unknown.
func UnknownMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}
		return tokenizer.NewToken(TokenUnknown, []rune{r})
	}
}

// isSymbolStart rejects the characters that start other token classes.
func isSymbolStart(r rune) bool {
	return !isSpace(r) && !isIdentPart(r) && r != '"' && r != '\''
}
