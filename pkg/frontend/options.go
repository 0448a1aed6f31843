package frontend

// DefaultMaxTokenLength is the number of characters kept in Token.Text.
const DefaultMaxTokenLength = 99

// Options configures the C-like lexer.
type Options struct {
	// MaxTokenLength caps Token.Text in characters. The lexer still consumes
	// the whole lexeme; only the stored text is cut. 0 or negative means no limit.
	// Default: 99
	MaxTokenLength int
}

// DefaultOptions returns the default lexer options.
func DefaultOptions() Options {
	return Options{
		MaxTokenLength: DefaultMaxTokenLength,
	}
}
