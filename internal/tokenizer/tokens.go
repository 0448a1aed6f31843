// Package tokenizer provides C-like tokenization using Shape's tokenizer framework.
package tokenizer

// Token kind constants for the C-like language.
//
// Whitespace and Comment tokens are produced so that every character of the
// input belongs to exactly one token. Callers drop them before handing tokens
// to anything downstream.
const (
	// Word tokens
	TokenKeyword    = "Keyword"    // one of the 32 reserved words
	TokenIdentifier = "Identifier" // [A-Za-z_][A-Za-z0-9_]*

	// Literal tokens
	TokenNumber    = "Number"    // digits with at most one '.'
	TokenString    = "String"    // "..."
	TokenCharacter = "Character" // 'c' or '\c'

	// Symbol tokens
	TokenOperator  = "Operator"  // longest match from the operator table
	TokenDelimiter = "Delimiter" // single character from the delimiter table

	// Trivia
	TokenWhitespace = "Whitespace"
	TokenComment    = "Comment" // // line or /* block */

	// Special tokens
	TokenUnknown = "Unknown" // anything malformed or unrecognised
	TokenEOF     = "EOF"
)
