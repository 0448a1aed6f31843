package parser

// Token kind constants for the assignment-statement grammar.
const (
	TokenIdent  = "Identifier" // [A-Za-z][A-Za-z0-9]*
	TokenNum    = "Number"     // [0-9]+
	TokenAssign = "="
	TokenPlus   = "+"
	TokenMinus  = "-"
	TokenMul    = "*"
	TokenDiv    = "/"
	TokenLParen = "("
	TokenRParen = ")"
	TokenSemi   = ";"

	TokenSpace = "Space" // skipped by Lexer
	TokenError = "Error" // any other single character
	TokenEnd   = "End"   // end of input, value "#"
)

// EndMarker is the value carried by the TokenEnd token.
const EndMarker = "#"
