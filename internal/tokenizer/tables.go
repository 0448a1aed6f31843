package tokenizer

// keywords holds the reserved words of C89.
var keywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {}, "extern": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "int": {}, "long": {},
	"register": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {},
	"static": {}, "struct": {}, "switch": {}, "typedef": {}, "union": {},
	"unsigned": {}, "void": {}, "volatile": {}, "while": {},
}

var operators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {},
	"++": {}, "--": {},
	"==": {}, "!=": {}, ">": {}, "<": {}, ">=": {}, "<=": {},
	"&&": {}, "||": {}, "!": {},
	"&": {}, "|": {}, "^": {}, "~": {}, "<<": {}, ">>": {},
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {},
	"&=": {}, "|=": {}, "^=": {}, "<<=": {}, ">>=": {},
}

// delimiters only ever match a single character.
var delimiters = map[rune]struct{}{
	',': {}, ';': {}, '(': {}, ')': {}, '[': {}, ']': {}, '{': {}, '}': {}, '.': {},
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsOperator reports whether s is an entry of the operator table.
func IsOperator(s string) bool {
	_, ok := operators[s]
	return ok
}

// IsDelimiter reports whether r is a delimiter.
func IsDelimiter(r rune) bool {
	_, ok := delimiters[r]
	return ok
}

// IsValidNumber reports whether s consists of digits with at most one '.'.
func IsValidNumber(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	for _, r := range s {
		switch {
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		case !isDigit(r):
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

// isSpace matches the C locale's isspace.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isNumberPart(r rune) bool {
	return isDigit(r) || r == '.'
}
