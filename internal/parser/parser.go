// Package parser implements LL(1) recursive descent translation of a single
// assignment statement into quadruples.
// Each production rule of the grammar corresponds to a parse function.
//
// Grammar:
//
//	Statement = Identifier "=" Expr ";" ;
//	Expr      = Term { ( "+" | "-" ) Term } ;
//	Term      = Factor { ( "*" | "/" ) Factor } ;
//	Factor    = "(" Expr ")" | Identifier | Number ;
package parser

import (
	"fmt"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/YangUper/compile-experiment/internal/quad"
)

// UnknownOperand stands in for a factor that could not be parsed.
const UnknownOperand = "?"

// EventKind classifies the entries of the translation log.
type EventKind int

const (
	// EventTrace marks the start of an expression analysis.
	EventTrace EventKind = iota
	// EventQuad carries an emitted quadruple.
	EventQuad
	// EventError carries a syntax error.
	EventError
	// EventSuccess marks a statement that parsed without errors.
	EventSuccess
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	switch k {
	case EventTrace:
		return "trace"
	case EventQuad:
		return "quad"
	case EventError:
		return "error"
	case EventSuccess:
		return "success"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one entry of the translation log, in the order it happened.
type Event struct {
	Kind EventKind
	Quad quad.Quadruple // set for EventQuad
	Err  error          // set for EventError
}

// Result is the outcome of translating one statement.
type Result struct {
	// Target is the assigned identifier, empty if the statement had none.
	Target string
	// Quads are the quadruples emitted for this statement.
	Quads []quad.Quadruple
	// Events interleaves traces, quadruples and errors in emission order.
	Events []Event
	// Err is the first syntax error, nil if the statement is valid.
	Err error
}

// Parser implements LL(1) recursive descent parsing for one assignment.
// It maintains a single token lookahead for predictive parsing.
//
// A mismatch never stops the parse: the failing terminal is left unread and
// the caller carries on, so quadruples are still produced for whatever
// structure could be recognised.
type Parser struct {
	lexer   *Lexer
	current *shapetokenizer.Token
	emitter *quad.Emitter
	events  []Event
}

// NewParser creates a parser for one line of input with its own emitter.
func NewParser(input string) *Parser {
	return NewParserWithEmitter(input, quad.NewEmitter())
}

// NewParserWithEmitter creates a parser that emits through emitter.
// Sharing an emitter between parsers keeps temporary names unique across
// statements.
func NewParserWithEmitter(input string, emitter *quad.Emitter) *Parser {
	p := &Parser{
		lexer:   NewLexer(input),
		emitter: emitter,
	}
	p.advance() // Load first token
	return p
}

// Parse translates the statement. It must be called once per Parser.
func (p *Parser) Parse() *Result {
	p.emitter.OnEmit(func(q quad.Quadruple) {
		p.events = append(p.events, Event{Kind: EventQuad, Quad: q})
	})
	defer p.emitter.OnEmit(nil)

	first := len(p.emitter.Quads())
	target, err := p.parseStatement()
	if err == nil {
		p.events = append(p.events, Event{Kind: EventSuccess})
	}

	return &Result{
		Target: target,
		Quads:  p.emitter.Quads()[first:],
		Events: p.events,
		Err:    err,
	}
}

// parseStatement parses an assignment.
//
// Grammar:
//
//	Statement = Identifier "=" Expr ";" ;
//
// The assignment quadruple is emitted before the ';' is checked.
func (p *Parser) parseStatement() (string, error) {
	if p.peek().Kind() != TokenIdent {
		return "", p.fail(ErrNotIdentifier)
	}
	target := p.peek().ValueString()
	p.advance()

	if err := p.match(TokenAssign, ErrMissingAssign); err != nil {
		return target, err
	}

	value, err := p.parseExpr()
	p.emitter.Emit("=", value, quad.Placeholder, target)

	return target, firstErr(err, p.match(TokenSemi, ErrMissingSemicolon))
}

// parseExpr parses additive expressions.
//
// Grammar:
//
//	Expr = Term { ( "+" | "-" ) Term } ;
func (p *Parser) parseExpr() (string, error) {
	p.events = append(p.events, Event{Kind: EventTrace})

	left, err := p.parseTerm()
	for p.peek().Kind() == TokenPlus || p.peek().Kind() == TokenMinus {
		op := p.peek().ValueString()
		p.advance()

		right, rightErr := p.parseTerm()
		left = p.binary(op, left, right)
		err = firstErr(err, rightErr)
	}
	return left, err
}

// parseTerm parses multiplicative expressions.
//
// Grammar:
//
//	Term = Factor { ( "*" | "/" ) Factor } ;
func (p *Parser) parseTerm() (string, error) {
	left, err := p.parseFactor()
	for p.peek().Kind() == TokenMul || p.peek().Kind() == TokenDiv {
		op := p.peek().ValueString()
		p.advance()

		right, rightErr := p.parseFactor()
		left = p.binary(op, left, right)
		err = firstErr(err, rightErr)
	}
	return left, err
}

// parseFactor parses a parenthesised expression or an operand.
//
// Grammar:
//
//	Factor = "(" Expr ")" | Identifier | Number ;
//
// An unparseable factor yields UnknownOperand and consumes nothing.
func (p *Parser) parseFactor() (string, error) {
	switch p.peek().Kind() {
	case TokenLParen:
		p.advance()
		value, err := p.parseExpr()
		return value, firstErr(err, p.match(TokenRParen, expected(TokenRParen)))
	case TokenIdent, TokenNum:
		value := p.peek().ValueString()
		p.advance()
		return value, nil
	}
	return UnknownOperand, p.fail(ErrBadFactor)
}

// binary emits op into a fresh temporary and returns its name.
func (p *Parser) binary(op, left, right string) string {
	temp := p.emitter.NewTemp()
	p.emitter.Emit(op, left, right, temp)
	return temp
}

// Helper methods

// peek returns current token without advancing.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token.
func (p *Parser) advance() {
	p.current = p.lexer.Next()
}

// match consumes a token of the expected kind. On mismatch nothing is
// consumed and cause is reported.
func (p *Parser) match(kind string, cause error) error {
	if p.peek().Kind() != kind {
		return p.fail(cause)
	}
	p.advance()
	return nil
}

// fail records a syntax error at the current token and returns it.
func (p *Parser) fail(cause error) error {
	err := &SyntaxError{
		Column: p.column(),
		Found:  p.peek().ValueString(),
		Err:    cause,
	}
	p.events = append(p.events, Event{Kind: EventError, Err: err})
	return err
}

// column returns the column of the current token.
func (p *Parser) column() int {
	if p.peek().Kind() == TokenEnd {
		return p.lexer.Column()
	}
	return p.peek().Column()
}

// expected builds the cause for a missing terminal.
func expected(kind string) error {
	return fmt.Errorf("%w: expected '%s'", ErrUnexpectedToken, kind)
}
