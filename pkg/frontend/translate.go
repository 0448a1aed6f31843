package frontend

import (
	"github.com/YangUper/compile-experiment/internal/parser"
	"github.com/YangUper/compile-experiment/internal/quad"
)

// Quadruple is one three-address instruction (op, arg1, arg2, result).
type Quadruple = quad.Quadruple

// Event is one entry of a translation log.
type Event = parser.Event

// EventKind classifies translation log entries.
type EventKind = parser.EventKind

// Translation log entry kinds.
const (
	EventTrace   = parser.EventTrace
	EventQuad    = parser.EventQuad
	EventError   = parser.EventError
	EventSuccess = parser.EventSuccess
)

// Translation is the result of translating one assignment statement.
type Translation struct {
	// Input is the translated line.
	Input string
	// Target is the assigned identifier.
	Target string
	// Quads is the generated three-address code in evaluation order.
	Quads []Quadruple
	// Events interleaves traces, quadruples and syntax errors as they happened.
	Events []Event
	// Err is the first syntax error, nil if the statement is valid.
	Err error
}

// OK reports whether the statement was syntactically valid.
func (t *Translation) OK() bool {
	return t.Err == nil
}

// Translator translates statements one at a time. Temporary names keep
// counting across statements translated by the same Translator.
type Translator struct {
	emitter *quad.Emitter
}

// NewTranslator creates a translator whose temporaries start at t1.
func NewTranslator() *Translator {
	return &Translator{emitter: quad.NewEmitter()}
}

// Translate parses one assignment statement and generates quadruples.
func (tr *Translator) Translate(line string) *Translation {
	result := parser.NewParserWithEmitter(line, tr.emitter).Parse()
	return &Translation{
		Input:  line,
		Target: result.Target,
		Quads:  result.Quads,
		Events: result.Events,
		Err:    result.Err,
	}
}

// Translate parses a single assignment statement of the form
//
//	Identifier = Expr ;
//
// and generates its three-address code. Syntax errors do not stop the
// translation; Err holds the first one and Quads whatever was generated.
//
// Example:
//
//	tr := frontend.Translate("ans = (a + b) * 10;")
//	// tr.Quads: (+, a, b, t1) (*, t1, 10, t2) (=, t2, _, ans)
func Translate(line string) *Translation {
	return NewTranslator().Translate(line)
}
