// Package quad records three-address code as quadruples.
package quad

import (
	"fmt"
	"strconv"
)

// Placeholder fills an unused operand slot.
const Placeholder = "_"

// Quadruple is one three-address instruction.
type Quadruple struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}

// String renders the quadruple as "(op, arg1, arg2, result)" with the
// operator padded to two columns and both arguments to four.
func (q Quadruple) String() string {
	return fmt.Sprintf("(%-2s, %-4s, %-4s, %s)", q.Op, q.Arg1, q.Arg2, q.Result)
}

// Emitter allocates temporaries and keeps the quadruples in generation order.
// The temporary counter lives as long as the Emitter, so several statements
// translated with one Emitter never share a temporary name.
type Emitter struct {
	temps    int
	quads    []Quadruple
	listener func(Quadruple)
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// OnEmit registers fn to be called with every emitted quadruple.
func (e *Emitter) OnEmit(fn func(Quadruple)) {
	e.listener = fn
}

// NewTemp returns the next temporary name: t1, t2, ...
func (e *Emitter) NewTemp() string {
	e.temps++
	return "t" + strconv.Itoa(e.temps)
}

// Emit appends a quadruple. Operands are not checked.
func (e *Emitter) Emit(op, arg1, arg2, result string) Quadruple {
	q := Quadruple{Op: op, Arg1: arg1, Arg2: arg2, Result: result}
	e.quads = append(e.quads, q)
	if e.listener != nil {
		e.listener(q)
	}
	return q
}

// Quads returns a copy of the quadruples emitted so far.
func (e *Emitter) Quads() []Quadruple {
	out := make([]Quadruple, len(e.quads))
	copy(out, e.quads)
	return out
}

// Temps returns how many temporaries have been allocated.
func (e *Emitter) Temps() int {
	return e.temps
}
