// Package frontend provides rendering of token tables and translations.
package frontend

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shapestone/shape-core/pkg/ast"
)

// Output line prefixes.
const (
	TracePrefix    = "  "
	QuadPrefix     = "[IR] "
	ErrorPrefix    = ">> "
	ProgressPrefix = ">>> "
)

// Printer writes token tables, diagnostics and translations.
type Printer struct {
	w       io.Writer
	heading *color.Color
	trace   *color.Color
	failure *color.Color
	success *color.Color
}

// NewPrinter creates a printer writing to w. With withColor false no
// escape sequences are written; otherwise color follows the terminal.
func NewPrinter(w io.Writer, withColor bool) *Printer {
	p := &Printer{
		w:       w,
		heading: color.New(color.Bold),
		trace:   color.New(color.FgBlue),
		failure: color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
	}
	if !withColor {
		for _, c := range []*color.Color{p.heading, p.trace, p.failure, p.success} {
			c.DisableColor()
		}
	}
	return p
}

// TokenTable writes one row per token: line, column, kind and text,
// separated by tabs, under a two-line header.
func (p *Printer) TokenTable(tokens []Token) error {
	if _, err := p.heading.Fprintf(p.w, "line\tcolumn\ttype\t\tvalue\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.w, "----\t------\t--------\t----------\n"); err != nil {
		return err
	}
	for _, token := range tokens {
		if _, err := fmt.Fprintf(p.w, "%d\t%d\t%-12s\t%s\n",
			token.Line, token.Column, token.Kind, token.Text); err != nil {
			return err
		}
	}
	return nil
}

// LexDiagnostics writes one line per lexical error.
func (p *Printer) LexDiagnostics(errs []*LexError) error {
	for _, err := range errs {
		if _, werr := p.failure.Fprintf(p.w, "%s[lexical error] %v\n", ErrorPrefix, err); werr != nil {
			return werr
		}
	}
	return nil
}

// TranslatorBanner writes the title and input prompt of the translator.
func (p *Printer) TranslatorBanner() error {
	if _, err := p.heading.Fprintln(p.w, "--- assignment statement translator ---"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w, "enter an assignment statement (e.g. ans = (a + b) * 10;):")
	return err
}

// Translation writes the translation log in the order it happened.
// Only the first syntax error is written.
func (p *Printer) Translation(t *Translation) error {
	reported := false
	for _, ev := range t.Events {
		var err error
		switch ev.Kind {
		case EventTrace:
			_, err = p.trace.Fprintf(p.w, "%sanalyzing expression E...\n", TracePrefix)
		case EventQuad:
			_, err = fmt.Fprintf(p.w, "%s%s\n", QuadPrefix, ev.Quad)
		case EventError:
			if reported {
				continue
			}
			reported = true
			_, err = p.failure.Fprintf(p.w, "%s[syntax error] %v\n", ErrorPrefix, ev.Err)
		case EventSuccess:
			_, err = p.success.Fprintf(p.w, "%sstatus: the statement is syntactically valid.\n", ProgressPrefix)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Node writes an AST produced by TokensNode or Translation.Node.
func (p *Printer) Node(node ast.SchemaNode) error {
	out, err := RenderNode(node)
	if err != nil {
		return err
	}
	_, err = p.w.Write(out)
	return err
}

// RenderNode converts an AST node to text: one line per record, each
// record's literals in brackets.
//
// Example:
//
//	out, _ := frontend.RenderNode(frontend.TokensNode(frontend.Tokenize("x;")))
//	// out: ["IDENTIFIER" "x"]\n["DELIMITER" ";"]\n
func RenderNode(node ast.SchemaNode) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}

	var buf bytes.Buffer

	if err := renderNode(node, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderNode recursively renders an AST node to the buffer.
func renderNode(node ast.SchemaNode, buf *bytes.Buffer) error {
	switch n := node.(type) {
	case *ast.ArrayDataNode:
		return renderArrayData(n, buf)
	case *ast.LiteralNode:
		fmt.Fprintf(buf, "%q", fmt.Sprint(n.Value()))
		return nil
	default:
		return fmt.Errorf("unsupported node type for rendering: %T", node)
	}
}

// renderArrayData renders an ArrayDataNode.
// The outer array puts each record on its own line; a record is rendered
// in brackets with space-separated literals.
func renderArrayData(node *ast.ArrayDataNode, buf *bytes.Buffer) error {
	elements := node.Elements()
	if len(elements) == 0 {
		return nil
	}

	switch elements[0].(type) {
	case *ast.ArrayDataNode:
		for _, elem := range elements {
			if err := renderNode(elem, buf); err != nil {
				return err
			}
			buf.WriteByte('\n')
		}
	default:
		buf.WriteByte('[')
		for i, elem := range elements {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if err := renderNode(elem, buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}
