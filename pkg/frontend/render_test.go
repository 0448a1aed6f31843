package frontend_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/YangUper/compile-experiment/pkg/frontend"
)

func TestPrinter_TokenTable(t *testing.T) {
	var buf bytes.Buffer
	p := frontend.NewPrinter(&buf, false)

	if err := p.TokenTable(frontend.Tokenize("int x = 10;")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "line\tcolumn\ttype\t\tvalue\n" +
		"----\t------\t--------\t----------\n" +
		"1\t1\tKEYWORD     \tint\n" +
		"1\t5\tIDENTIFIER  \tx\n" +
		"1\t7\tOPERATOR    \t=\n" +
		"1\t9\tNUMBER      \t10\n" +
		"1\t11\tDELIMITER   \t;\n"
	if buf.String() != want {
		t.Errorf("unexpected table:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinter_LexDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	p := frontend.NewPrinter(&buf, false)

	errs := frontend.Diagnostics(frontend.Tokenize("x = @;"))
	if err := p.LexDiagnostics(errs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ">> [lexical error] line 1, column 5: unrecognised character \"@\"\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Translation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "valid statement",
			input: "ans = (a + b) * 10;",
			want: []string{
				"  analyzing expression E...",
				"  analyzing expression E...",
				"[IR] (+ , a   , b   , t1)",
				"[IR] (* , t1  , 10  , t2)",
				"[IR] (= , t2  , _   , ans)",
				">>> status: the statement is syntactically valid.",
			},
		},
		{
			name:  "missing assignment",
			input: "x 5;",
			want: []string{
				">> [syntax error] missing assignment operator '=', found '5' at column 3",
			},
		},
		{
			name:  "only the first error is shown",
			input: "x = * 2",
			want: []string{
				"  analyzing expression E...",
				">> [syntax error] expected '(', identifier or number, found '*' at column 5",
				"[IR] (* , ?   , 2   , t1)",
				"[IR] (= , t1  , _   , x)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := frontend.NewPrinter(&buf, false)

			if err := p.Translation(frontend.Translate(tt.input)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := strings.Join(tt.want, "\n") + "\n"
			if buf.String() != want {
				t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
			}
		})
	}
}

func TestPrinter_TranslatorBanner(t *testing.T) {
	var buf bytes.Buffer
	p := frontend.NewPrinter(&buf, false)

	if err := p.TranslatorBanner(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "--- assignment statement translator ---\n") {
		t.Errorf("unexpected banner %q", buf.String())
	}
	if !strings.Contains(buf.String(), "ans = (a + b) * 10;") {
		t.Errorf("banner lacks the example statement: %q", buf.String())
	}
}

func TestRenderNode(t *testing.T) {
	out, err := frontend.RenderNode(frontend.TokensNode(frontend.Tokenize(`x = "s";`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `["IDENTIFIER" "x"]` + "\n" +
		`["OPERATOR" "="]` + "\n" +
		`["STRING" "\"s\""]` + "\n" +
		`["DELIMITER" ";"]` + "\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderNode_Translation(t *testing.T) {
	var buf bytes.Buffer
	p := frontend.NewPrinter(&buf, false)

	if err := p.Node(frontend.Translate("a = b - c;").Node()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `["-" "b" "c" "t1"]` + "\n" + `["=" "t1" "_" "a"]` + "\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRenderNode_Empty(t *testing.T) {
	out, err := frontend.RenderNode(nil)
	if err != nil || len(out) != 0 {
		t.Errorf("RenderNode(nil) = %q, %v", out, err)
	}

	out, err = frontend.RenderNode(frontend.TokensNode(nil))
	if err != nil || len(out) != 0 {
		t.Errorf("RenderNode(empty) = %q, %v", out, err)
	}
}
