package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/YangUper/compile-experiment/pkg/frontend"
)

// defaultSourceFile is tokenized when lex is given no argument.
const defaultSourceFile = "./test.txt"

var errorNoColor bool
var debugShowAST bool

// lexFile prints the token table of the file at filename, followed by a
// diagnostic for every unknown token.
func lexFile(w io.Writer, filename string) error {
	tokens, err := frontend.TokenizeFile(filename)
	if err != nil {
		return fmt.Errorf("cannot tokenize %s: %w", filename, err)
	}
	printer := frontend.NewPrinter(w, !errorNoColor)

	if err := printer.TokenTable(tokens); err != nil {
		return err
	}
	if err := printer.LexDiagnostics(frontend.Diagnostics(tokens)); err != nil {
		return err
	}

	// If the `debug-ast` flag is set, dump the tokens as an AST after the table
	if debugShowAST {
		fmt.Fprintln(w)
		return printer.Node(frontend.TokensNode(tokens))
	}
	return nil
}

// translateLine prompts for one assignment statement on r and prints its
// translation log.
func translateLine(w io.Writer, r io.Reader) error {
	printer := frontend.NewPrinter(w, !errorNoColor)
	if err := printer.TranslatorBanner(); err != nil {
		return err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("cannot read statement: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	translation := frontend.Translate(line)
	if err := printer.Translation(translation); err != nil {
		return err
	}

	if debugShowAST {
		fmt.Fprintln(w)
		return printer.Node(translation.Node())
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "frontend"
	app.Usage = "tokenize C-like source and translate assignment statements"

	noColorFlag := cli.BoolFlag{
		Name:        "no-color",
		Usage:       "hide colors in diagnostics",
		Destination: &errorNoColor,
	}

	debugAstFlag := cli.BoolFlag{
		Name:        "debug-ast",
		Usage:       "show the result as a shape abstract-syntax-tree",
		Destination: &debugShowAST,
	}

	app.Commands = []cli.Command{
		{
			Name:      "lex",
			Aliases:   []string{"l"},
			Usage:     "Print the token table of a C-like source file",
			ArgsUsage: "[FILE]",
			Flags: []cli.Flag{
				noColorFlag,
				debugAstFlag,
			},
			Action: func(c *cli.Context) error {
				filename := defaultSourceFile
				if c.NArg() > 0 {
					filename = c.Args().First()
				}
				return lexFile(os.Stdout, filename)
			},
		},
		{
			Name:    "translate",
			Aliases: []string{"t"},
			Usage:   "Translate one assignment statement read from stdin into quadruples",
			Flags: []cli.Flag{
				noColorFlag,
				debugAstFlag,
			},
			Action: func(c *cli.Context) error {
				return translateLine(os.Stdout, os.Stdin)
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
