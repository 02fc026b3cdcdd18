package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lisper-lang/lisper/ast"
	"github.com/lisper-lang/lisper/codegen"
	"github.com/lisper-lang/lisper/diag"
	"github.com/lisper-lang/lisper/parser"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		diag.Report(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lisper", flag.ContinueOnError)
	expr := fs.String("e", "", "evaluate the given expression and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: lisper [-e expression] [script]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *expr != "" {
		return evalSource(strings.NewReader(*expr), os.Stdout)
	}

	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		return evalSource(f, os.Stdout)
	}

	return runREPL()
}

// evalSource reads one top-level expression at a time and forwards it to
// the backend. Script mode stops at the first failure.
func evalSource(r io.Reader, out io.Writer) error {
	p := parser.New(r)
	defer p.Close()

	interp := codegen.New(out)

	for !p.AtEOF() {
		n, err := p.ParseExpression()
		if err != nil {
			return err
		}
		if err := requireList(n); err != nil {
			return err
		}
		if _, err := interp.Eval(n); err != nil {
			return err
		}
	}
	return nil
}

// requireList enforces the driver contract: a top-level expression must
// begin with an open parenthesis.
func requireList(n *ast.Node) error {
	if n.Type() == ast.NodeTypeList {
		return nil
	}
	return &parser.SyntaxError{Err: parser.ErrUnexpectedToken, Token: n.Token()}
}
