// Package diag is the single reporting channel for lexical, parse and
// backend failures. Every failure surfaces as exactly one diagnostic of the
// form "Error: <message>".
package diag

import (
	"errors"
	"fmt"
	"io"

	"github.com/lisper-lang/lisper/codegen"
	"github.com/lisper-lang/lisper/parser"
)

// Diagnostic code constants.
const (
	CodeParse   = "parse"
	CodeBackend = "backend"
	CodeIO      = "io"
)

// Diagnostic represents a structured failure report.
type Diagnostic struct {
	Code    string
	Message string
}

// New creates a diagnostic with the given code and message.
func New(code string, message string) Diagnostic {
	return Diagnostic{Code: code, Message: message}
}

// FromError classifies an error into a diagnostic. Parse failures and
// backend failures keep their own codes; anything else is an I/O failure.
func FromError(err error) Diagnostic {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return New(CodeParse, syntaxErr.Error())
	}

	var backendErr *codegen.Error
	if errors.As(err, &backendErr) {
		return New(CodeBackend, backendErr.Error())
	}

	return New(CodeIO, err.Error())
}

// Format renders the diagnostic for the user-facing output boundary.
func (d Diagnostic) Format() string {
	return fmt.Sprintf("Error: %s", d.Message)
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Code, d.Format())
}

// Report writes a formatted diagnostic for err to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, FromError(err).Format())
}
