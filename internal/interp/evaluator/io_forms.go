package evaluator

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalDisplay prints the formatted value without a trailing newline.
func (e *Evaluator) evalDisplay(node *ast.DisplayExpression) (runtime.Value, error) {
	v, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(e.out, v.String())
	return runtime.Unit, nil
}

// evalNewline prints a line terminator.
func (e *Evaluator) evalNewline(_ *ast.NewlineExpression) (runtime.Value, error) {
	fmt.Fprintln(e.out)
	return runtime.Unit, nil
}

// evalRead reads one line from standard input and classifies it. A quoted
// list is reparsed and evaluated; a number becomes an integer or float;
// anything else is the raw line as a string.
func (e *Evaluator) evalRead(_ *ast.ReadExpression) (runtime.Value, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read: %w", err)
	}

	value, needsParse := ClassifyInput(line)
	if !needsParse {
		return value, nil
	}

	p := parser.New(lexer.New(strings.TrimSpace(line)))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 || len(program.Expressions) != 1 {
		return nil, runtime.NewTypeError("read", "a well-formed quoted list", nil)
	}
	return e.Eval(program.Expressions[0])
}
