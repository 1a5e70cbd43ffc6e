// Package evaluator implements the tree walker for mini-scheme: one
// handler per syntactic form, orchestrating scopes, control flow and I/O.
package evaluator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// Config holds configuration options for the evaluator.
type Config struct {
	// Interactive makes the program root print each non-unit top-level
	// result followed by a newline, REPL style. Script mode leaves it off.
	Interactive bool
	// MaxRecursionDepth bounds nested function calls; exceeding it raises
	// a stack-overflow error instead of faulting the host stack.
	MaxRecursionDepth int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Interactive:       false,
		MaxRecursionDepth: 10000,
	}
}

// Evaluator walks a parse tree and evaluates it against an environment.
// It is single-threaded and owns the environment for the duration of a
// program; side effects go to out, and (read) consumes lines from in.
type Evaluator struct {
	env         *runtime.Environment
	out         io.Writer
	in          *bufio.Reader
	interactive bool
	maxDepth    int
	callDepth   int
}

// New creates an Evaluator over the given environment and streams.
func New(env *runtime.Environment, in io.Reader, out io.Writer, cfg *Config) *Evaluator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxRecursionDepth <= 0 {
		cfg.MaxRecursionDepth = DefaultConfig().MaxRecursionDepth
	}
	return &Evaluator{
		env:         env,
		out:         out,
		in:          bufio.NewReader(in),
		interactive: cfg.Interactive,
		maxDepth:    cfg.MaxRecursionDepth,
	}
}

// Env returns the evaluator's environment.
func (e *Evaluator) Env() *runtime.Environment {
	return e.env
}

// Input returns the evaluator's buffered input reader. The REPL reads its
// lines from the same reader so (read) and the prompt loop never fight
// over buffered bytes.
func (e *Evaluator) Input() *bufio.Reader {
	return e.in
}

// Eval evaluates a parse-tree node and returns its value. Errors unwind
// the visit stack; the driver is the only catch site.
func (e *Evaluator) Eval(node ast.Node) (runtime.Value, error) {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node)
	case *ast.ConstantDefinition:
		return e.evalConstantDefinition(node)
	case *ast.FunctionDefinition:
		return e.evalFunctionDefinition(node)
	case *ast.CallExpression:
		return e.evalCall(node)
	case *ast.IfExpression:
		return e.evalIf(node)
	case *ast.BeginExpression:
		return e.evalBegin(node)
	case *ast.CondExpression:
		return e.evalCond(node)
	case *ast.AndExpression:
		return e.evalAnd(node)
	case *ast.OrExpression:
		return e.evalOr(node)
	case *ast.NotExpression:
		return e.evalNot(node)
	case *ast.LetExpression:
		return e.evalLet(node)
	case *ast.ArithmeticExpression:
		return e.evalArithmetic(node)
	case *ast.RelationalExpression:
		return e.evalRelational(node)
	case *ast.CarExpression:
		return e.evalCar(node)
	case *ast.CdrExpression:
		return e.evalCdr(node)
	case *ast.ConsExpression:
		return e.evalCons(node)
	case *ast.NullCheckExpression:
		return e.evalNullCheck(node)
	case *ast.DisplayExpression:
		return e.evalDisplay(node)
	case *ast.NewlineExpression:
		return e.evalNewline(node)
	case *ast.ReadExpression:
		return e.evalRead(node)
	case *ast.QuotedList:
		return e.evalQuotedList(node)
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.IntegerLiteral:
		return &runtime.IntegerValue{Value: node.Value}, nil
	case *ast.FloatLiteral:
		return &runtime.FloatValue{Value: node.Value}, nil
	case *ast.StringLiteral:
		return &runtime.StringValue{Value: node.Value}, nil
	case *ast.BooleanLiteral:
		return &runtime.BooleanValue{Value: node.Value}, nil
	default:
		return nil, fmt.Errorf("evaluator: unhandled node %T", node)
	}
}

// evalProgram visits the top-level expressions left to right. In
// interactive mode each non-unit result is printed; in script mode results
// are discarded.
func (e *Evaluator) evalProgram(program *ast.Program) (runtime.Value, error) {
	for _, expr := range program.Expressions {
		result, err := e.Eval(expr)
		if err != nil {
			return nil, err
		}
		if e.interactive && !runtime.IsUnit(result) {
			fmt.Fprintln(e.out, result.String())
		}
	}
	return runtime.Unit, nil
}

// evalSequence evaluates expressions in order and returns the last value.
func (e *Evaluator) evalSequence(exprs []ast.Expression) (runtime.Value, error) {
	var result runtime.Value = runtime.Unit
	for _, expr := range exprs {
		var err error
		result, err = e.Eval(expr)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
