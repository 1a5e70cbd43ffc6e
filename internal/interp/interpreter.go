// Package interp is the driver-facing facade over the mini-scheme
// evaluator: it owns the environment, installs the built-ins, feeds parse
// trees to the evaluator and implements the REPL loop.
package interp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/evaluator"
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
)

// ErrSyntaxErrors marks a program rejected by the parser. The syntax
// report has already been printed to standard output when RunProgram
// returns an error wrapping this sentinel.
var ErrSyntaxErrors = errors.New("syntax errors")

// Config holds configuration options for the interpreter.
type Config struct {
	// Interactive prints non-unit top-level results, REPL style.
	Interactive bool
	// Input is the stream consumed by (read) and, in the REPL, by the
	// prompt loop.
	Input io.Reader
	// Output receives evaluator output (REPL results, display, newline).
	Output io.Writer
	// MaxRecursionDepth bounds nested function calls.
	MaxRecursionDepth int
}

// DefaultConfig returns the default configuration: script mode over the
// process streams.
func DefaultConfig() *Config {
	return &Config{
		Interactive:       false,
		Input:             os.Stdin,
		Output:            os.Stdout,
		MaxRecursionDepth: evaluator.DefaultConfig().MaxRecursionDepth,
	}
}

// Interpreter owns one evaluator session: a global environment with the
// built-ins installed, living as long as the interpreter.
type Interpreter struct {
	env  *runtime.Environment
	eval *evaluator.Evaluator
	out  io.Writer
}

// New creates an Interpreter and installs the built-in functions into the
// global frame, before any user code runs.
func New(cfg *Config) *Interpreter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	env := runtime.NewEnvironment()
	ev := evaluator.New(env, cfg.Input, cfg.Output, &evaluator.Config{
		Interactive:       cfg.Interactive,
		MaxRecursionDepth: cfg.MaxRecursionDepth,
	})
	i := &Interpreter{env: env, eval: ev, out: cfg.Output}
	i.installBuiltins()
	return i
}

// Env returns the interpreter's environment.
func (i *Interpreter) Env() *runtime.Environment {
	return i.env
}

// RunProgram parses and evaluates a whole source text. When the parser
// reports syntax errors, the error count and the tree dump are printed to
// standard output, the evaluator is not invoked, and the returned error
// wraps ErrSyntaxErrors.
func (i *Interpreter) RunProgram(source string) error {
	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	if n := len(p.Errors()); n > 0 {
		fmt.Fprintf(i.out, "Syntax errors found: %d\n", n)
		for _, msg := range p.Errors() {
			fmt.Fprintln(i.out, "  "+msg)
		}
		if dump := program.String(); dump != "" {
			fmt.Fprintln(i.out, dump)
		}
		return fmt.Errorf("%w: %d", ErrSyntaxErrors, n)
	}
	_, err := i.eval.Eval(program)
	return err
}

// HasMain reports whether the global frame binds a main function.
func (i *Interpreter) HasMain() bool {
	v, ok := i.env.Global()["main"]
	if !ok {
		return false
	}
	_, isFn := v.(*runtime.FunctionValue)
	return isFn
}

// CallMain invokes (main) with no arguments. Script mode calls this after
// all top-level forms have been evaluated.
func (i *Interpreter) CallMain() error {
	return i.RunProgram("(main)")
}
