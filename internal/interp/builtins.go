package interp

import (
	"fmt"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
)

// Built-in list functions, written in mini-scheme itself. They are parsed
// at interpreter construction and installed into the global frame as
// ordinary user functions, so programs can shadow or redefine them and
// the evaluator needs no special cases for them.
var builtinSources = []string{
	`(define (map f lst)
	   (if (null? lst) '() (cons (f (car lst)) (map f (cdr lst)))))`,

	`(define (filter f lst)
	   (cond ((null? lst) '())
	         ((f (car lst)) (cons (car lst) (filter f (cdr lst))))
	         (else (filter f (cdr lst)))))`,
}

// installBuiltins evaluates the embedded definitions. The sources are
// fixed, so a failure here is a programming error, not user input.
func (i *Interpreter) installBuiltins() {
	for _, src := range builtinSources {
		p := parser.New(lexer.New(src))
		program := p.ParseProgram()
		if len(p.Errors()) > 0 {
			panic(fmt.Sprintf("interp: built-in source does not parse: %v", p.Errors()))
		}
		if _, err := i.eval.Eval(program); err != nil {
			panic(fmt.Sprintf("interp: built-in source does not evaluate: %v", err))
		}
	}
}
