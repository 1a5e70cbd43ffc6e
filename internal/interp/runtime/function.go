package runtime

import (
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// FunctionValue is a callable: parameter names plus references into the
// parse tree for the body expressions. The body subtrees live as long as
// the interpreter session. Built-ins installed from embedded source and
// user definitions share this representation, so built-ins are shadowable
// like any other binding.
type FunctionValue struct {
	Name       string
	Parameters []string
	Body       []ast.Expression
}

// Type returns "function".
func (f *FunctionValue) Type() string { return "function" }

// String returns an opaque rendering; functions are never returned to the
// top level by well-formed programs.
func (f *FunctionValue) String() string { return "#<function " + f.Name + ">" }

// Arity returns the number of parameters.
func (f *FunctionValue) Arity() int { return len(f.Parameters) }
