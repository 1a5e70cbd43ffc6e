package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalCall handles (f a1 ... an).
//
// Arguments are evaluated left to right, eagerly, before f is looked up.
// The callee runs with the lookup stack [global, parameter-frame]: it sees
// its own parameters and the globals, never the caller's locals. The
// caller's frames are restored by a deferred ExitCall so the pre-call
// depth holds on every exit path.
func (e *Evaluator) evalCall(node *ast.CallExpression) (runtime.Value, error) {
	args := make([]runtime.Value, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		v, err := e.Eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	bound, ok := e.env.Lookup(node.Function)
	if !ok {
		return nil, runtime.NewUndefinedError(node.Function)
	}
	fn, ok := bound.(*runtime.FunctionValue)
	if !ok {
		return nil, runtime.NewTypeError(node.Function, "a function", bound)
	}
	if fn.Arity() != len(args) {
		return nil, runtime.NewArityError(node.Function, fn.Arity(), len(args))
	}

	if e.callDepth >= e.maxDepth {
		return nil, runtime.NewStackOverflowError(e.maxDepth)
	}
	e.callDepth++
	saved := e.env.EnterCall()
	defer func() {
		e.env.ExitCall(saved)
		e.callDepth--
	}()

	for i, param := range fn.Parameters {
		if err := e.env.Define(param, args[i]); err != nil {
			return nil, err
		}
	}
	return e.evalSequence(fn.Body)
}
