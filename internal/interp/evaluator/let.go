package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalLet handles (let ((x1 v1) ...) body...). All binding values are
// evaluated in the current scope first, so bindings have no mutual
// visibility; then a fresh frame holds them for the body. The frame is
// popped by defer on every exit path.
func (e *Evaluator) evalLet(node *ast.LetExpression) (runtime.Value, error) {
	values := make([]runtime.Value, len(node.Bindings))
	for i, binding := range node.Bindings {
		v, err := e.Eval(binding.Value)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	e.env.Push()
	defer e.env.Pop()

	for i, binding := range node.Bindings {
		if err := e.env.Define(binding.Name, values[i]); err != nil {
			return nil, err
		}
	}
	return e.evalSequence(node.Body)
}
