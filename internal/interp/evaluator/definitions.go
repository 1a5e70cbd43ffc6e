package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalConstantDefinition handles (define name expr): the expression is
// evaluated and installed into the current frame.
func (e *Evaluator) evalConstantDefinition(node *ast.ConstantDefinition) (runtime.Value, error) {
	value, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	if err := e.env.Define(node.Name, value); err != nil {
		return nil, err
	}
	return runtime.Unit, nil
}

// evalFunctionDefinition handles (define (name p1 ... pn) body...): the
// body subtrees are captured unevaluated.
func (e *Evaluator) evalFunctionDefinition(node *ast.FunctionDefinition) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:       node.Name,
		Parameters: node.Parameters,
		Body:       node.Body,
	}
	if err := e.env.Define(node.Name, fn); err != nil {
		return nil, err
	}
	return runtime.Unit, nil
}
