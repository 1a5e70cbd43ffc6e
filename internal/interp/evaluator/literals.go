package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalIdentifier resolves a bare name against the environment, searching
// from the top frame down.
func (e *Evaluator) evalIdentifier(node *ast.Identifier) (runtime.Value, error) {
	if v, ok := e.env.Lookup(node.Value); ok {
		return v, nil
	}
	return nil, runtime.NewUndefinedError(node.Value)
}
