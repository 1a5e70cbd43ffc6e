package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalIf handles (if cond then else). Only #f is false.
func (e *Evaluator) evalIf(node *ast.IfExpression) (runtime.Value, error) {
	condition, err := e.Eval(node.Condition)
	if err != nil {
		return nil, err
	}
	if runtime.IsTruthy(condition) {
		return e.Eval(node.Then)
	}
	return e.Eval(node.Else)
}

// evalBegin evaluates the subexpressions in order and yields the last
// one's value.
func (e *Evaluator) evalBegin(node *ast.BeginExpression) (runtime.Value, error) {
	return e.evalSequence(node.Expressions)
}

// evalCond evaluates each condition in order; the first truthy clause's
// body runs and its last value is the result. With no match and no else
// branch the result is unit.
func (e *Evaluator) evalCond(node *ast.CondExpression) (runtime.Value, error) {
	for _, clause := range node.Clauses {
		condition, err := e.Eval(clause.Condition)
		if err != nil {
			return nil, err
		}
		if runtime.IsTruthy(condition) {
			return e.evalSequence(clause.Body)
		}
	}
	if node.Else != nil {
		return e.evalSequence(node.Else)
	}
	return runtime.Unit, nil
}

// evalAnd short-circuits left to right; the result is always a boolean.
func (e *Evaluator) evalAnd(node *ast.AndExpression) (runtime.Value, error) {
	for _, operand := range node.Operands {
		v, err := e.Eval(operand)
		if err != nil {
			return nil, err
		}
		if !runtime.IsTruthy(v) {
			return &runtime.BooleanValue{Value: false}, nil
		}
	}
	return &runtime.BooleanValue{Value: true}, nil
}

// evalOr short-circuits left to right; the result is always a boolean.
func (e *Evaluator) evalOr(node *ast.OrExpression) (runtime.Value, error) {
	for _, operand := range node.Operands {
		v, err := e.Eval(operand)
		if err != nil {
			return nil, err
		}
		if runtime.IsTruthy(v) {
			return &runtime.BooleanValue{Value: true}, nil
		}
	}
	return &runtime.BooleanValue{Value: false}, nil
}

// evalNot negates truthiness.
func (e *Evaluator) evalNot(node *ast.NotExpression) (runtime.Value, error) {
	v, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	return &runtime.BooleanValue{Value: !runtime.IsTruthy(v)}, nil
}
