package evaluator

import (
	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// evalCar returns the first element of a list.
func (e *Evaluator) evalCar(node *ast.CarExpression) (runtime.Value, error) {
	lst, err := e.evalListOperand("car", node.Operand)
	if err != nil {
		return nil, err
	}
	if lst.IsEmpty() {
		return nil, runtime.NewRangeError("car", "expects a non-empty list")
	}
	return lst.Elements[0], nil
}

// evalCdr returns the list of all elements but the first.
func (e *Evaluator) evalCdr(node *ast.CdrExpression) (runtime.Value, error) {
	lst, err := e.evalListOperand("cdr", node.Operand)
	if err != nil {
		return nil, err
	}
	if lst.IsEmpty() {
		return nil, runtime.NewRangeError("cdr", "expects a non-empty list")
	}
	return lst.Rest(), nil
}

// evalCons prepends an element, producing a new list.
func (e *Evaluator) evalCons(node *ast.ConsExpression) (runtime.Value, error) {
	head, err := e.Eval(node.Head)
	if err != nil {
		return nil, err
	}
	lst, err := e.evalListOperand("cons", node.Tail)
	if err != nil {
		return nil, err
	}
	return lst.Cons(head), nil
}

// evalNullCheck handles (null? e): true only for the empty list.
func (e *Evaluator) evalNullCheck(node *ast.NullCheckExpression) (runtime.Value, error) {
	v, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	lst, ok := v.(*runtime.ListValue)
	return &runtime.BooleanValue{Value: ok && lst.IsEmpty()}, nil
}

func (e *Evaluator) evalListOperand(operation string, expr ast.Expression) (*runtime.ListValue, error) {
	v, err := e.Eval(expr)
	if err != nil {
		return nil, err
	}
	lst, ok := v.(*runtime.ListValue)
	if !ok {
		return nil, runtime.NewTypeError(operation, "a list", v)
	}
	return lst, nil
}

// evalQuotedList builds a list from the quote's literal elements without
// evaluating them as code: identifiers stay as their text and nested
// lists nest.
func (e *Evaluator) evalQuotedList(node *ast.QuotedList) (runtime.Value, error) {
	elements := make([]runtime.Value, len(node.Elements))
	for i, elem := range node.Elements {
		v, err := e.evalQuotedElement(elem)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return &runtime.ListValue{Elements: elements}, nil
}

func (e *Evaluator) evalQuotedElement(elem ast.Expression) (runtime.Value, error) {
	switch elem := elem.(type) {
	case *ast.IntegerLiteral:
		return &runtime.IntegerValue{Value: elem.Value}, nil
	case *ast.FloatLiteral:
		return &runtime.FloatValue{Value: elem.Value}, nil
	case *ast.StringLiteral:
		return &runtime.StringValue{Value: elem.Value}, nil
	case *ast.BooleanLiteral:
		return &runtime.BooleanValue{Value: elem.Value}, nil
	case *ast.Identifier:
		// A quoted identifier is a symbol; it evaluates to its own text.
		return &runtime.StringValue{Value: elem.Value}, nil
	case *ast.QuotedList:
		return e.evalQuotedList(elem)
	default:
		return nil, runtime.NewTypeError("quote", "a literal element", nil)
	}
}
