package evaluator

import (
	"math"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
	"github.com/alexrr04/mini-scheme-interpreter/pkg/ast"
)

// Operator tables: static mappings from operator symbols to pure binary
// functions, applied by left fold (arithmetic) or over adjacent pairs
// (relational).

type arithmeticFunc func(left, right runtime.Value) (runtime.Value, error)

type relationalFunc func(cmp int) bool

var arithmeticOperations = map[string]arithmeticFunc{
	"+":   addValues,
	"-":   subtractValues,
	"*":   multiplyValues,
	"/":   divideValues,
	"mod": moduloValues,
}

var relationalOperations = map[string]relationalFunc{
	"<":  func(cmp int) bool { return cmp < 0 },
	">":  func(cmp int) bool { return cmp > 0 },
	"<=": func(cmp int) bool { return cmp <= 0 },
	">=": func(cmp int) bool { return cmp >= 0 },
	"=":  func(cmp int) bool { return cmp == 0 },
	"<>": func(cmp int) bool { return cmp != 0 },
}

// evalArithmetic applies the operator as a left fold over the operands.
// A single float operand promotes the whole fold to float arithmetic.
func (e *Evaluator) evalArithmetic(node *ast.ArithmeticExpression) (runtime.Value, error) {
	op, ok := arithmeticOperations[node.Operator]
	if !ok {
		return nil, runtime.NewTypeError(node.Operator, "a known arithmetic operator", nil)
	}

	operands := make([]runtime.Value, len(node.Operands))
	anyFloat := false
	for i, expr := range node.Operands {
		v, err := e.Eval(expr)
		if err != nil {
			return nil, err
		}
		switch v.(type) {
		case *runtime.IntegerValue:
		case *runtime.FloatValue:
			anyFloat = true
		default:
			return nil, runtime.NewTypeError(node.Operator, "numeric operands", v)
		}
		operands[i] = v
	}
	if anyFloat {
		for i, v := range operands {
			if iv, ok := v.(*runtime.IntegerValue); ok {
				operands[i] = &runtime.FloatValue{Value: float64(iv.Value)}
			}
		}
	}

	acc := operands[0]
	for _, v := range operands[1:] {
		var err error
		acc, err = op(acc, v)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func addValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := bothIntegers(left, right); ok {
		return &runtime.IntegerValue{Value: l + r}, nil
	}
	l, r := bothFloats(left, right)
	return &runtime.FloatValue{Value: l + r}, nil
}

func subtractValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := bothIntegers(left, right); ok {
		return &runtime.IntegerValue{Value: l - r}, nil
	}
	l, r := bothFloats(left, right)
	return &runtime.FloatValue{Value: l - r}, nil
}

func multiplyValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := bothIntegers(left, right); ok {
		return &runtime.IntegerValue{Value: l * r}, nil
	}
	l, r := bothFloats(left, right)
	return &runtime.FloatValue{Value: l * r}, nil
}

// divideValues is floor division on integers and true division on floats.
func divideValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return nil, runtime.NewArithError("division by zero")
		}
		return &runtime.IntegerValue{Value: floorDiv(l, r)}, nil
	}
	l, r := bothFloats(left, right)
	if r == 0 {
		return nil, runtime.NewArithError("division by zero")
	}
	return &runtime.FloatValue{Value: l / r}, nil
}

// moduloValues is the truncated remainder; the sign follows the left
// operand.
func moduloValues(left, right runtime.Value) (runtime.Value, error) {
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return nil, runtime.NewArithError("modulo by zero")
		}
		return &runtime.IntegerValue{Value: l % r}, nil
	}
	l, r := bothFloats(left, right)
	if r == 0 {
		return nil, runtime.NewArithError("modulo by zero")
	}
	return &runtime.FloatValue{Value: math.Mod(l, r)}, nil
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func bothIntegers(left, right runtime.Value) (int64, int64, bool) {
	l, lok := left.(*runtime.IntegerValue)
	r, rok := right.(*runtime.IntegerValue)
	if lok && rok {
		return l.Value, r.Value, true
	}
	return 0, 0, false
}

// bothFloats widens both operands to float. Callers have already checked
// that both are numeric.
func bothFloats(left, right runtime.Value) (float64, float64) {
	l, _ := left.(runtime.NumericValue).AsFloat()
	r, _ := right.(runtime.NumericValue).AsFloat()
	return l, r
}

// evalRelational implements chained comparison: (op x1 x2 ... xn) is true
// iff op holds for every adjacent pair. The result is always a boolean.
func (e *Evaluator) evalRelational(node *ast.RelationalExpression) (runtime.Value, error) {
	holds, ok := relationalOperations[node.Operator]
	if !ok {
		return nil, runtime.NewTypeError(node.Operator, "a known relational operator", nil)
	}

	operands := make([]runtime.Value, len(node.Operands))
	for i, expr := range node.Operands {
		v, err := e.Eval(expr)
		if err != nil {
			return nil, err
		}
		operands[i] = v
	}

	for i := 0; i < len(operands)-1; i++ {
		cmp, err := compareValues(node.Operator, operands[i], operands[i+1])
		if err != nil {
			return nil, err
		}
		if !holds(cmp) {
			return &runtime.BooleanValue{Value: false}, nil
		}
	}
	return &runtime.BooleanValue{Value: true}, nil
}

// compareValues orders two values of compatible kinds. Mixed numeric
// operands promote to float; strings compare lexicographically; booleans
// support equality only. Anything else is a type error.
func compareValues(op string, left, right runtime.Value) (int, error) {
	ln, lok := left.(runtime.NumericValue)
	rn, rok := right.(runtime.NumericValue)
	if lok && rok {
		if l, r, ok := bothIntegers(left, right); ok {
			return compareOrdered(l, r), nil
		}
		l, _ := ln.AsFloat()
		r, _ := rn.AsFloat()
		return compareOrdered(l, r), nil
	}

	if l, ok := left.(*runtime.StringValue); ok {
		if r, ok := right.(*runtime.StringValue); ok {
			return compareOrdered(l.Value, r.Value), nil
		}
	}

	if l, ok := left.(*runtime.BooleanValue); ok {
		if r, ok := right.(*runtime.BooleanValue); ok && (op == "=" || op == "<>") {
			if l.Value == r.Value {
				return 0, nil
			}
			return 1, nil
		}
	}

	return 0, runtime.NewTypeError(op, "comparable operands of matching kinds ("+left.Type()+" vs "+right.Type()+")", nil)
}

func compareOrdered[T int64 | float64 | string](l, r T) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
