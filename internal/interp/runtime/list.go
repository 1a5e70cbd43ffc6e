package runtime

import "strings"

// ListValue is an ordered, immutable sequence of values. Operations like
// Cons and Rest build new lists rather than aliasing the receiver's
// element slice.
type ListValue struct {
	Elements []Value
}

// NewList creates a list from the given elements. The slice is copied so
// later mutation of the argument cannot alias into the list.
func NewList(elements []Value) *ListValue {
	elems := make([]Value, len(elements))
	copy(elems, elements)
	return &ListValue{Elements: elems}
}

// EmptyList returns a fresh empty list.
func EmptyList() *ListValue {
	return &ListValue{Elements: []Value{}}
}

// Type returns "list".
func (l *ListValue) Type() string { return "list" }

// String renders the list as (e1 e2 ...) with single spaces.
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// IsEmpty reports whether the list has no elements.
func (l *ListValue) IsEmpty() bool { return len(l.Elements) == 0 }

// Cons returns a new list with v prepended.
func (l *ListValue) Cons(v Value) *ListValue {
	elems := make([]Value, 0, len(l.Elements)+1)
	elems = append(elems, v)
	elems = append(elems, l.Elements...)
	return &ListValue{Elements: elems}
}

// Rest returns a new list of all elements but the first. The receiver must
// be non-empty.
func (l *ListValue) Rest() *ListValue {
	elems := make([]Value, len(l.Elements)-1)
	copy(elems, l.Elements[1:])
	return &ListValue{Elements: elems}
}
