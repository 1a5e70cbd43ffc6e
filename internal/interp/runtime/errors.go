package runtime

import (
	"fmt"
)

// Runtime error kinds. Evaluator operations fail fast: these errors unwind
// the visit stack until the top-level driver catches them and prints a
// one-line message. Messages name the failing operation and the offending
// value's kind; they are human-oriented, not machine-parseable.

// UndefinedError reports a reference to an unbound identifier.
type UndefinedError struct {
	Name string
}

// Error implements the error interface.
func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined identifier: %s", e.Name)
}

// NewUndefinedError creates a new undefined-identifier error.
func NewUndefinedError(name string) error {
	return &UndefinedError{Name: name}
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}

// NewArityError creates a new arity error.
func NewArityError(name string, want, got int) error {
	return &ArityError{Name: name, Want: want, Got: got}
}

// TypeError reports an operation applied to a value of the wrong kind.
type TypeError struct {
	Operation string // e.g. "car"
	Want      string // e.g. "a list"
	Got       Value  // the offending value (may be nil)
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%s expects %s", e.Operation, e.Want)
	}
	return fmt.Sprintf("%s expects %s, got %s", e.Operation, e.Want, e.Got.Type())
}

// NewTypeError creates a new type error.
func NewTypeError(operation, want string, got Value) error {
	return &TypeError{Operation: operation, Want: want, Got: got}
}

// RangeError reports an operation on a value outside its domain, such as
// taking the car of an empty list.
type RangeError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s", e.Operation, e.Reason)
}

// NewRangeError creates a new range error.
func NewRangeError(operation, reason string) error {
	return &RangeError{Operation: operation, Reason: reason}
}

// ArithError reports a failed arithmetic operation.
type ArithError struct {
	Operation string // e.g. "division by zero"
}

// Error implements the error interface.
func (e *ArithError) Error() string {
	return fmt.Sprintf("arithmetic error: %s", e.Operation)
}

// NewArithError creates a new arithmetic error.
func NewArithError(operation string) error {
	return &ArithError{Operation: operation}
}

// RedefinitionError reports a define or let binding for a name already
// bound in the same frame.
type RedefinitionError struct {
	Name string
}

// Error implements the error interface.
func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("redefinition of %s in the same scope", e.Name)
}

// NewRedefinitionError creates a new redefinition error.
func NewRedefinitionError(name string) error {
	return &RedefinitionError{Name: name}
}

// StackOverflowError reports recursion deeper than the configured limit.
type StackOverflowError struct {
	Depth int
}

// Error implements the error interface.
func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("recursion depth exceeded (%d)", e.Depth)
}

// NewStackOverflowError creates a new stack-overflow error.
func NewStackOverflowError(depth int) error {
	return &StackOverflowError{Depth: depth}
}
