// Package runtime provides the value system for the mini-scheme
// interpreter: the Value variants, the frame-stack environment and the
// runtime error kinds.
package runtime

// Value represents a runtime value. All runtime values implement this
// interface; String() renders the value in scheme syntax and is the form
// printed by the REPL and by display.
type Value interface {
	// Type returns the value's kind name ("integer", "list", ...), used in
	// error messages.
	Type() string
	// String returns the scheme rendering of the value.
	String() string
}

// NumericValue is implemented by values usable in arithmetic.
type NumericValue interface {
	Value
	// AsInteger returns the value as an integer when it is one.
	AsInteger() (int64, bool)
	// AsFloat returns the value widened to a float.
	AsFloat() (float64, bool)
}

// UnitValue is the absence of a meaningful value: the result of display,
// newline and define. The REPL suppresses it and it has no textual form.
type UnitValue struct{}

// Unit is the shared UnitValue instance; the interpreter never constructs
// another.
var Unit = &UnitValue{}

// Type returns "unit".
func (u *UnitValue) Type() string { return "unit" }

// String returns the empty string; unit is never printed.
func (u *UnitValue) String() string { return "" }

// IsUnit reports whether v is the unit value.
func IsUnit(v Value) bool {
	_, ok := v.(*UnitValue)
	return ok
}
