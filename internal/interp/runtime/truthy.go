package runtime

// IsTruthy reports whether a value is truthy. Only the boolean #f is
// false; every other value, including 0, the empty list and the empty
// string, is true.
func IsTruthy(v Value) bool {
	if b, ok := v.(*BooleanValue); ok {
		return b.Value
	}
	return true
}
