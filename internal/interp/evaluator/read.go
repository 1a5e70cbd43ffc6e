package evaluator

import (
	"strconv"
	"strings"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp/runtime"
)

// ClassifyInput classifies one line of user input for (read). The line is
// trimmed of surrounding whitespace, then:
//
//   - a line starting with '( and ending with ) must be reparsed as a
//     quoted-list expression: needsParse is true and value is nil;
//   - a decimal integer yields an integer value;
//   - a literal containing '.' that parses as a float yields a float;
//   - anything else yields the trimmed line as a string.
//
// The classification is pure so it can be tested without streams.
func ClassifyInput(line string) (value runtime.Value, needsParse bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "'(") && strings.HasSuffix(trimmed, ")") {
		return nil, true
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &runtime.IntegerValue{Value: n}, false
	}
	if strings.Contains(trimmed, ".") {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return &runtime.FloatValue{Value: f}, false
		}
	}
	return &runtime.StringValue{Value: trimmed}, false
}
