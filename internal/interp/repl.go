package interp

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt is the interactive prompt shown before each input line.
const Prompt = "mini-scheme> "

// RunREPL reads one line at a time from the interpreter's input stream,
// evaluates it, and prints non-unit results. Runtime errors are reported
// to errOut as one line and the loop continues; syntax errors have
// already been reported by RunProgram. The loop returns nil on EOF.
//
// The prompt is written to the output stream when showPrompt is set;
// drivers turn it off when stdin is not a terminal.
func (i *Interpreter) RunREPL(errOut io.Writer, showPrompt bool) error {
	in := i.eval.Input()
	for {
		if showPrompt {
			fmt.Fprint(i.out, Prompt)
		}
		line, err := in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			if runErr := i.RunProgram(line); runErr != nil && !errors.Is(runErr, ErrSyntaxErrors) {
				fmt.Fprintf(errOut, "Error: %s\n", runErr)
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
