package runtime

import (
	"fmt"
	"io"
	"os"
)

// Frame is one level of the environment stack, mapping identifiers to
// values.
type Frame map[string]Value

// Environment is an ordered stack of frames. Frame 0 is the global frame
// and is never popped. Lookup searches from the top frame down, so inner
// bindings shadow outer ones.
//
// Function calls do not simply push a frame: a callee must see only the
// global frame plus its own parameter frame, never the caller's locals.
// EnterCall detaches the caller's non-global frames and ExitCall restores
// them; callers pair the two with defer so the stack depth is restored on
// every exit path, including errors.
type Environment struct {
	frames []Frame

	// diag receives caller-contract violations (popping the global frame).
	diag io.Writer
}

// NewEnvironment creates an environment holding only the global frame.
func NewEnvironment() *Environment {
	return &Environment{
		frames: []Frame{make(Frame)},
		diag:   os.Stderr,
	}
}

// SetDiagnostics redirects contract-violation reports, used by tests.
func (e *Environment) SetDiagnostics(w io.Writer) {
	e.diag = w
}

// Push appends a new empty frame on top of the stack.
func (e *Environment) Push() {
	e.frames = append(e.frames, make(Frame))
}

// Pop removes the top frame. Popping the global frame is a caller contract
// violation: it is reported to stderr and otherwise a no-op.
func (e *Environment) Pop() {
	if len(e.frames) == 1 {
		fmt.Fprintln(e.diag, "environment: refusing to pop the global frame")
		return
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Current returns the top frame; define and let install bindings here.
func (e *Environment) Current() Frame {
	return e.frames[len(e.frames)-1]
}

// Global returns frame 0; the driver uses it to check for a main entry.
func (e *Environment) Global() Frame {
	return e.frames[0]
}

// Depth returns the number of frames on the stack.
func (e *Environment) Depth() int {
	return len(e.frames)
}

// Lookup searches the stack from top to bottom and returns the first
// binding for name.
func (e *Environment) Lookup(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define installs name in the current frame. A name already present in
// that same frame is refused with a RedefinitionError; shadowing a name
// bound in a lower frame is allowed.
func (e *Environment) Define(name string, v Value) error {
	frame := e.Current()
	if _, exists := frame[name]; exists {
		return NewRedefinitionError(name)
	}
	frame[name] = v
	return nil
}

// EnterCall prepares the stack for a function call: the caller's local
// frames are detached, leaving [global], and a fresh frame is pushed for
// the callee's parameters. The detached frames are returned so ExitCall
// can restore them.
func (e *Environment) EnterCall() []Frame {
	saved := e.frames[1:]
	e.frames = append([]Frame{e.frames[0]}, make(Frame))
	return saved
}

// ExitCall restores the caller's local frames detached by EnterCall,
// discarding everything the callee pushed.
func (e *Environment) ExitCall(saved []Frame) {
	e.frames = append(e.frames[:1], saved...)
}
