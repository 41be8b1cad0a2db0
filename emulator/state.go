// Package emulator implements the Stepping Engine and Emulator Facade
// (spec.md §4.5, §4.7, C5/C7): the state machine that drives a VM
// engine one instruction at a time under debugger control, and the
// public contract a debugger UI drives it through.
//
// Grounded on core/handler_transition.go's state-machine shape (a
// StateTransition struct holding the interpreter, the message, and an
// accumulating gas pool, stepped by TransitionDb's sequential phases)
// generalized from "apply one transaction" to "apply one instruction,
// repeatedly, under external control".
package emulator

// StateKind is one of the six DebuggerState kinds (spec.md §3).
type StateKind byte

const (
	Invalid StateKind = iota
	Reset
	Running
	Break
	Finished
	Exception
)

func (k StateKind) String() string {
	switch k {
	case Reset:
		return "Reset"
	case Running:
		return "Running"
	case Break:
		return "Break"
	case Finished:
		return "Finished"
	case Exception:
		return "Exception"
	default:
		return "Invalid"
	}
}

// DebuggerState is a state kind plus the last known instruction
// offset (spec.md §3: "Each carries the last known offset").
type DebuggerState struct {
	Kind   StateKind
	Offset uint32
}

// Absorbing reports whether further Step/Run calls are no-ops until
// the next Reset (spec.md §4.5, §8 invariant 3).
func (s DebuggerState) Absorbing() bool {
	return s.Kind == Finished || s.Kind == Exception
}
