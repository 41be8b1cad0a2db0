// Package vmengine declares the contract the underlying stack-VM
// interpreter must satisfy (spec.md §6, upstream/consumed). The
// interpreter itself — opcode semantics, the call-frame chain, the
// actual evaluation stack storage — is an external collaborator and is
// deliberately not implemented here (spec.md §1). A minimal reference
// implementation for this module's own tests lives in
// vmengine/refengine, grounded on the teacher's
// go-probe-master/probe-lang/lang/vm/vm.go register/stack/pc shape,
// trimmed down to a plain stack machine.
package vmengine

import "github.com/probeum/neovm-debugger/stackitem"

// State is the VM's status flag, per spec.md §6.
type State byte

const (
	StateNone State = iota
	StateHalt
	StateFault
	StateBreak
)

func (s State) String() string {
	switch s {
	case StateHalt:
		return "HALT"
	case StateFault:
		return "FAULT"
	case StateBreak:
		return "BREAK"
	default:
		return "NONE"
	}
}

// Context is the VM's current call frame, per spec.md §6
// (`current_context.{instruction_pointer, script, script_hash}`).
type Context struct {
	InstructionPointer uint32
	Script             []byte
	ScriptHash         [20]byte
}

// Stack is a peekable LIFO stack — the contract both the evaluation
// stack and the alt stack satisfy (spec.md §6: "evaluation_stack/
// alt_stack with peek(n)").
type Stack interface {
	// Count returns the number of items currently on the stack.
	Count() int
	// Peek returns the item n deep from the top (0 = top of stack).
	// ok is false if the stack has fewer than n+1 items.
	Peek(n int) (item stackitem.Item, ok bool)
}

// Engine is the external VM handle the stepping engine drives. It owns
// the instruction pointer, evaluation stack, alt stack, and call-frame
// chain; the emulator never mutates these directly, only through this
// interface (spec.md §3: "Exclusively owned by the emulator").
type Engine interface {
	// LoadScript pushes a new script onto the call-frame chain and makes
	// it the current context. The Stepping Engine loads the contract
	// script first, then the argument marshaller's prelude script, so
	// execution begins in the prelude and returns into the contract.
	LoadScript(script []byte)

	// StepInto executes exactly one instruction.
	StepInto()

	// CurrentContext returns the active call frame, or ok=false if there
	// is no frame to report. Once the call-frame chain has run empty
	// (post-halt), an implementation may either return ok=false or keep
	// reporting the last active frame; refengine does the latter.
	CurrentContext() (ctx Context, ok bool)

	// EvaluationStack and AltStack are the two LIFO stacks owned by the
	// current call frame.
	EvaluationStack() Stack
	AltStack() Stack

	// AddBreakPoint registers a script offset with the VM itself
	// (spec.md §4.4: "On every Reset, all breakpoints are
	// re-registered with the underlying VM").
	AddBreakPoint(offset uint32)

	// State reports the VM's current status flag.
	State() State

	// ClearState resets the status flag to StateNone, e.g. after a
	// Break has been observed and reported (spec.md §4.5 step 4).
	ClearState()

	// LastOpcode and LastSyscall describe the instruction StepInto just
	// executed, for gas accounting (spec.md §4.2, §4.5 step 3).
	LastOpcode() byte
	LastSyscall() (name string, ok bool)
}
