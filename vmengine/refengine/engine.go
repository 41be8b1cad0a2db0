// Package refengine is a minimal stack-machine test double satisfying
// vmengine.Engine, used only by this module's own tests (spec.md §1
// places the real interpreter out of scope; a session needs something
// that actually executes to drive the Stepping Engine end to end).
//
// Grounded on the call-frame / register / program-counter shape of the
// teacher's go-probe-master/probe-lang/lang/vm/vm.go, simplified down
// to the handful of opcodes the argument marshaller emits and the gas
// table classifies: PUSH*, PUSHDATA1/2, PACK, UNPACK, DUP, JMP, RET,
// APPCALL/TAILCALL (skipped, not actually dispatched — call semantics
// are the real interpreter's concern), SYSCALL, and THROW.
//
// The evaluation stack and alt stack are owned by the Engine itself,
// not by each call frame: legacy NeoVM's ExecutionEngine shares one
// EvaluationStack across every ExecutionContext on its invocation
// stack, which is exactly what lets the argument marshaller's prelude
// push values that are still visible once control returns into the
// contract script after the prelude's RET.
package refengine

import (
	"encoding/binary"

	"github.com/probeum/neovm-debugger/stackitem"
	"github.com/probeum/neovm-debugger/vmengine"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

// stack is a plain LIFO slice of stackitem.Item, satisfying
// vmengine.Stack.
type stack struct{ items []stackitem.Item }

func (s *stack) Count() int { return len(s.items) }

func (s *stack) Peek(n int) (stackitem.Item, bool) {
	idx := len(s.items) - 1 - n
	if idx < 0 || idx >= len(s.items) {
		return nil, false
	}
	return s.items[idx], true
}

func (s *stack) push(item stackitem.Item) { s.items = append(s.items, item) }

func (s *stack) pop() (stackitem.Item, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// frame is one call-frame's script and instruction pointer.
type frame struct {
	script     []byte
	ip         uint32
	scriptHash [20]byte
}

// Engine is the reference VM. It is not goroutine-safe, matching the
// real interpreter's single-threaded per-session contract (spec.md
// §3: "Exclusively owned by the emulator").
type Engine struct {
	frames      []*frame
	eval        *stack
	alt         *stack
	state       vmengine.State
	breakpoints map[uint32]bool
	lastOpcode  byte
	lastSys     string
	haveSys     bool

	// lastFrame remembers the most recently active frame even after it
	// is popped off the call stack, so a halted or faulted session's
	// final script and offset (the Emulator Facade's ExecutingBytecode
	// and GetOutput read from them, spec.md §4.7) stay inspectable
	// instead of vanishing the instant the top-level frame returns.
	lastFrame *frame
}

// New creates an Engine with no loaded script.
func New() *Engine {
	return &Engine{
		breakpoints: make(map[uint32]bool),
		eval:        &stack{},
		alt:         &stack{},
	}
}

func (e *Engine) current() *frame {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// LoadScript pushes a new call frame for script.
func (e *Engine) LoadScript(script []byte) {
	f := &frame{script: script}
	e.frames = append(e.frames, f)
	e.lastFrame = f
}

// CurrentContext returns the active call frame's public shape. Once
// the call-frame chain has run empty (post-halt or post-fault), it
// falls back to the last frame that was active, so a session's final
// offset and script stay readable.
func (e *Engine) CurrentContext() (vmengine.Context, bool) {
	f := e.current()
	if f == nil {
		f = e.lastFrame
	}
	if f == nil {
		return vmengine.Context{}, false
	}
	return vmengine.Context{
		InstructionPointer: f.ip,
		Script:             f.script,
		ScriptHash:         f.scriptHash,
	}, true
}

// EvaluationStack returns the engine-wide evaluation stack.
func (e *Engine) EvaluationStack() vmengine.Stack { return e.eval }

// AltStack returns the engine-wide alt stack.
func (e *Engine) AltStack() vmengine.Stack { return e.alt }

func (e *Engine) AddBreakPoint(offset uint32) { e.breakpoints[offset] = true }

func (e *Engine) State() vmengine.State { return e.state }

func (e *Engine) ClearState() { e.state = vmengine.StateNone }

func (e *Engine) LastOpcode() byte { return e.lastOpcode }

func (e *Engine) LastSyscall() (string, bool) { return e.lastSys, e.haveSys }

// StepInto executes exactly one instruction in the current frame.
func (e *Engine) StepInto() {
	e.haveSys = false
	e.lastSys = ""

	f := e.current()
	if f == nil {
		e.state = vmengine.StateHalt
		return
	}
	if int(f.ip) >= len(f.script) {
		e.popFrame()
		return
	}

	op := opcode.Opcode(f.script[f.ip])
	e.lastOpcode = byte(op)
	start := f.ip
	f.ip++

	switch {
	case op == opcode.PUSH0:
		e.eval.push(stackitem.Boolean(false))
	case op >= opcode.PUSHBYTES1 && op <= opcode.PUSHBYTES75:
		n := int(op)
		data := e.readOperand(f, n)
		e.eval.push(stackitem.ByteArray(data))
	case op >= opcode.PUSH1 && op <= opcode.PUSH16:
		n := int(op-opcode.PUSH1) + 1
		e.eval.push(stackitem.NewInteger(bigFromInt(n)))
	case op == 0x4C: // PUSHDATA1
		n := e.readByte(f)
		data := e.readOperand(f, int(n))
		e.eval.push(stackitem.ByteArray(data))
	case op == 0x4D: // PUSHDATA2
		lenBytes := e.readOperand(f, 2)
		n := int(binary.LittleEndian.Uint16(lenBytes))
		data := e.readOperand(f, n)
		e.eval.push(stackitem.ByteArray(data))
	case op == 0x4F: // PUSHM1
		e.eval.push(stackitem.NewInteger(bigFromInt(-1)))
	case op == opcode.DUP:
		if top, ok := e.eval.Peek(0); ok {
			e.eval.push(top)
		}
	case op == opcode.PACK:
		e.doPack()
	case op == opcode.UNPACK:
		e.doUnpack()
	case op == opcode.JMP:
		offBytes := e.readOperand(f, 2)
		off := int16(binary.LittleEndian.Uint16(offBytes))
		f.ip = uint32(int32(start) + int32(off))
	case op == opcode.APPCALL || op == opcode.TAILCALL:
		e.readOperand(f, 20) // script hash operand; call dispatch is out of scope
	case op == opcode.SYSCALL:
		n := e.readByte(f)
		name := e.readOperand(f, int(n))
		e.lastSys = string(name)
		e.haveSys = true
	case op == opcode.RET:
		e.popFrame()
		return
	case op == opcode.THROW:
		e.state = vmengine.StateFault
		return
	default:
		// NOP and any other zero-operand opcode: advance only.
	}

	if e.breakpoints[f.ip] {
		e.state = vmengine.StateBreak
	}
}

func (e *Engine) popFrame() {
	if len(e.frames) == 0 {
		return
	}
	e.frames = e.frames[:len(e.frames)-1]
	if len(e.frames) == 0 {
		e.state = vmengine.StateHalt
		return
	}
	e.lastFrame = e.frames[len(e.frames)-1]
}

func (e *Engine) readByte(f *frame) byte {
	b := f.script[f.ip]
	f.ip++
	return b
}

func (e *Engine) readOperand(f *frame, n int) []byte {
	data := f.script[f.ip : int(f.ip)+n]
	f.ip += uint32(n)
	return data
}

func (e *Engine) doPack() {
	countItem, ok := e.eval.pop()
	if !ok {
		e.state = vmengine.StateFault
		return
	}
	count := asInt(countItem)
	items := make(stackitem.Array, count)
	for i := 0; i < count; i++ {
		item, ok := e.eval.pop()
		if !ok {
			e.state = vmengine.StateFault
			return
		}
		items[i] = item
	}
	e.eval.push(items)
}

func (e *Engine) doUnpack() {
	top, ok := e.eval.pop()
	if !ok {
		e.state = vmengine.StateFault
		return
	}
	arr, ok := top.(stackitem.Array)
	if !ok {
		e.state = vmengine.StateFault
		return
	}
	for _, item := range arr {
		e.eval.push(item)
	}
	e.eval.push(stackitem.NewInteger(bigFromInt(len(arr))))
}
