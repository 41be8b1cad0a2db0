package emulator

import (
	"bytes"

	"github.com/ethereum/go-ethereum/log"

	"github.com/probeum/neovm-debugger/gas"
	"github.com/probeum/neovm-debugger/variable"
	"github.com/probeum/neovm-debugger/vmengine"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

// Step advances the session by one instruction and returns the
// resulting DebuggerState, per the single-step procedure in spec.md
// §4.5.
func (e *Emulator) Step() DebuggerState {
	if e.lastState.Absorbing() {
		return e.lastState
	}

	if e.lastState.Kind == Reset {
		e.bootstrap()
	}

	if runnable(e.engine.State()) {
		e.engine.StepInto()
		if e.engine.State() == vmengine.StateNone {
			if ctx, ok := e.engine.CurrentContext(); ok {
				e.tracker.UpdateAtOffset(ctx.InstructionPointer, e.engine.EvaluationStack())
			}
		}
	}

	offset := e.currentOffset()
	op := opcode.Opcode(e.engine.LastOpcode())
	syscallName, haveSyscall := e.engine.LastSyscall()
	payload := 0
	if e.storageMeter != nil {
		payload = e.storageMeter.LastPayloadBytes()
	}
	cost := gas.ComputeOpCost(op, syscallName, haveSyscall, e.syscalls, payload)
	e.usedGas = e.usedGas.Add(cost)
	e.usedOpc++

	info := StepInfo{
		Offset:  offset,
		Opcode:  byte(op),
		GasCost: cost.String(),
	}
	if script, ok := e.ExecutingBytecode(); ok {
		info.BytecodeSlice = script
	}
	if haveSyscall {
		info.SyscallName = syscallName
	}
	if e.onStep != nil {
		e.onStep(info)
	}

	switch e.engine.State() {
	case vmengine.StateFault:
		log.Error("neovm-debugger session faulted", "token", e.token, "offset", offset, "opcode", op)
		e.lastState = DebuggerState{Kind: Exception, Offset: offset}
	case vmengine.StateBreak:
		log.Info("neovm-debugger breakpoint hit", "token", e.token, "offset", offset)
		e.engine.ClearState()
		e.lastState = DebuggerState{Kind: Break, Offset: offset}
	case vmengine.StateHalt:
		e.lastState = DebuggerState{Kind: Finished, Offset: offset}
	default:
		e.lastState = DebuggerState{Kind: Running, Offset: offset}
	}
	return e.lastState
}

// Run repeats Step until the returned state is no longer Running
// (spec.md §4.5).
func (e *Emulator) Run() DebuggerState {
	for {
		s := e.Step()
		if s.Kind != Running {
			return s
		}
	}
}

// bootstrap implements spec.md §4.5 step 1: skip the prelude's initial
// call-frame entry, then seed entry-point variables.
func (e *Emulator) bootstrap() {
	e.engine.ClearState()

	before, _ := e.engine.CurrentContext()
	for {
		e.engine.StepInto()
		after, ok := e.engine.CurrentContext()
		if !ok || !bytes.Equal(before.Script, after.Script) {
			break
		}
	}

	inputs := make([]variable.Assignment, len(e.abiDef.EntryPoint.Inputs))
	for i, in := range e.abiDef.EntryPoint.Inputs {
		inputs[i] = variable.Assignment{Name: in.Name, DeclaredType: in.DeclaredType}
	}
	e.tracker.SeedEntryPointVariables(e.engine.EvaluationStack(), inputs)
}

// currentOffset reads the current instruction pointer, swallowing any
// introspection failure per spec.md §7 ("IntrospectionFailure...
// transient failure reading IP, opcode, or stack during stepping.
// Swallowed").
func (e *Emulator) currentOffset() uint32 {
	ctx, ok := e.engine.CurrentContext()
	if !ok {
		return 0
	}
	return ctx.InstructionPointer
}

func runnable(s vmengine.State) bool {
	return s != vmengine.StateHalt && s != vmengine.StateFault && s != vmengine.StateBreak
}
