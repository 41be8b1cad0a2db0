package emulator

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/probeum/neovm-debugger/abi"
	"github.com/probeum/neovm-debugger/breakpoint"
	neocommon "github.com/probeum/neovm-debugger/common"
	"github.com/probeum/neovm-debugger/gas"
	"github.com/probeum/neovm-debugger/invoker"
	"github.com/probeum/neovm-debugger/stackitem"
	"github.com/probeum/neovm-debugger/storagemeter"
	"github.com/probeum/neovm-debugger/txharness"
	"github.com/probeum/neovm-debugger/variable"
	"github.com/probeum/neovm-debugger/vmengine"
)

// EngineFactory creates a fresh VM engine for each Reset, per spec.md
// §3 ("vm_engine: opaque handle... Exclusively owned by the
// emulator") and §4.5 ("Reset... rebuilds the VM"). Tests supply
// vmengine/refengine.New; a production caller would supply whatever
// constructs the real interpreter the facade itself deliberately never
// builds (spec.md §1).
type EngineFactory func() vmengine.Engine

// Emulator is one debug session (spec.md §3 Data Model). Exactly one
// Account may be bound at a time via SetExecutingAccount; Reset rebuilds
// the VM engine against that account's bytecode and the lowered
// argument prelude.
type Emulator struct {
	newEngine EngineFactory
	engine    vmengine.Engine

	account *Account
	cache   *bytecodeCache

	breakpoints *breakpoint.Set
	tracker     *variable.Tracker

	blockchain   txharness.Blockchain
	invokerCtx   invoker.Context
	harness      *txharness.Harness
	storageMeter storagemeter.Meter
	syscalls     gas.SyscallTable

	// placeholderScriptHash is the sentinel destination SetTransaction
	// uses before the executing account's real script hash is known;
	// Reset rewrites any output carrying it, per spec.md §4.6.
	placeholderScriptHash common.Address

	// danglingTransaction is the transaction that was pending when
	// Reset last ran, with its placeholder outputs already rewritten.
	// Reset clears the Harness's own pointer, but the same value stays
	// reachable here. The VM engine itself is never handed the
	// transaction.
	danglingTransaction *txharness.Transaction

	witnessMode neocommon.WitnessMode
	trigger     neocommon.Trigger
	timestamp   uint32

	lastState DebuggerState
	usedGas   gas.Amount
	usedOpc   uint64

	abiDef abi.ABI

	onStep func(StepInfo)

	token Token
}

// New creates an Emulator bound to its blockchain and invoker-identity
// collaborators, using newEngine to construct a fresh VM engine on
// every Reset. storageMeter may be nil if the session never exercises
// Storage.Put.
func New(newEngine EngineFactory, blockchain txharness.Blockchain, invokerCtx invoker.Context, storageMeter storagemeter.Meter) *Emulator {
	e := &Emulator{
		newEngine:             newEngine,
		breakpoints:           breakpoint.New(),
		tracker:               variable.NewTracker(),
		blockchain:            blockchain,
		invokerCtx:            invokerCtx,
		storageMeter:          storageMeter,
		syscalls:              gas.DefaultSyscallTable(),
		cache:                 newBytecodeCache(),
		placeholderScriptHash: common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff"),
		lastState:             DebuggerState{Kind: Invalid},
		usedGas:               gas.Zero(),
	}
	e.harness = txharness.New(blockchain, invokerCtx)
	e.token = newToken(e)
	return e
}

// SetExecutingAccount binds the contract bytecode Reset will load
// (spec.md §4.7: "binds bytecode"). It also populates the bytecode
// cache keyed by scriptHash.
func (e *Emulator) SetExecutingAccount(scriptHash common.Address, bytecode []byte) {
	e.account = &Account{ScriptHash: scriptHash, Bytecode: bytecode}
	e.cache.put(scriptHash, bytecode)
}

// SetBreakpoint inserts or removes offset from the local breakpoint
// set (spec.md §4.4). It takes effect on the next Reset.
func (e *Emulator) SetBreakpoint(offset uint32, enabled bool) {
	e.breakpoints.SetBreakpoint(offset, enabled)
}

// SetWitnessMode overrides signature-check syscalls for debugging
// (spec.md §3).
func (e *Emulator) SetWitnessMode(mode neocommon.WitnessMode) { e.witnessMode = mode }

// WitnessMode returns the current witness mode.
func (e *Emulator) WitnessMode() neocommon.WitnessMode { return e.witnessMode }

// SetTrigger sets the VM execution mode (spec.md §3).
func (e *Emulator) SetTrigger(trigger neocommon.Trigger) { e.trigger = trigger }

// Trigger returns the current execution mode.
func (e *Emulator) Trigger() neocommon.Trigger { return e.trigger }

// SetTimestamp sets the simulated block timestamp (spec.md §3).
func (e *Emulator) SetTimestamp(ts uint32) { e.timestamp = ts }

// RegisterAssignment forwards to the Variable Tracker (spec.md §4.3).
func (e *Emulator) RegisterAssignment(offset uint32, name string, declaredType stackitem.Kind) {
	e.tracker.RegisterAssignment(offset, name, declaredType)
}

// ClearAssignments forwards to the Variable Tracker (spec.md §4.3).
func (e *Emulator) ClearAssignments() { e.tracker.ClearAssignments() }

// SetTransaction builds the synthetic transaction this session's
// script executes against (spec.md §4.6), using the placeholder script
// hash as the destination until the executing account is bound and
// Reset rewrites it.
func (e *Emulator) SetTransaction(assetID common.Hash, amount *big.Int) *txharness.Transaction {
	return e.harness.SetTransaction(assetID, amount, e.placeholderScriptHash)
}

// SetOnStep installs the single-subscriber step observer (spec.md
// §4.7, §5).
func (e *Emulator) SetOnStep(fn func(StepInfo)) { e.onStep = fn }

// State returns the last DebuggerState produced by Step or Run.
func (e *Emulator) State() DebuggerState { return e.lastState }

// UsedGas returns the gas accumulated so far this session.
func (e *Emulator) UsedGas() gas.Amount { return e.usedGas }

// UsedOpcodeCount returns the number of on_step invocations since the
// last Reset (spec.md §8 invariant 2).
func (e *Emulator) UsedOpcodeCount() uint64 { return e.usedOpc }

// EvaluationStack exposes the current frame's evaluation stack, or nil
// if no VM is loaded.
func (e *Emulator) EvaluationStack() vmengine.Stack {
	if e.engine == nil {
		return nil
	}
	return e.engine.EvaluationStack()
}

// AltStack exposes the current frame's alt stack, or nil if no VM is
// loaded.
func (e *Emulator) AltStack() vmengine.Stack {
	if e.engine == nil {
		return nil
	}
	return e.engine.AltStack()
}

// ExecutingBytecode returns the current frame's script, or ok=false if
// unavailable (spec.md §4.7).
func (e *Emulator) ExecutingBytecode() ([]byte, bool) {
	if e.engine == nil {
		return nil, false
	}
	ctx, ok := e.engine.CurrentContext()
	if !ok {
		return nil, false
	}
	return ctx.Script, true
}

// GetVariable forwards to the Variable Tracker (spec.md §4.7).
func (e *Emulator) GetVariable(name string) (variable.Value, bool) {
	return e.tracker.GetVariable(name)
}

// GetOutput peeks the top of the evaluation stack after a Finished
// session (spec.md §4.7).
func (e *Emulator) GetOutput() (stackitem.Item, bool) {
	stack := e.EvaluationStack()
	if stack == nil {
		return nil, false
	}
	return stack.Peek(0)
}

// Token returns the session's stable registry handle (spec.md §9).
func (e *Emulator) Token() Token { return e.token }

// DanglingTransaction returns the transaction that was pending when
// Reset last ran, even after the Harness's own reference has been
// cleared. It is nil if no transaction was pending at that Reset.
func (e *Emulator) DanglingTransaction() *txharness.Transaction { return e.danglingTransaction }
