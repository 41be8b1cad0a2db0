package emulator

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/probeum/neovm-debugger/abi"
	"github.com/probeum/neovm-debugger/argmarshal"
	neocommon "github.com/probeum/neovm-debugger/common"
	"github.com/probeum/neovm-debugger/gas"
	"github.com/probeum/neovm-debugger/txharness"
)

// Reset rebuilds the VM, loads the contract script then the lowered
// argument prelude, re-registers breakpoints, and rewrites any
// pending transaction output still carrying the placeholder script
// hash (spec.md §3 Lifecycle, §4.5, §4.6). It is idempotent from any
// prior state — Invalid, Reset, Running, Break, Finished, or
// Exception all recover into Reset, matching the Lifecycle paragraph's
// "Repeat from Reset" after an absorbing state.
func (e *Emulator) Reset(inputs *argmarshal.Node, abiDef abi.ABI) (DebuggerState, error) {
	if e.account == nil {
		return e.lastState, neocommon.ErrBytecodeMissing
	}

	prelude, err := argmarshal.Lower(inputs)
	if err != nil {
		return e.lastState, err
	}

	if tx := e.harness.Current(); tx != nil {
		rewriteTransactionPlaceholder(tx, e.placeholderScriptHash, e.account.ScriptHash)
	}

	bytecode, ok := e.cache.get(e.account.ScriptHash)
	if !ok {
		bytecode = e.account.Bytecode
	}

	e.abiDef = abiDef
	e.engine = &EngineHandle{Engine: e.newEngine(), token: e.token}
	e.engine.LoadScript(bytecode)
	e.engine.LoadScript(prelude)
	for _, off := range e.breakpoints.All() {
		e.engine.AddBreakPoint(off)
	}
	log.Info("neovm-debugger session reset", "token", e.token, "scriptHash", e.account.ScriptHash, "breakpoints", len(e.breakpoints.All()))

	e.usedGas = gas.Zero()
	e.usedOpc = 0
	e.lastState = DebuggerState{Kind: Reset}

	// The Harness's current transaction is cleared at the end of Reset;
	// the same value stays reachable through DanglingTransaction.
	e.danglingTransaction = e.harness.Current()
	e.harness.Clear()

	return e.lastState, nil
}

// rewriteTransactionPlaceholder rewrites every output of tx whose
// script hash equals placeholder to real, in place (spec.md §4.6:
// "any pre-existing transaction output whose hash equals the
// emulator's 'current hash' placeholder is rewritten to the
// contract's actual script hash after load").
func rewriteTransactionPlaceholder(tx *txharness.Transaction, placeholder, real common.Address) {
	for i := range tx.Outputs {
		if tx.Outputs[i].ScriptHash == placeholder {
			tx.Outputs[i].ScriptHash = real
		}
	}
}
