package emulator

import (
	"github.com/probeum/neovm-debugger/storagemeter"
	"github.com/probeum/neovm-debugger/txharness"
	"github.com/probeum/neovm-debugger/vmengine"
)

// EngineHandle wraps a vmengine.Engine with the session token that lets
// code holding only the VM handle navigate back to the owning emulator,
// account, blockchain, and storage — the "script container" spec.md
// §4.7's closing paragraph and §9's cyclic-ownership note describe.
// Embedding vmengine.Engine means EngineHandle itself satisfies the
// interface, so the Stepping Engine can use it exactly as it would the
// bare engine.
type EngineHandle struct {
	vmengine.Engine
	token Token
}

// Emulator resolves the handle back to its owning Emulator via the
// process-wide session registry (spec.md §9).
func (h *EngineHandle) Emulator() (*Emulator, bool) {
	return lookupEmulator(h.token)
}

// Account resolves the handle to the emulator's currently bound
// account, if any.
func (h *EngineHandle) Account() (*Account, bool) {
	e, ok := h.Emulator()
	if !ok || e.account == nil {
		return nil, false
	}
	return e.account, true
}

// Blockchain resolves the handle to the emulator's blockchain
// collaborator.
func (h *EngineHandle) Blockchain() (txharness.Blockchain, bool) {
	e, ok := h.Emulator()
	if !ok || e.blockchain == nil {
		return nil, false
	}
	return e.blockchain, true
}

// Storage resolves the handle to the emulator's storage meter
// collaborator.
func (h *EngineHandle) Storage() (storagemeter.Meter, bool) {
	e, ok := h.Emulator()
	if !ok || e.storageMeter == nil {
		return nil, false
	}
	return e.storageMeter, true
}
