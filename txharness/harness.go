package txharness

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/probeum/neovm-debugger/invoker"
)

// Harness owns the current synthetic transaction and the block it was
// minted against (spec.md §4.6, C6). The emulator holds one Harness per
// session and asks it to rebuild the transaction on every
// SetTransaction call; the VM may still hold a reference to a
// Transaction value after Clear empties the Harness's own pointer —
// spec.md §9 records that this dangling-reference behavior is
// preserved rather than guarded against.
type Harness struct {
	blockchain Blockchain
	invoker    invoker.Context

	block   *Block
	current *Transaction
}

// New creates a Harness bound to its blockchain and invoker-identity
// collaborators. invokerCtx may be nil, in which case the harness
// behaves as if invoker.Default{} had been supplied.
func New(blockchain Blockchain, invokerCtx invoker.Context) *Harness {
	if invokerCtx == nil {
		invokerCtx = invoker.Default{}
	}
	return &Harness{blockchain: blockchain, invoker: invokerCtx}
}

// SetTransaction mints a new block, builds the two-output synthetic
// transaction described by spec.md §4.6 (destination receives amount,
// the invoker's current address receives the placeholder change
// output), and confirms the block, per spec.md §4.6's "constructs a
// new block, builds a transaction with two outputs ... and confirms
// the block."
func (h *Harness) SetTransaction(assetID common.Hash, amount *big.Int, destination common.Address) *Transaction {
	h.block = h.blockchain.GenerateBlock()
	source := h.invoker.CurrentAddress()
	h.current = BuildTransaction(assetID, amount, destination, source)
	h.blockchain.ConfirmBlock(h.block)
	return h.current
}

// Current returns the transaction built by the most recent
// SetTransaction call, or nil if none has been built yet or Clear has
// since been called.
func (h *Harness) Current() *Transaction {
	return h.current
}

// CurrentBlock returns the block minted by the most recent
// SetTransaction call.
func (h *Harness) CurrentBlock() *Block {
	return h.block
}

// Clear drops the Harness's own reference to the current transaction
// and block, modeling spec.md §9's "currentTransaction cleared while
// the VM still holds a reference" case: a VM script that captured the
// transaction object before Clear was called keeps working against the
// value it captured, since Go's garbage collector keeps it alive as
// long as the VM's own reference survives. Only the Harness's pointer
// is reset here.
func (h *Harness) Clear() {
	h.current = nil
	h.block = nil
}
