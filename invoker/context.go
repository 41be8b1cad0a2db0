// Package invoker declares the caller-identity collaborator spec.md §9
// asks to be "abstracted as an injected collaborator... passed into
// the emulator at construction" rather than hard-coded: the address a
// synthetic transaction's change output is returned to.
package invoker

import "github.com/ethereum/go-ethereum/common"

// Context supplies the invoking account's identity to the Transaction
// Harness. A nil Context, or one returning the zero address, is valid:
// spec.md §9 treats the all-zero script hash as the documented default
// source when no real invoker has been configured.
type Context interface {
	// CurrentAddress returns the script hash the harness should treat
	// as the source of a synthetic transaction's change output.
	CurrentAddress() common.Address
}

// Default is the zero-value Context: every call returns the all-zero
// address, matching the undecorated default spec.md §9 describes.
type Default struct{}

// CurrentAddress always returns the zero address.
func (Default) CurrentAddress() common.Address {
	return common.Address{}
}

// Static is a fixed-address Context, for tests and for callers that
// know their invoking account ahead of time.
type Static common.Address

// CurrentAddress returns the fixed address s wraps.
func (s Static) CurrentAddress() common.Address {
	return common.Address(s)
}
