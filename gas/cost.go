// Package gas implements the per-opcode cost table (spec.md §4.2, C2):
// a fixed classification for most opcodes, a syscall-name lookup table
// for SYSCALL, and the Storage.Put payload-size multiplier.
//
// Grounded on other_examples/d4c65f74_qiluge-ontology__smartcontract-service-neovm-neovm_service.go.go,
// whose Invoke loop classifies PUSHBYTES1..75 at a flat OPCODE_GAS rate,
// looks up everything else in a per-opcode gasTable cache backed by a
// GasPrice(name) syscall lookup, and whose companion StoragePut service
// scales cost by the value being written. The actual magnitudes come
// from spec.md §4.2, not from the ontology table (its unit is "datoshi
// per opcode", NEO's is "GAS with >=8 fractional digits" — classification
// shape is shared, values are spec's).
package gas

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

var bigUnitsPerGas = big.NewInt(unitsPerGas)

// unitsPerGas is the fixed-point scale: Gas amounts are stored as
// uint256 integers counting 1/unitsPerGas of a whole gas unit, giving
// the >=8 fractional digits spec.md §3 requires of `decimal`. uint256
// is used rather than big.Int because used_gas only ever grows
// (invariant 1, spec.md §3) — an unsigned accumulator needs no sign
// handling, and uint256's fixed-width arithmetic is cheaper per step
// than arbitrary-precision big.Int on the hot stepping path.
const unitsPerGas = 100_000_000

// Amount is a non-negative, fixed-point gas quantity.
type Amount struct{ units *uint256.Int }

// Zero is the zero Amount.
func Zero() Amount { return Amount{uint256.NewInt(0)} }

// FromMilliUnits builds an Amount equal to milliUnits / 1000 gas, used
// for the small literal constants in the cost table below (0.001,
// 0.01, 0.02, 0.1 gas).
func FromMilliUnits(milliUnits uint64) Amount {
	u := new(uint256.Int).Mul(uint256.NewInt(milliUnits), uint256.NewInt(unitsPerGas/1000))
	return Amount{u}
}

// One is exactly 1.0 gas.
func One() Amount { return Amount{uint256.NewInt(unitsPerGas)} }

// Add returns a + b without mutating either operand.
func (a Amount) Add(b Amount) Amount {
	return Amount{new(uint256.Int).Add(a.units, b.units)}
}

// MulFraction returns a * numerator / denominator, truncating, with a
// floor of `floor` applied to the result (used for the Storage.Put
// clamp-to-1 rule). denominator must be > 0.
func (a Amount) MulFraction(numerator, denominator uint64, floor Amount) Amount {
	n := new(uint256.Int).Mul(a.units, uint256.NewInt(numerator))
	n.Div(n, uint256.NewInt(denominator))
	if n.Lt(floor.units) {
		return floor
	}
	return Amount{n}
}

// Cmp compares two Amounts the way uint256.Int.Cmp does.
func (a Amount) Cmp(b Amount) int { return a.units.Cmp(b.units) }

// Float64 renders the amount as a float64, for logging and tests only
// (never for accounting — accounting always stays in fixed-point
// uint256 space).
func (a Amount) Float64() float64 {
	f := new(big.Rat).SetFrac(a.units.ToBig(), bigUnitsPerGas)
	out, _ := f.Float64()
	return out
}

// String renders the amount with exactly eight fractional digits,
// e.g. "0.00100000".
func (a Amount) String() string {
	whole := new(uint256.Int).Div(a.units, uint256.NewInt(unitsPerGas))
	frac := new(uint256.Int).Mod(a.units, uint256.NewInt(unitsPerGas))
	return whole.Dec() + "." + padLeft(frac.Dec(), 8)
}

func padLeft(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

// Fixed cost constants from spec.md §4.2.
var (
	costZero      = Zero()
	costCheckSig  = FromMilliUnits(100) // 0.1
	costHashLight = FromMilliUnits(10)  // 0.01  (APPCALL, TAILCALL, SHA256, SHA1)
	costHash256   = FromMilliUnits(20)  // 0.02  (HASH256, HASH160)
	costDefault   = FromMilliUnits(1)   // 0.001 (all others)
)

// SyscallTable maps a syscall name to its base gas cost. Unknown names
// cost 0, per spec.md §4.2.
type SyscallTable map[string]Amount

// ComputeOpCost assesses the gas for one executed instruction, per the
// classification table in spec.md §4.2. syscallName/haveSyscall are
// only meaningful when op == SYSCALL. storagePayloadBytes is the
// collaborator-supplied value used for the Storage.Put scaling rule;
// it is ignored for every other syscall.
func ComputeOpCost(op opcode.Opcode, syscallName string, haveSyscall bool, table SyscallTable, storagePayloadBytes int) Amount {
	switch {
	case opcode.IsPush(op):
		return costZero
	case op == opcode.NOP:
		return costZero
	case op == opcode.CHECKSIG || op == opcode.CHECKMULTISIG:
		return costCheckSig
	case op == opcode.APPCALL || op == opcode.TAILCALL || op == opcode.SHA256 || op == opcode.SHA1:
		return costHashLight
	case op == opcode.HASH256 || op == opcode.HASH160:
		return costHash256
	case op == opcode.SYSCALL:
		if !haveSyscall {
			return costZero
		}
		base, ok := table[syscallName]
		if !ok {
			return costZero
		}
		if strings.HasSuffix(syscallName, "Storage.Put") {
			return base.MulFraction(uint64(storagePayloadBytes), 1024, One())
		}
		return base
	default:
		return costDefault
	}
}
