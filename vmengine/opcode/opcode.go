// Package opcode names the NeoVM legacy-AVM instruction bytes this
// module's gas table and argument marshaller need to recognize. Naming
// follows neo-go's own pkg/vm/opcode convention (see
// other_examples/2ed4b81b_nspcc-dev-neo-go__..._invocation_test.go.go,
// which imports "github.com/nspcc-dev/neo-go/pkg/vm/opcode"). Opcode
// *semantics* remain the external interpreter's concern (spec.md §1);
// this package only names the bytes the gas table and the argument
// marshaller need to either classify or emit.
package opcode

type Opcode byte

const (
	PUSH0  Opcode = 0x00
	PUSHF  Opcode = 0x00
	PUSH1  Opcode = 0x51
	PUSH16 Opcode = 0x60

	PUSHBYTES1  Opcode = 0x01
	PUSHBYTES75 Opcode = 0x4B

	NOP  Opcode = 0x61
	RET  Opcode = 0x66
	JMP  Opcode = 0x62

	APPCALL  Opcode = 0x67
	SYSCALL  Opcode = 0x68
	TAILCALL Opcode = 0x69

	DUP    Opcode = 0x76
	PACK   Opcode = 0xC1
	UNPACK Opcode = 0xC2

	SHA1    Opcode = 0xA1
	SHA256  Opcode = 0xA2
	HASH160 Opcode = 0xA3
	HASH256 Opcode = 0xA4

	CHECKSIG      Opcode = 0xAC
	CHECKMULTISIG Opcode = 0xAE

	THROW Opcode = 0xF0
)

// IsPush reports whether op is at or below PUSH16 (spec.md §4.2:
// "PUSH* (opcode <= PUSH16)"). That range is every byte from 0x00
// through 0x60: PUSH0, the data-length-prefixed PUSHBYTES1..75 and
// PUSHDATA opcodes, PUSHM1, and PUSH1..PUSH16, so the gas table charges
// all of them 0.
func IsPush(op Opcode) bool {
	return op <= PUSH16
}
