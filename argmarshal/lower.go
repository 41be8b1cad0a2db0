package argmarshal

import (
	"math/big"

	"github.com/probeum/neovm-debugger/common"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

// Lower converts a ParamTree into a stack-loading prelude script
// (spec.md §4.1). tree is expected to be a Composite whose children are
// the ABI entry-point arguments in declared order; each is converted
// and collected in child order, then emitted by popping that
// collection — producing reverse emission, so the VM sees argument 0
// on top of stack after all pushes have run (spec.md §4.1 "Emission
// order").
func Lower(tree *Node) ([]byte, error) {
	args := tree.Children
	converted := make([]Converted, len(args))
	for i, a := range args {
		converted[i] = ConvertArgument(a)
	}

	b := newBuilder()
	for i := len(converted) - 1; i >= 0; i-- {
		if err := emit(b, converted[i]); err != nil {
			return nil, err
		}
	}
	return b.bytes(), nil
}

// EmitConverted lowers a single already-converted value to bytecode,
// independent of the top-level argument-list reversal Lower applies.
// Exposed for testing the per-type emission rules (spec.md §4.1, §8
// round-trip laws) directly.
func EmitConverted(c Converted) ([]byte, error) {
	b := newBuilder()
	if err := emit(b, c); err != nil {
		return nil, err
	}
	return b.bytes(), nil
}

// emit writes c's stack-loading instructions to b, per the per-type
// rules in spec.md §4.1 ("Each item is emitted as: ...").
func emit(b *builder, c Converted) error {
	switch v := c.(type) {
	case Bytes:
		for i := len(v) - 1; i >= 0; i-- {
			b.pushInt(big.NewInt(int64(v[i])))
		}
		b.pushInt(big.NewInt(int64(len(v))))
		b.op(opcode.PACK)
	case List:
		for _, elem := range v {
			if err := emit(b, elem); err != nil {
				return err
			}
		}
		b.pushInt(big.NewInt(int64(len(v))))
		b.op(opcode.PACK)
	case Null:
		b.pushBytes(nil)
	case Str:
		b.pushBytes([]byte(v))
	case Bool:
		b.pushBool(bool(v))
	case BigInt:
		b.pushInt(v.Int)
	default:
		return common.ErrUnsupportedParamKind
	}
	return nil
}

// builder accumulates raw NeoVM bytecode. Grounded on the argument's
// the own-VM-agnostic nature: these are the same five push primitives
// (int, bytes, bool, count, PACK) the teacher's transaction_make.go
// composes its own TxData variants out of typed field setters.
type builder struct{ buf []byte }

func newBuilder() *builder { return &builder{} }

func (b *builder) bytes() []byte { return b.buf }

func (b *builder) op(op opcode.Opcode) { b.buf = append(b.buf, byte(op)) }

// pushInt emits the minimal encoding for v: PUSHM1..PUSH16 for the
// range [-1,16], otherwise a length-prefixed two's-complement
// little-endian byte string (legacy NeoVM's encoding for arbitrary
// integers, per other_examples' NEO-family interpreters).
func (b *builder) pushInt(v *big.Int) {
	if v.IsInt64() {
		n := v.Int64()
		if n == -1 {
			b.op(0x4F) // PUSHM1
			return
		}
		if n == 0 {
			b.op(opcode.PUSH0)
			return
		}
		if n >= 1 && n <= 16 {
			b.op(opcode.Opcode(byte(opcode.PUSH1) + byte(n-1)))
			return
		}
	}
	b.pushBytes(signedLittleEndian(v))
}

func (b *builder) pushBool(v bool) {
	if v {
		b.op(opcode.PUSH1)
		return
	}
	b.op(opcode.PUSH0)
}

// pushBytes emits data length-prefixed: a direct PUSHBYTES1..75 opcode
// for short payloads, or PUSHDATA1/PUSHDATA2 with an explicit length
// for longer ones.
func (b *builder) pushBytes(data []byte) {
	n := len(data)
	switch {
	case n == 0:
		b.buf = append(b.buf, 0x4C, 0x00) // PUSHDATA1, length 0
	case n <= 75:
		b.buf = append(b.buf, byte(n))
		b.buf = append(b.buf, data...)
	case n <= 0xFF:
		b.buf = append(b.buf, 0x4C, byte(n))
		b.buf = append(b.buf, data...)
	default:
		b.buf = append(b.buf, 0x4D, byte(n), byte(n>>8))
		b.buf = append(b.buf, data...)
	}
}

// signedLittleEndian renders v as the minimal two's-complement
// little-endian byte string a NeoVM PUSHBYTES operand expects.
func signedLittleEndian(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}
	abs := new(big.Int).Abs(v)
	be := abs.Bytes()
	le := make([]byte, len(be))
	for i, bb := range be {
		le[len(be)-1-i] = bb
	}
	// Ensure a clear sign bit; pad with a zero byte if the MSB is set
	// for a positive number (or, for negative, two's-complement it).
	if v.Sign() > 0 {
		if le[len(le)-1]&0x80 != 0 {
			le = append(le, 0x00)
		}
		return le
	}
	// Two's complement: invert bytes of (abs-1).
	adj := new(big.Int).Sub(abs, big.NewInt(1))
	be = adj.Bytes()
	le = make([]byte, len(be))
	for i, bb := range be {
		le[len(be)-1-i] = ^bb
	}
	if len(le) == 0 || le[len(le)-1]&0x80 == 0 {
		le = append(le, 0xFF)
	}
	return le
}
