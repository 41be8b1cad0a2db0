package argmarshal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/neovm-debugger/common"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

func TestConvertArgumentByteRangeComposite(t *testing.T) {
	tree := Composite(
		Leaf(common.ParamNumeric, "10"),
		Leaf(common.ParamNumeric, "20"),
		Leaf(common.ParamNumeric, "30"),
	)
	converted := ConvertArgument(tree)
	bytes, ok := converted.(Bytes)
	require.True(t, ok)
	require.Equal(t, Bytes{10, 20, 30}, bytes)
}

func TestConvertArgumentNonByteRangeCompositeBecomesList(t *testing.T) {
	tree := Composite(Leaf(common.ParamNumeric, "300"), Leaf(common.ParamBoolean, "true"))
	converted := ConvertArgument(tree)
	list, ok := converted.(List)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestConvertArgumentUnparseableNumericIsZero(t *testing.T) {
	converted := ConvertArgument(Leaf(common.ParamNumeric, "not-a-number"))
	bi, ok := converted.(BigInt)
	require.True(t, ok)
	require.Equal(t, big.NewInt(0), bi.Int)
}

func TestConvertArgumentHexString(t *testing.T) {
	converted := ConvertArgument(Leaf(common.ParamString, "0x0102"))
	require.Equal(t, Bytes{0x01, 0x02}, converted)
}

func TestConvertArgumentOddLengthHexIsLeftPadded(t *testing.T) {
	converted := ConvertArgument(Leaf(common.ParamString, "0xabc"))
	require.Equal(t, Bytes{0x0a, 0xbc}, converted)
}

func TestConvertArgumentNullLeaf(t *testing.T) {
	require.Equal(t, Null{}, ConvertArgument(NullLeaf()))
}

func TestLowerIsPureFunctionOfInput(t *testing.T) {
	tree := Composite(Leaf(common.ParamNumeric, "5"), Leaf(common.ParamBoolean, "true"))
	a, errA := Lower(tree)
	b, errB := Lower(tree)
	require.NoError(t, errA)
	require.NoError(t, errB)
	require.True(t, common.ByteSliceEqual(a, b))
}

func TestLowerEmitsByteArrayInReverseIndexOrder(t *testing.T) {
	// children [10, 20, 30] is itself byte-range, so it becomes one
	// Bytes value; Lower over a single-argument tree whose sole
	// argument is that composite should push 30, 20, 10, 3, PACK
	// (spec.md §8 scenario 6).
	tree := Composite(Composite(
		Leaf(common.ParamNumeric, "10"),
		Leaf(common.ParamNumeric, "20"),
		Leaf(common.ParamNumeric, "30"),
	))
	script, err := Lower(tree)
	require.NoError(t, err)

	// 30 and 20 are > 16 so they're pushed as minimal byte strings
	// (length-prefixed PUSHBYTES1), not PUSH1..16 opcodes; 10 falls in
	// PUSH1..16 range (PUSH1+(10-1)).
	expect := []byte{
		0x01, 30, // PUSHBYTES1, 30
		0x01, 20, // PUSHBYTES1, 20
		byte(opcode.PUSH1) + 9, // PUSH10
		byte(opcode.PUSH1) + 2, // PUSH3 (count)
		byte(opcode.PACK),
	}
	require.Equal(t, expect, script)
}

func TestEmitConvertedBoolAndNull(t *testing.T) {
	trueBytes, err := EmitConverted(Bool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{byte(opcode.PUSH1)}, trueBytes)

	falseBytes, err := EmitConverted(Bool(false))
	require.NoError(t, err)
	require.Equal(t, []byte{byte(opcode.PUSH0)}, falseBytes)

	nullBytes, err := EmitConverted(Null{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x4C, 0x00}, nullBytes)
}
