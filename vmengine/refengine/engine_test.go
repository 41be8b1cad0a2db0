package refengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/neovm-debugger/argmarshal"
	neocommon "github.com/probeum/neovm-debugger/common"
	"github.com/probeum/neovm-debugger/stackitem"
	"github.com/probeum/neovm-debugger/vmengine"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
)

func TestPushOneHalts(t *testing.T) {
	e := New()
	e.LoadScript([]byte{byte(opcode.PUSH1), byte(opcode.RET)})

	e.StepInto()
	top, ok := e.EvaluationStack().Peek(0)
	require.True(t, ok)
	require.Equal(t, stackitem.KindInteger, top.Kind())
	require.Equal(t, "1", top.String())

	e.StepInto()
	require.Equal(t, vmengine.StateHalt, e.State())
}

func TestBreakpointStopsBeforeNextInstruction(t *testing.T) {
	e := New()
	script := []byte{byte(opcode.PUSH1), byte(opcode.PUSH1), byte(opcode.RET)}
	e.LoadScript(script)
	e.AddBreakPoint(1)

	e.StepInto()
	require.Equal(t, vmengine.StateBreak, e.State())

	e.ClearState()
	require.Equal(t, vmengine.StateNone, e.State())
}

func TestThrowFaults(t *testing.T) {
	e := New()
	e.LoadScript([]byte{byte(opcode.THROW)})
	e.StepInto()
	require.Equal(t, vmengine.StateFault, e.State())
}

func TestSyscallRecordsName(t *testing.T) {
	e := New()
	name := "Neo.Storage.Put"
	script := append([]byte{byte(opcode.SYSCALL), byte(len(name))}, []byte(name)...)
	e.LoadScript(script)

	e.StepInto()
	got, ok := e.LastSyscall()
	require.True(t, ok)
	require.Equal(t, name, got)
}

func TestPackBuildsArray(t *testing.T) {
	e := New()
	script := []byte{
		byte(opcode.PUSH1),
		byte(opcode.PUSH1) + 1, // PUSH2
		0x52,                   // PUSH2 count
		byte(opcode.PACK),
	}
	e.LoadScript(script)
	for i := 0; i < 4; i++ {
		e.StepInto()
	}

	top, ok := e.EvaluationStack().Peek(0)
	require.True(t, ok)
	require.Equal(t, stackitem.KindArray, top.Kind())
	require.Len(t, top.(stackitem.Array), 2)
}

// TestPackPreservesPushOrder pins down PACK's ordering contract
// directly: pushing 3, 2, 1 (in that instruction order) then the count
// 3 then PACK must yield the array [1, 2, 3] — the last-pushed value
// becomes the first array element, not the last. A PACK that filled
// the array back-to-front (items[count-1-i] instead of items[i]) would
// instead produce [3, 2, 1] here.
func TestPackPreservesPushOrder(t *testing.T) {
	e := New()
	script := []byte{
		byte(opcode.PUSH1) + 2, // PUSH3
		byte(opcode.PUSH1) + 1, // PUSH2
		byte(opcode.PUSH1),     // PUSH1
		byte(opcode.PUSH1) + 2, // PUSH3 (count)
		byte(opcode.PACK),
	}
	e.LoadScript(script)
	for i := 0; i < 5; i++ {
		e.StepInto()
	}

	top, ok := e.EvaluationStack().Peek(0)
	require.True(t, ok)
	arr := top.(stackitem.Array)
	require.Len(t, arr, 3)
	require.Equal(t, "1", arr[0].String())
	require.Equal(t, "2", arr[1].String())
	require.Equal(t, "3", arr[2].String())
}

// TestScenarioSixByteArrayMarshallingPreservesOrder runs spec.md §8
// scenario 6 end to end: a composite argument with children
// [10, 20, 30], lowered by the real argument marshaller and executed
// by this engine, must land on the stack as the array [10, 20, 30] —
// not reversed — after its prelude runs.
func TestScenarioSixByteArrayMarshallingPreservesOrder(t *testing.T) {
	tree := argmarshal.Composite(argmarshal.Composite(
		argmarshal.Leaf(neocommon.ParamNumeric, "10"),
		argmarshal.Leaf(neocommon.ParamNumeric, "20"),
		argmarshal.Leaf(neocommon.ParamNumeric, "30"),
	))
	script, err := argmarshal.Lower(tree)
	require.NoError(t, err)

	e := New()
	e.LoadScript(script)
	for i := 0; i < 5; i++ {
		e.StepInto()
	}

	top, ok := e.EvaluationStack().Peek(0)
	require.True(t, ok)
	arr := top.(stackitem.Array)
	require.Len(t, arr, 3)
	require.Equal(t, []int{10, 20, 30}, []int{itemByteValue(arr[0]), itemByteValue(arr[1]), itemByteValue(arr[2])})
}

// itemByteValue extracts a small numeric value from an Integer or a
// single-byte ByteArray, since a PUSHBYTES1 operand decodes to a
// ByteArray item whose raw byte is the value this test cares about,
// not a printable Integer string.
func itemByteValue(item stackitem.Item) int {
	switch v := item.(type) {
	case stackitem.Integer:
		return int(v.Int64())
	case stackitem.ByteArray:
		if len(v) == 0 {
			return 0
		}
		return int(v[0])
	default:
		return -1
	}
}
