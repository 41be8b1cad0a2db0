package emulator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepInfoRoundTripsThroughRLP(t *testing.T) {
	info := StepInfo{
		BytecodeSlice: []byte{0x51, 0x66},
		Offset:        3,
		Opcode:        0x66,
		GasCost:       "0.00100000",
		SyscallName:   "Neo.Storage.Put",
	}

	data, err := info.EncodeToBytes()
	require.NoError(t, err)

	decoded, err := DecodeStepInfo(data)
	require.NoError(t, err)
	require.Equal(t, info, decoded)
}

func TestStepInfoOmitsSyscallNameWhenAbsent(t *testing.T) {
	info := StepInfo{BytecodeSlice: []byte{0x61}, Offset: 0, Opcode: 0x61, GasCost: "0.00000000"}

	data, err := info.EncodeToBytes()
	require.NoError(t, err)

	decoded, err := DecodeStepInfo(data)
	require.NoError(t, err)
	require.Equal(t, "", decoded.SyscallName)
	require.Equal(t, info, decoded)
}
