package emulator

import (
	"bytes"

	"github.com/ethereum/go-ethereum/rlp"
)

// StepInfo is the event record emitted through OnStep after each
// successfully executed instruction (spec.md §3, §5: "on_step is
// invoked exactly once per successfully executed instruction, in
// program order"). RLP-encodable so a debugger UI connected over a
// wire transport (this module's own supplemented feature, not named by
// the upstream spec) can receive a StepInfo the same way the teacher's
// block/transaction types serialize for the wire.
type StepInfo struct {
	BytecodeSlice []byte
	Offset        uint32
	Opcode        byte
	GasCost       string
	SyscallName   string `rlp:"optional"`
}

// EncodeToBytes RLP-encodes the step record.
func (s StepInfo) EncodeToBytes() ([]byte, error) {
	return rlp.EncodeToBytes(s)
}

// DecodeStepInfo RLP-decodes a step record previously produced by
// EncodeToBytes.
func DecodeStepInfo(data []byte) (StepInfo, error) {
	var s StepInfo
	err := rlp.Decode(bytes.NewReader(data), &s)
	return s, err
}
