package emulator

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	neocommon "github.com/probeum/neovm-debugger/common"
)

func TestWitnessModeDefaultsAndRoundTrips(t *testing.T) {
	e := newTestEmulator()
	require.Equal(t, neocommon.WitnessDefault, e.WitnessMode())

	e.SetWitnessMode(neocommon.WitnessAlwaysTrue)
	require.Equal(t, neocommon.WitnessAlwaysTrue, e.WitnessMode())
}

func TestTriggerDefaultsAndRoundTrips(t *testing.T) {
	e := newTestEmulator()
	require.Equal(t, neocommon.TriggerApplication, e.Trigger())

	e.SetTrigger(neocommon.TriggerVerification)
	require.Equal(t, neocommon.TriggerVerification, e.Trigger())
}

func TestRegisterAndClearAssignments(t *testing.T) {
	e := newTestEmulator()
	e.RegisterAssignment(3, "x", 0)

	a, ok := e.tracker.AssignmentAt(3)
	require.True(t, ok)
	require.Equal(t, "x", a.Name)

	e.ClearAssignments()
	_, ok = e.tracker.AssignmentAt(3)
	require.False(t, ok)
}

func TestSetTransactionUsesPlaceholderUntilReset(t *testing.T) {
	e := newTestEmulator()
	tx := e.SetTransaction(common.HexToHash("0x01"), big.NewInt(5))
	require.Equal(t, e.placeholderScriptHash, tx.Outputs[0].ScriptHash)
}

func TestTokenIsStableAcrossCalls(t *testing.T) {
	e := newTestEmulator()
	require.Equal(t, e.Token(), e.Token())
}
