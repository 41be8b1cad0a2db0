package emulator

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/probeum/neovm-debugger/abi"
	"github.com/probeum/neovm-debugger/vmengine"
	"github.com/probeum/neovm-debugger/vmengine/opcode"
	"github.com/probeum/neovm-debugger/vmengine/refengine"
)

func TestEngineHandleResolvesOwningEmulator(t *testing.T) {
	e := newTestEmulator()
	e.SetExecutingAccount(common.HexToAddress("0x09"), []byte{byte(opcode.RET)})
	_, err := e.Reset(emptyArgsTree(), abi.ABI{})
	require.NoError(t, err)

	handle, ok := e.engine.(*EngineHandle)
	require.True(t, ok)

	owner, ok := handle.Emulator()
	require.True(t, ok)
	require.Same(t, e, owner)

	account, ok := handle.Account()
	require.True(t, ok)
	require.Equal(t, common.HexToAddress("0x09"), account.ScriptHash)

	chain, ok := handle.Blockchain()
	require.True(t, ok)
	require.NotNil(t, chain)
}

func TestEngineHandleStillSatisfiesVmengineEngine(t *testing.T) {
	var _ vmengine.Engine = &EngineHandle{Engine: refengine.New(), token: "x"}
}

func TestForgetRemovesTokenFromRegistry(t *testing.T) {
	e := newTestEmulator()
	tok := e.Token()

	_, ok := lookupEmulator(tok)
	require.True(t, ok)

	forget(tok)

	_, ok = lookupEmulator(tok)
	require.False(t, ok)
}
