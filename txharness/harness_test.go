package txharness

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/probeum/neovm-debugger/invoker"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	height    uint64
	confirmed []uint64
}

func (c *fakeChain) CurrentBlock() *Block {
	return &Block{Height: c.height}
}

func (c *fakeChain) GenerateBlock() *Block {
	c.height++
	return &Block{Height: c.height}
}

func (c *fakeChain) ConfirmBlock(b *Block) {
	c.height = b.Height
	c.confirmed = append(c.confirmed, b.Height)
}

func TestBuildTransactionTwoOutputs(t *testing.T) {
	assetID := common.HexToHash("0x01")
	dest := common.HexToAddress("0xaa")
	source := common.HexToAddress("0xbb")
	amount := big.NewInt(5)

	tx := BuildTransaction(assetID, amount, dest, source)
	require.Len(t, tx.Outputs, 2)

	require.Equal(t, dest, tx.Outputs[0].ScriptHash)
	require.Equal(t, amount, tx.Outputs[0].Amount)

	wantChange := new(big.Int).Sub(new(big.Int).Mul(big.NewInt(10*1e8), amount), amount)
	require.Equal(t, source, tx.Outputs[1].ScriptHash)
	require.Equal(t, wantChange, tx.Outputs[1].Amount)
}

func TestHarnessSetTransactionUsesInvokerAddress(t *testing.T) {
	chain := &fakeChain{}
	src := common.HexToAddress("0xcc")
	h := New(chain, invoker.Static(src))

	dest := common.HexToAddress("0xdd")
	tx := h.SetTransaction(common.HexToHash("0x02"), big.NewInt(3), dest)

	require.Equal(t, src, tx.Outputs[1].ScriptHash)
	require.Equal(t, uint64(1), h.CurrentBlock().Height)
	require.Same(t, tx, h.Current())
}

func TestHarnessDefaultInvokerIsZeroAddress(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain, nil)

	tx := h.SetTransaction(common.HexToHash("0x03"), big.NewInt(1), common.HexToAddress("0xee"))
	require.Equal(t, common.Address{}, tx.Outputs[1].ScriptHash)
}

func TestHarnessSetTransactionConfirmsTheBlockItMinted(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain, nil)

	h.SetTransaction(common.HexToHash("0x05"), big.NewInt(1), common.HexToAddress("0x01"))

	require.Equal(t, []uint64{1}, chain.confirmed)
}

func TestHarnessClearDropsOwnReferenceNotTheVMs(t *testing.T) {
	chain := &fakeChain{}
	h := New(chain, nil)

	tx := h.SetTransaction(common.HexToHash("0x04"), big.NewInt(2), common.HexToAddress("0xff"))
	capturedByVM := tx

	h.Clear()

	require.Nil(t, h.Current())
	require.Nil(t, h.CurrentBlock())
	require.NotNil(t, capturedByVM)
	require.Len(t, capturedByVM.Outputs, 2)
}
