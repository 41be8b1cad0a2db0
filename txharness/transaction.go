package txharness

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Output is one synthetic transaction output.
type Output struct {
	AssetID    common.Hash
	Amount     *big.Int
	ScriptHash common.Address
}

// Transaction is the synthetic transaction a debug session's script
// executes against, per spec.md §4.6: "a transaction with two
// outputs — (asset_id, amount, destination) and
// (asset_id, 10·amount·10^8 − amount, source)".
type Transaction struct {
	Outputs []Output
}

// placeholderMultiplier is 10^8, the second half of the `10 * 10^8`
// factor (BuildTransaction applies the 10) that spec.md §4.6 and §9
// call out verbatim as "a placeholder for a virtual balance not yet
// drawn from a ledger" — preserved exactly rather than replaced with a
// real balance lookup, per the Open Question decision recorded in
// DESIGN.md.
var placeholderMultiplier = new(big.Int).Exp(big.NewInt(10), big.NewInt(8), nil)

// BuildTransaction constructs the two-output synthetic transaction.
// The second output (the "change" returned to source) is not guarded
// against going negative when amount exceeds the placeholder total —
// spec.md §9 records that the source doesn't guard this either, and
// this module preserves that behavior rather than silently fixing it.
func BuildTransaction(assetID common.Hash, amount *big.Int, destination, source common.Address) *Transaction {
	total := new(big.Int).Mul(big.NewInt(10), amount)
	total.Mul(total, placeholderMultiplier)
	change := new(big.Int).Sub(total, amount)

	return &Transaction{
		Outputs: []Output{
			{AssetID: assetID, Amount: new(big.Int).Set(amount), ScriptHash: destination},
			{AssetID: assetID, Amount: change, ScriptHash: source},
		},
	}
}
