package refengine

import (
	"math/big"

	"github.com/probeum/neovm-debugger/stackitem"
)

func bigFromInt(n int) *big.Int { return big.NewInt(int64(n)) }

// asInt coerces an Integer or Boolean item to an int count, for PACK's
// operand. Any other kind yields 0.
func asInt(item stackitem.Item) int {
	switch v := item.(type) {
	case stackitem.Integer:
		return int(v.Int64())
	case stackitem.Boolean:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}
