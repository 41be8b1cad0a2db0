package argmarshal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/probeum/neovm-debugger/common"
)

// Converted is the output of ConvertArgument: a byte[], an ordered
// list, a big integer, a bool, null, or a raw string (spec.md §4.1
// "Conversion rules").
type Converted interface{ isConverted() }

type Bytes []byte
type List []Converted
type BigInt struct{ *big.Int }
type Bool bool
type Null struct{}
type Str string

func (Bytes) isConverted()  {}
func (List) isConverted()   {}
func (BigInt) isConverted() {}
func (Bool) isConverted()   {}
func (Null) isConverted()   {}
func (Str) isConverted()    {}

// ConvertArgument applies spec.md §4.1's conversion rules to a single
// ParamTree node. It is a pure function of n (invariant 5, spec.md §8):
// the same tree always converts to the same Converted value.
func ConvertArgument(n *Node) Converted {
	if n.Null {
		return Null{}
	}
	switch n.Kind {
	case common.ParamComposite:
		if allNumericByteRange(n.Children) {
			out := make(Bytes, len(n.Children))
			for i, c := range n.Children {
				v, _ := strconv.Atoi(c.Value)
				out[i] = byte(v)
			}
			return out
		}
		out := make(List, len(n.Children))
		for i, c := range n.Children {
			out[i] = ConvertArgument(c)
		}
		return out
	case common.ParamNumeric:
		v, ok := new(big.Int).SetString(strings.TrimSpace(n.Value), 10)
		if !ok {
			v = big.NewInt(0)
		}
		return BigInt{v}
	case common.ParamBoolean:
		return Bool(strings.EqualFold(n.Value, "true"))
	case common.ParamNull:
		return Null{}
	case common.ParamString:
		if strings.HasPrefix(n.Value, "0x") {
			b, err := decodeHexLoose(n.Value[2:])
			if err != nil {
				return Bytes{}
			}
			return Bytes(b)
		}
		return Str(n.Value)
	default:
		return Str(n.Value)
	}
}

// allNumericByteRange reports whether every child is a Numeric node
// parseable as an integer in [0,255] — the trigger for the
// "composite of byte-range numerics becomes byte[]" rule.
func allNumericByteRange(children []*Node) bool {
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if c.Kind != common.ParamNumeric {
			return false
		}
		v, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil || v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// decodeHexLoose hex-decodes s (the part of a "0x..." leaf after the
// prefix), left-padding a single "0" nibble when s has odd length
// before handing off to hexutil.Decode, which itself rejects
// odd-length input outright. spec.md §9 leaves odd-length "0x..."
// strings unspecified; this module's resolution (recorded in
// DESIGN.md) is to treat the string as if a leading zero nibble were
// present, the same convention encoding/hex itself implies for an
// even-length requirement — the padding has to happen before
// hexutil.Decode ever sees the string.
func decodeHexLoose(s string) ([]byte, error) {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hexutil.Decode("0x" + s)
}
