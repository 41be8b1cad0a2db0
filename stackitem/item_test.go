package stackitem

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerKindAndString(t *testing.T) {
	i := NewInteger(big.NewInt(42))
	require.Equal(t, KindInteger, i.Kind())
	require.Equal(t, "42", i.String())
}

func TestBooleanString(t *testing.T) {
	require.Equal(t, "true", Boolean(true).String())
	require.Equal(t, "false", Boolean(false).String())
}

func TestByteArrayString(t *testing.T) {
	require.Equal(t, "ab", ByteArray("ab").String())
	require.Equal(t, KindByteArray, ByteArray("ab").Kind())
}

func TestArrayStringJoinsElements(t *testing.T) {
	arr := Array{NewInteger(big.NewInt(1)), Boolean(true)}
	require.Equal(t, "[1, true]", arr.String())
	require.Equal(t, KindArray, arr.Kind())
}

func TestUnknownIsGenuineVariant(t *testing.T) {
	var u Unknown
	require.Equal(t, KindUnknown, u.Kind())
	require.Equal(t, "<unknown>", u.String())
}

func TestKindStringRendersEveryVariant(t *testing.T) {
	require.Equal(t, "String", KindString.String())
	require.Equal(t, "Boolean", KindBoolean.String())
	require.Equal(t, "Integer", KindInteger.String())
	require.Equal(t, "Array", KindArray.String())
	require.Equal(t, "ByteArray", KindByteArray.String())
	require.Equal(t, "Unknown", KindUnknown.String())
}
