package bn254

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	engine := &Field{}

	x := big.NewInt(1234567891011)
	e := engine.FromInterface(x)
	require.Equal(t, x, engine.ToBigInt(e))

	v, ok := engine.Uint64(e)
	require.True(t, ok)
	require.Equal(t, uint64(1234567891011), v)
}

func TestArithmetic(t *testing.T) {
	engine := &Field{}

	a := engine.FromInterface(6)
	b := engine.FromInterface(2)
	require.Equal(t, engine.FromInterface(8), engine.Add(a, b))
	require.Equal(t, engine.FromInterface(12), engine.Mul(a, b))
	require.Equal(t, engine.FromInterface(4), engine.Sub(a, b))

	inv, ok := engine.Inverse(b)
	require.True(t, ok)
	require.Equal(t, engine.FromInterface(3), engine.Mul(a, inv))

	_, ok = engine.Inverse(engine.FromInterface(0))
	require.False(t, ok)

	require.True(t, engine.IsOne(engine.One()))
}

func TestRandomIsReduced(t *testing.T) {
	engine := &Field{}
	for i := 0; i < 10; i++ {
		r := engine.Random()
		require.Negative(t, engine.ToBigInt(r).Cmp(ScalarField))
	}
}
