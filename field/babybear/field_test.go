package babybear

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	engine := &Field{}

	a := engine.FromInterface(P + 3)
	require.Equal(t, constraint.Element{3}, a)

	b := engine.FromInterface(5)
	require.Equal(t, constraint.Element{8}, engine.Add(a, b))
	require.Equal(t, constraint.Element{15}, engine.Mul(a, b))
	require.Equal(t, constraint.Element{P - 2}, engine.Sub(a, b))
	require.Equal(t, constraint.Element{P - 3}, engine.Neg(a))
}

func TestInverse(t *testing.T) {
	engine := &Field{}

	_, ok := engine.Inverse(constraint.Element{0})
	require.False(t, ok)

	a := constraint.Element{12345}
	inv, ok := engine.Inverse(a)
	require.True(t, ok)
	require.True(t, engine.IsOne(engine.Mul(a, inv)))
}

func TestRandomInRange(t *testing.T) {
	engine := &Field{}
	for i := 0; i < 100; i++ {
		r := engine.Random()
		require.Less(t, r[0], uint64(P))
	}
}
