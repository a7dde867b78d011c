package halo2base

import (
	"sync"
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"
)

func TestCoreManagerThreads(t *testing.T) {
	m := NewCoreManager(false, 1)

	a := m.NewThread("test.gate")
	b := m.NewThread("test.gate")
	c := m.NewThread("test.lookup")

	require.Equal(t, 0, a.ID())
	require.Equal(t, 1, b.ID())
	require.Equal(t, 2, c.ID())
	require.Equal(t, ContextTag{TypeID: "test.lookup", ContextID: 2}, c.Tag())
	require.Equal(t, 1, a.Phase())
	require.Same(t, m.CopyManager(), a.CopyManager())
	require.Same(t, m.CopyManager(), c.CopyManager())
	require.Len(t, m.Contexts(), 3)
}

// Witness-only contexts run one per goroutine with no synchronization beyond
// the copy manager, which they never touch.
func TestParallelWitnessGeneration(t *testing.T) {
	const nThreads = 8
	m := NewCoreManager(true, 0)

	ctxs := make([]*Context, nThreads)
	for i := range ctxs {
		ctxs[i] = m.NewThread("test.gate")
	}

	var wg sync.WaitGroup
	for i, ctx := range ctxs {
		wg.Add(1)
		go func(i int, ctx *Context) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ctx.LoadWitness(el(uint64(i*1000 + j)))
			}
		}(i, ctx)
	}
	wg.Wait()

	for i, ctx := range ctxs {
		require.Len(t, ctx.Advice, 100)
		for j := 0; j < 100; j++ {
			require.Equal(t, el(uint64(i*1000+j)), ctx.Get(j).Element())
		}
	}
	require.Zero(t, m.CopyManager().NumAdviceEqualities())
	require.Zero(t, m.CopyManager().NumConstantEqualities())
}

func TestCoreManagerStats(t *testing.T) {
	m := NewCoreManager(false, 0)
	ctx := m.NewThread("test.gate")
	ctx.LoadConstant(el(5))
	ctx.AssignRegion([]QuantumCell{Witness(el(1)), Witness(el(2))}, []int{0, 1})
	other := m.NewThread("test.gate")
	other.AssignWitnesses([]constraint.Element{el(3)})

	s := m.Stats()
	require.Equal(t, Stats{
		Phase:              0,
		Contexts:           2,
		AdviceCells:        4,
		EnabledGates:       2,
		AdviceEqualities:   0,
		ConstantEqualities: 1,
	}, s)

	m.LogStats()
}

// Two independent builds of the same script expose identical observable
// state: column, selectors and equality sets fully determine the layout.
func TestDeterministicRebuild(t *testing.T) {
	build := func() (*Context, *CopyConstraintManager) {
		m := NewCoreManager(false, 0)
		ctx := m.NewThread("test.gate")
		ctx.LoadConstant(el(5))
		w := ctx.LoadWitness(el(7))
		ctx.AssignRegionSmart(
			[]QuantumCell{Existing(w), Witness(el(3)), Witness(el(3))},
			[]int{0},
			[][2]int{{1, 2}},
			nil,
		)
		ctx.LoadZero()
		return ctx, m.CopyManager()
	}

	ctx1, cm1 := build()
	ctx2, cm2 := build()

	require.Equal(t, ctx1.Advice, ctx2.Advice)
	require.Equal(t, ctx1.Selector, ctx2.Selector)
	require.Equal(t, cm1.AdviceEqualities(), cm2.AdviceEqualities())
	require.Equal(t, cm1.ConstantEqualities(), cm2.ConstantEqualities())
}

func TestSharedCopyManagerAcrossPhases(t *testing.T) {
	cm := NewCopyConstraintManager()
	phase0 := NewCoreManagerWithCopyManager(false, 0, cm)
	phase1 := NewCoreManagerWithCopyManager(false, 1, cm)

	a := phase0.NewThread("test.gate").LoadConstant(el(1))
	b := phase1.NewThread("test.gate").LoadConstant(el(1))
	phase1.Contexts()[0].ConstrainEqual(b, a)

	require.Equal(t, 2, cm.NumConstantEqualities())
	require.Equal(t, 1, cm.NumAdviceEqualities())
}
