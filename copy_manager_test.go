package halo2base

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyManagerConcurrentAppends(t *testing.T) {
	const (
		nWorkers = 8
		nAppends = 1000
	)
	cm := NewCopyConstraintManager()

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < nAppends; i++ {
				a := NewContextCell("test.gate", w, i)
				b := NewContextCell("test.gate", w, i+1)
				cm.AddAdviceEquality(a, b)
				cm.AddConstantEquality(el(uint64(i)), a)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, nWorkers*nAppends, cm.NumAdviceEqualities())
	require.Equal(t, nWorkers*nAppends, cm.NumConstantEqualities())

	// No entry lost or duplicated per worker.
	perWorker := make(map[int]int)
	for _, pair := range cm.AdviceEqualities() {
		perWorker[pair[0].ContextID]++
	}
	for w := 0; w < nWorkers; w++ {
		require.Equal(t, nAppends, perWorker[w])
	}
}

func TestCopyManagerSnapshotsAreCopies(t *testing.T) {
	cm := NewCopyConstraintManager()
	a := NewContextCell("test.gate", 0, 0)
	b := NewContextCell("test.gate", 0, 1)
	cm.AddAdviceEquality(a, b)

	snapshot := cm.AdviceEqualities()
	snapshot[0] = [2]ContextCell{b, b}

	require.Equal(t, [][2]ContextCell{{a, b}}, cm.AdviceEqualities())
}
