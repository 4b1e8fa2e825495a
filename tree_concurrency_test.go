package rtree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// S6 — concurrent readers. Build T, clone into T', hand T' to N goroutines.
// Each goroutine clones T' again, deletes half its entries, and scans.
// Every goroutine must observe exactly its own post-delete count, and T's
// scan must still yield the full original set throughout, regardless of
// how the goroutines interleave their mutations on their own clones.
func TestScenarioConcurrentReaders(t *testing.T) {
	const n = 400
	const goroutines = 20

	tr := New[int, int](nil)
	for i := 0; i < n; i++ {
		p := [2]int{i, i}
		ok, err := tr.Insert(p, p, i)
		require.NoError(t, err)
		require.True(t, ok)
	}

	shared := Clone(tr)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			local := Clone(shared)
			for i := 0; i < n; i++ {
				if i%2 == 0 {
					p := [2]int{i, i}
					local.Delete(p, p, i, nil)
				}
			}
			require.Equal(t, n/2, local.Count())
			seen := 0
			local.Scan(func(_, _ [2]int, _ int, _ any) bool {
				seen++
				return true
			}, nil)
			require.Equal(t, n/2, seen)
			require.NoError(t, local.Check())
		}()
	}
	wg.Wait()

	// tr's own scan must still yield the full, untouched original set: tr
	// was never mutated, only cloned.
	count := 0
	tr.Scan(func(_, _ [2]int, _ int, _ any) bool {
		count++
		return true
	}, nil)
	require.Equal(t, n, count)
	require.Equal(t, n, shared.Count())
}
