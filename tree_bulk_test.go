package rtree

import (
	"math/rand"
	"testing"

	"github.com/tidwall/lotsa"
)

// S2 — split.
func TestScenarioSplit(t *testing.T) {
	tr := New[int, int](nil)
	for i := 0; i <= 64; i++ {
		p := [2]int{i, i}
		if ok, err := tr.Insert(p, p, i); !ok || err != nil {
			t.Fatalf("insert %d failed: ok=%v err=%v", i, ok, err)
		}
	}
	if tr.Height() != 2 {
		t.Fatalf("Height() = %d, want 2 after the 65th insert", tr.Height())
	}
	if tr.root.isLeaf() {
		t.Fatal("root must be a branch after split")
	}
	if int(tr.root.count) != 2 {
		t.Fatalf("root.count = %d, want 2", tr.root.count)
	}
	children := tr.root.children()
	for i := 0; i < int(tr.root.count); i++ {
		if int(children[i].count) < MinEntries {
			t.Fatalf("child %d has %d entries, below MinEntries=%d", i, children[i].count, MinEntries)
		}
	}
	if err := tr.Check(); err != nil {
		t.Fatal(err)
	}
}

// S3 — delete and root collapse.
func TestScenarioDeleteRootCollapse(t *testing.T) {
	tr := New[int, int](nil)
	for i := 0; i <= 64; i++ {
		p := [2]int{i, i}
		tr.Insert(p, p, i)
	}
	want := tr.Count()
	for i := 0; i <= 64; i++ {
		p := [2]int{i, i}
		ok, err := tr.Delete(p, p, i, nil)
		if !ok || err != nil {
			t.Fatalf("delete %d failed: ok=%v err=%v", i, ok, err)
		}
		want--
		if tr.Count() != want {
			t.Fatalf("Count() = %d, want %d after deleting %d", tr.Count(), want, i)
		}
		if err := tr.Check(); err != nil {
			t.Fatalf("Check failed after deleting %d: %v", i, err)
		}
	}
	if tr.root != nil {
		t.Fatal("expected root to be nil after the final delete")
	}
	if tr.Height() != 0 {
		t.Fatalf("Height() = %d, want 0", tr.Height())
	}
}

// S5 — clone isolation, driven with lotsa for the bulk insert/delete load.
func TestScenarioCloneIsolation(t *testing.T) {
	const n = 1000
	tr := New[float64, int](nil)
	pts := make([][2]float64, n)
	rng := rand.New(rand.NewSource(1))
	for i := range pts {
		pts[i] = [2]float64{rng.Float64() * 1000, rng.Float64() * 1000}
	}
	lotsa.Ops(n, 1, func(i, _ int) {
		tr.Insert(pts[i], pts[i], i)
	})
	if tr.Count() != n {
		t.Fatalf("Count(T1) = %d, want %d", tr.Count(), n)
	}

	tr2 := Clone(tr)

	lotsa.Ops(n, 1, func(i, _ int) {
		if i%2 == 0 {
			tr.Delete(pts[i], pts[i], i, nil)
		}
	})

	if tr.Count() != n/2 {
		t.Fatalf("Count(T1) after delete = %d, want %d", tr.Count(), n/2)
	}
	if tr2.Count() != n {
		t.Fatalf("Count(T2) = %d, want %d (unaffected by T1's mutation)", tr2.Count(), n)
	}

	seen := make(map[int]bool, n)
	tr2.Scan(func(_, _ [2]float64, item int, _ any) bool {
		seen[item] = true
		return true
	}, nil)
	if len(seen) != n {
		t.Fatalf("T2 scan visited %d distinct items, want %d", len(seen), n)
	}
	for i := 0; i < n; i++ {
		if !seen[i] {
			t.Fatalf("T2 scan missing original item %d", i)
		}
	}
}
