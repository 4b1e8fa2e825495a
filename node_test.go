package rtree

import "testing"

func newTestLeaf(t *testing.T, pts ...[2]float64) (*Tree[float64, int], *node[float64, int]) {
	t.Helper()
	tr := New[float64, int](nil)
	n, ok := tr.newNode(true)
	if !ok {
		t.Fatal("newNode failed")
	}
	items := n.items()
	for i, p := range pts {
		n.rects[i] = Rect[float64]{Min: p, Max: p}
		items[i] = i
		n.count++
	}
	return tr, n
}

func TestNodeSortRestoresOrder(t *testing.T) {
	_, n := newTestLeaf(t, [2]float64{5, 0}, [2]float64{1, 0}, [2]float64{3, 0})
	n.sort()
	if !n.issorted() {
		t.Fatal("node not sorted after sort()")
	}
	want := []float64{1, 3, 5}
	for i, w := range want {
		if n.rects[i].Min[0] != w {
			t.Fatalf("rects[%d].Min[0] = %v, want %v", i, n.rects[i].Min[0], w)
		}
	}
}

func TestNodeRsearch(t *testing.T) {
	_, n := newTestLeaf(t, [2]float64{1, 0}, [2]float64{3, 0}, [2]float64{5, 0})
	n.sort()
	if got := n.rsearch(0); got != 0 {
		t.Fatalf("rsearch(0) = %d, want 0", got)
	}
	if got := n.rsearch(3); got != 1 {
		t.Fatalf("rsearch(3) = %d, want 1", got)
	}
	if got := n.rsearch(10); got != 3 {
		t.Fatalf("rsearch(10) = %d, want 3 (count)", got)
	}
}

func TestNodeMoveEntryInto(t *testing.T) {
	tr, left := newTestLeaf(t, [2]float64{1, 0}, [2]float64{2, 0}, [2]float64{3, 0})
	right, ok := tr.newNode(true)
	if !ok {
		t.Fatal("newNode failed")
	}
	left.moveEntryInto(0, right, tr.empty)
	if left.count != 2 || right.count != 1 {
		t.Fatalf("counts after move = %d,%d want 2,1", left.count, right.count)
	}
	// index 0 was swapped with the last entry (O(1) removal).
	if left.rects[0].Min[0] != 3 {
		t.Fatalf("left.rects[0] = %v, want the former last entry", left.rects[0])
	}
	if right.rects[0].Min[0] != 1 {
		t.Fatalf("right.rects[0] = %v, want the moved entry", right.rects[0])
	}
}

func TestNodeChooseSubtreeFastPath(t *testing.T) {
	tr := New[float64, int](nil)
	n, _ := tr.newNode(false)
	n.rects[0] = r(0, 0, 10, 10)
	n.rects[1] = r(20, 20, 30, 30)
	n.count = 2
	ir := r(6, 6, 7, 7)
	if got := n.chooseSubtree(&ir); got != 0 {
		t.Fatalf("chooseSubtree fast path = %d, want 0", got)
	}
}

func TestNodeChooseSubtreeLeastEnlargement(t *testing.T) {
	tr := New[float64, int](nil)
	n, _ := tr.newNode(false)
	n.rects[0] = r(0, 0, 10, 10)
	n.rects[1] = r(100, 100, 110, 110)
	n.count = 2
	// Contained by neither; rects[0] requires far less enlargement.
	ir := r(11, 11, 12, 12)
	if got := n.chooseSubtree(&ir); got != 0 {
		t.Fatalf("chooseSubtree least-enlargement = %d, want 0", got)
	}
}

func TestMinEntriesWithinBound(t *testing.T) {
	if MinEntries > MaxEntries/2 {
		t.Fatalf("MinEntries=%d exceeds MaxEntries/2=%d; split rebalance could loop forever",
			MinEntries, MaxEntries/2)
	}
	if MinEntries != 7 {
		t.Fatalf("MinEntries = %d, want 7 for the reference MaxEntries=64, fillPercent=10", MinEntries)
	}
}
