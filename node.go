package rtree

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// MaxEntries is the fixed per-node capacity (spec reference configuration).
const MaxEntries = 64

// fillPercent is the compile-time minimum-fill percentage used to derive
// MinEntries.
const fillPercent = 10

// MinEntries is the fewest entries a non-root node may carry:
// floor(MaxEntries * fillPercent / 100) + 1.
const MinEntries = MaxEntries*fillPercent/100 + 1

// Compile-time guard for the open question in spec.md §9: MinEntries must
// not exceed MaxEntries/2, or the split-rebalance donor loop could spin
// forever on a pathological split. This line fails to compile (negative
// array length) if a future edit to MaxEntries/fillPercent violates it.
var _ [MaxEntries/2 - MinEntries]struct{}

type kind int8

const (
	none kind = iota
	leafKind
	branchKind
)

// node is the common header shared by leafNode and branchNode. The kind
// tag is fixed at creation and never changes, so hot loops never need to
// runtime-check which tail array backs a given node; see leafNode/
// branchNode below for the tagged-union layout this header is overlaid
// onto via unsafe.Pointer.
type node[N Number, T any] struct {
	rc    int32 // atomic; >0 means shared, must cow before mutating
	kind  kind
	count int16
	rects [MaxEntries]Rect[N]
}

type leafNode[N Number, T any] struct {
	node[N, T]
	items [MaxEntries]T
}

type branchNode[N Number, T any] struct {
	node[N, T]
	children [MaxEntries]*node[N, T]
}

func (n *node[N, T]) isLeaf() bool {
	return n.kind == leafKind
}

// children returns the child-pointer tail array, or nil if n is a leaf.
func (n *node[N, T]) children() []*node[N, T] {
	if n.kind != branchKind {
		return nil
	}
	return (*branchNode[N, T])(unsafe.Pointer(n)).children[:]
}

// items returns the payload tail array, or nil if n is a branch.
func (n *node[N, T]) items() []T {
	if n.kind != leafKind {
		return nil
	}
	return (*leafNode[N, T])(unsafe.Pointer(n)).items[:]
}

func (n *node[N, T]) refCount() int32 {
	return atomic.LoadInt32(&n.rc)
}

func (n *node[N, T]) addRef() {
	atomic.AddInt32(&n.rc, 1)
}

// dropRef decrements the node's reference count and reports whether the
// value prior to the decrement was > 0, i.e. another holder remains and
// the caller must not tear the node down.
func (n *node[N, T]) dropRef() (otherHolderRemains bool) {
	prior := atomic.AddInt32(&n.rc, -1) + 1
	return prior > 0
}

// nodePool recycles leaf and branch node objects across a tree's lifetime
// instead of handing every newNode call to the garbage collector. Modeled
// on gaissmai-bart's pool.go (a typed sync.Pool wrapper around a trie's
// node type); split into two embedded pools here because leafNode and
// branchNode are distinct concrete types overlaid onto the shared node
// header, so a leafNode slot can never satisfy a branchNode checkout or
// vice versa. The zero value is ready to use, matching sync.Pool itself.
type nodePool[N Number, T any] struct {
	leaf   sync.Pool
	branch sync.Pool
}

func (p *nodePool[N, T]) getLeaf() *leafNode[N, T] {
	if v := p.leaf.Get(); v != nil {
		return v.(*leafNode[N, T])
	}
	return new(leafNode[N, T])
}

func (p *nodePool[N, T]) getBranch() *branchNode[N, T] {
	if v := p.branch.Get(); v != nil {
		return v.(*branchNode[N, T])
	}
	return new(branchNode[N, T])
}

// put returns n to the pool matching its kind, after zeroing it so a
// recycled node never leaks a stale child/payload pointer to the GC or a
// stale rc/count into the next checkout.
func (p *nodePool[N, T]) put(n *node[N, T]) {
	if n.isLeaf() {
		ln := (*leafNode[N, T])(unsafe.Pointer(n))
		*ln = leafNode[N, T]{}
		p.leaf.Put(ln)
		return
	}
	bn := (*branchNode[N, T])(unsafe.Pointer(n))
	*bn = branchNode[N, T]{}
	p.branch.Put(bn)
}

// newNode checks out an empty node of the requested kind, gated by the
// tree's allocator and recycled from tr.pool where possible. Returns
// ok=false on simulated OOM.
func (tr *Tree[N, T]) newNode(isLeaf bool) (*node[N, T], bool) {
	if !tr.alloc.Alloc() {
		return nil, false
	}
	if isLeaf {
		n := tr.pool.getLeaf()
		n.kind = leafKind
		return (*node[N, T])(unsafe.Pointer(n)), true
	}
	n := tr.pool.getBranch()
	n.kind = branchKind
	return (*node[N, T])(unsafe.Pointer(n)), true
}

// rectCalc returns the bounding union of rects[0..count). Requires
// count >= 1.
func (n *node[N, T]) rectCalc() Rect[N] {
	r := n.rects[0]
	for i := 1; i < int(n.count); i++ {
		r.expand(&n.rects[i])
	}
	return r
}

// rsearch returns the first index i with rects[i].Min[0] >= key, else
// count. Used to find a leaf insertion position that keeps (I5).
func (n *node[N, T]) rsearch(key N) int {
	for i := 0; i < int(n.count); i++ {
		if !(n.rects[i].Min[0] < key) {
			return i
		}
	}
	return int(n.count)
}

// swap exchanges entry i and j in lockstep across rects and whichever
// kind-appropriate tail array this node holds.
func (n *node[N, T]) swap(i, j int) {
	n.rects[i], n.rects[j] = n.rects[j], n.rects[i]
	if n.isLeaf() {
		items := n.items()
		items[i], items[j] = items[j], items[i]
	} else {
		children := n.children()
		children[i], children[j] = children[j], children[i]
	}
}

// moveEntryInto removes the entry at position idx of n by swapping it with
// the last entry (O(1)), and appends it to into.
func (n *node[N, T]) moveEntryInto(idx int, into *node[N, T], empty T) {
	into.rects[into.count] = n.rects[idx]
	last := int(n.count) - 1
	n.rects[idx] = n.rects[last]
	if n.isLeaf() {
		items, intoItems := n.items(), into.items()
		intoItems[into.count] = items[idx]
		items[idx] = items[last]
		items[last] = empty
	} else {
		children, intoChildren := n.children(), into.children()
		intoChildren[into.count] = children[idx]
		children[idx] = children[last]
		children[last] = nil
	}
	n.count--
	into.count++
}

// issorted reports whether (I5) already holds, allowing split to skip a
// redundant sort of the side that is typically already ordered.
func (n *node[N, T]) issorted() bool {
	for i := 1; i < int(n.count); i++ {
		if n.rects[i].Min[0] < n.rects[i-1].Min[0] {
			return false
		}
	}
	return true
}

// sort restores (I5): ascending by Min[0] over the whole node.
func (n *node[N, T]) sort() {
	n.quicksort(0, int(n.count), 0, false, false)
}

// sortByAxis sorts entries by the given axis, optionally reversed and
// optionally keyed by Max instead of Min. Used only during split
// rebalancing, never to restore (I5) (that is always axis 0, Min, forward).
func (n *node[N, T]) sortByAxis(axis int, reverse, byMax bool) {
	n.quicksort(0, int(n.count), axis, reverse, byMax)
}

// quicksort is an in-place Lomuto-style partition over [s, e). The pivot is
// the midpoint, swapped to the end before a single forward scan; the compare key is rects[k].Min[axis] normally, or
// rects[k].Max[axis] when byMax, compared with reversed operands when
// reverse.
func (n *node[N, T]) quicksort(s, e, axis int, reverse, byMax bool) {
	count := e - s
	if count < 2 {
		return
	}
	left, right := 0, count-1
	pivot := count / 2
	n.swap(s+pivot, s+right)
	key := func(k int) N {
		if byMax {
			return n.rects[k].Max[axis]
		}
		return n.rects[k].Min[axis]
	}
	less := func(i, j int) bool {
		if reverse {
			return key(j) < key(i)
		}
		return key(i) < key(j)
	}
	for i := 0; i < count; i++ {
		if less(s+i, s+right) {
			n.swap(s+i, s+left)
			left++
		}
	}
	n.swap(s+left, s+right)
	n.quicksort(s, s+left, axis, reverse, byMax)
	n.quicksort(s+left+1, e, axis, reverse, byMax)
}

// orderToRight bubbles the entry at idx rightward until (I5) holds
// locally; used after an in-place bounding-box mutation.
func (n *node[N, T]) orderToRight(idx int) int {
	for idx < int(n.count)-1 && n.rects[idx+1].Min[0] < n.rects[idx].Min[0] {
		n.swap(idx+1, idx)
		idx++
	}
	return idx
}

// orderToLeft is the symmetric leftward bubble.
func (n *node[N, T]) orderToLeft(idx int) int {
	for idx > 0 && n.rects[idx].Min[0] < n.rects[idx-1].Min[0] {
		n.swap(idx, idx-1)
		idx--
	}
	return idx
}

// chooseSubtree implements choose-subtree: the fast "first containing
// child" path, falling back to least-enlargement with no area tie-break.
func (n *node[N, T]) chooseSubtree(ir *Rect[N]) int {
	for i := 0; i < int(n.count); i++ {
		if n.rects[i].contains(ir) {
			return i
		}
	}
	best := -1
	var bestEnlargement N
	for i := 0; i < int(n.count); i++ {
		enlargement := n.rects[i].unionArea(ir) - n.rects[i].area()
		if best == -1 || enlargement < bestEnlargement {
			best, bestEnlargement = i, enlargement
		}
	}
	return best
}
