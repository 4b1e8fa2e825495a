package rtree

import "errors"

// ErrOOM is returned by Insert and Delete when the configured Allocator
// refuses an allocation. Clone does not consult the Allocator and never
// fails. The tree's externally visible state is
// left unchanged (or convergent to it) whenever ErrOOM is returned.
var ErrOOM = errors.New("rtree: allocation failed")

// Tree is an R-tree over rectangles with coordinate type N and payload
// type T. The zero value is not usable; construct one with New.
type Tree[N Number, T any] struct {
	count     int
	rect      Rect[N]
	root      *node[N, T]
	height    int
	alloc     Allocator
	pool      *nodePool[N, T]
	cloneHook CloneFunc[T]
	freeHook  FreeFunc[T]
	userData  any
	empty     T
}

// New creates an empty tree. If alloc is nil, DefaultAllocator() is used.
func New[N Number, T any](alloc Allocator) *Tree[N, T] {
	if alloc == nil {
		alloc = DefaultAllocator()
	}
	return &Tree[N, T]{alloc: alloc, pool: new(nodePool[N, T])}
}

// New2D is a convenience constructor for the common float64, two-dimension
// configuration, matching the call shape of github.com/tidwall/geoindex's
// internal engine (Insert(min, max [2]float64, value interface{})).
func New2D[T any]() *Tree[float64, T] {
	return New[float64, T](nil)
}

// SetPayloadHooks installs the clone/free hooks used to materialise and
// release stored payloads. Must be called before any Insert; calling it
// after entries exist produces inconsistent accounting between entries
// inserted under different hook regimes and is a programmer error per
// spec.md §7.
func (tr *Tree[N, T]) SetPayloadHooks(clone CloneFunc[T], free FreeFunc[T]) {
	tr.cloneHook = clone
	tr.freeHook = free
}

// SetUserData sets the opaque value passed to every payload hook
// invocation.
func (tr *Tree[N, T]) SetUserData(userData any) {
	tr.userData = userData
}

// Count returns the total number of leaf entries.
func (tr *Tree[N, T]) Count() int {
	return tr.count
}

// Height returns the number of levels from root to leaf, inclusive. Zero
// for an empty tree, one when the root is itself a leaf.
func (tr *Tree[N, T]) Height() int {
	return tr.height
}

// Bounds returns the union of every entry reachable from the root. The
// result is meaningless (and zero-valued) when the tree is empty.
func (tr *Tree[N, T]) Bounds() (min, max [2]N) {
	return tr.rect.Min, tr.rect.Max
}

// Clone returns an independent O(1) snapshot of tr: the new handle shares
// tr's node graph and bumps its root's reference count, so neither mutating
// tr nor the clone touches the other's visible contents. Cloning a nil
// tree returns nil. Works whether or not payload hooks are installed.
func Clone[N Number, T any](tr *Tree[N, T]) *Tree[N, T] {
	if tr == nil {
		return nil
	}
	tr2 := new(Tree[N, T])
	*tr2 = *tr
	if tr2.root != nil {
		tr2.root.addRef()
	}
	return tr2
}

// Free releases tr's hold on its node graph, recursively freeing any
// subtree whose reference count reaches zero. A Tree must not be used
// after Free.
func Free[N Number, T any](tr *Tree[N, T]) {
	if tr == nil || tr.root == nil {
		return
	}
	tr.nodeFree(tr.root)
	tr.root = nil
	tr.count = 0
	tr.height = 0
}
