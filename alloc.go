package rtree

import "sync/atomic"

// Allocator is the external allocate/free collaborator the core consults
// before materialising a node. It never sees raw byte counts or addresses
// (Go does not expose those at this level); instead it gates each node
// creation with a success/failure decision, which is all the core needs to
// implement the spec's "allocate(bytes) -> address | null" OOM contract.
// Implementations must be safe for concurrent use: the same Allocator may
// back several Tree handles produced by repeated Clone.
type Allocator interface {
	// Alloc is consulted once per node creation. Returning false simulates
	// an allocation failure; the caller must treat the operation as OOM
	// and leave the tree's visible state unchanged.
	Alloc() bool
	// Free is called once per node teardown, mirroring each successful
	// Alloc with exactly one Free over the node's lifetime.
	Free()
	// Stats reports live bookkeeping counters, primarily for tests and
	// diagnostics.
	Stats() AllocStats
}

// AllocStats are the debug counters an Allocator exposes. The pattern is
// the one a routing-table pool keeps over its node freelist: a running
// total of every allocation ever granted, and how many are still live.
type AllocStats struct {
	TotalAllocated int64
	CurrentLive    int64
}

// DefaultAllocator is the system allocator: Alloc always succeeds, backed
// only by atomic bookkeeping counters. It decides *whether* a node creation
// is permitted; it does not itself supply the node's memory. Node object
// reuse across a tree's lifetime is a separate concern, handled by the
// Tree's own nodePool (see node.go) — DefaultAllocator's counters and the
// pool's recycling are independent layers that both run on every
// newNode/discardNode. It returns a pointer to a zero-valued
// defaultAllocator and is safe for concurrent use by multiple Tree handles.
func DefaultAllocator() Allocator {
	return &defaultAllocator{}
}

type defaultAllocator struct {
	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func (a *defaultAllocator) Alloc() bool {
	a.totalAllocated.Add(1)
	a.currentLive.Add(1)
	return true
}

func (a *defaultAllocator) Free() {
	a.currentLive.Add(-1)
}

func (a *defaultAllocator) Stats() AllocStats {
	return AllocStats{
		TotalAllocated: a.totalAllocated.Load(),
		CurrentLive:    a.currentLive.Load(),
	}
}
