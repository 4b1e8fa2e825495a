package rtree

// cowGuard implements the cow-guard discipline of spec.md §4.4: if the
// node reachable through slot is shared (rc > 0), it is replaced with a
// private copy and the original's ref count is dropped by one; otherwise
// the existing node is returned untouched. Every mutating descent calls
// this on exactly the pointer slot it is about to write through, so only
// the spine actually modified is ever privatised.
func (tr *Tree[N, T]) cowGuard(slot **node[N, T]) (*node[N, T], bool) {
	n := *slot
	if n.refCount() == 0 {
		return n, true
	}
	cp, ok := tr.nodeCopy(n)
	if !ok {
		return nil, false
	}
	n.dropRef()
	*slot = cp
	return cp, true
}

// nodeCopy allocates a private copy of n: the header and tail array are
// bitwise duplicated, the copy's rc starts at 0, branch children are
// ref-counted up, and (with payload hooks installed) every leaf payload is
// cloned rather than shared bitwise.
func (tr *Tree[N, T]) nodeCopy(n *node[N, T]) (*node[N, T], bool) {
	cp, ok := tr.newNode(n.isLeaf())
	if !ok {
		return nil, false
	}
	cp.count = n.count
	copy(cp.rects[:n.count], n.rects[:n.count])
	if !cp.isLeaf() {
		copy(cp.children()[:n.count], n.children()[:n.count])
		for _, c := range cp.children()[:n.count] {
			c.addRef()
		}
		return cp, true
	}
	copy(cp.items()[:n.count], n.items()[:n.count])
	if tr.cloneHook == nil {
		return cp, true
	}
	src := n.items()
	dst := cp.items()
	cloned := 0
	for i := 0; i < int(n.count); i++ {
		v, ok := tr.cloneHook(src[i], tr.userData)
		if !ok {
			for j := 0; j < cloned; j++ {
				tr.freeHook(dst[j], tr.userData)
			}
			// The loop above already released the only slots that were
			// ever cp's own (the cloned prefix); the rest of dst is still
			// a bitwise copy of n's live payloads and must not be touched
			// again. Zero count so discardNode's free-hook walk is a
			// no-op and it only reclaims the node's own allocation slot.
			cp.count = 0
			tr.discardNode(cp)
			return nil, false
		}
		dst[i] = v
		cloned++
	}
	return cp, true
}

// nodeFree drops n's reference count by one. If another holder remains
// (the prior value was > 0) it returns without touching n further. If n
// was the sole holder, it recursively frees children (branch) or releases
// every payload through the free hook (leaf), then releases the node's own
// allocation slot.
func (tr *Tree[N, T]) nodeFree(n *node[N, T]) {
	if n == nil {
		return
	}
	if n.dropRef() {
		return // another holder remains
	}
	tr.discardNode(n)
}

// discardNode tears down a node tr knows has no other holders (either it
// was never shared, or nodeFree just confirmed the drop made it sole).
func (tr *Tree[N, T]) discardNode(n *node[N, T]) {
	if n.isLeaf() {
		if tr.freeHook != nil {
			items := n.items()
			for i := 0; i < int(n.count); i++ {
				tr.freeHook(items[i], tr.userData)
			}
		}
	} else {
		children := n.children()
		for i := 0; i < int(n.count); i++ {
			tr.nodeFree(children[i])
		}
	}
	tr.alloc.Free()
	tr.pool.put(n)
}
