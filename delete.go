package rtree

// CompareFunc compares a stored payload against a target payload for
// equality during Delete. When nil, Delete falls back to Go's built-in
// equality operator via an any-typed comparison (raw identity for
// comparable payloads).
type CompareFunc[T any] func(stored, target T) bool

// Delete removes the entry whose rectangle is contained by [min, max] and
// whose payload compares equal to target. If compare is nil, equality
// falls back to the built-in == operator (T must be comparable in that
// case; passing a non-comparable T with a nil compare is a programmer
// error per spec.md §7). Returns an error only on allocator failure
// (ErrOOM); a query that matches nothing is a successful no-op, not an
// error.
func (tr *Tree[N, T]) Delete(min, max [2]N, target T, compare CompareFunc[T]) (bool, error) {
	ir := Rect[N]{Min: min, Max: max}
	if tr.root == nil {
		return true, nil
	}
	if compare == nil {
		compare = defaultCompare[T]
	}
	removed, _, ok := tr.nodeDelete(&tr.rect, &tr.root, &ir, target, compare)
	if !ok {
		return false, ErrOOM
	}
	if !removed {
		return true, nil
	}
	tr.count--
	if tr.count == 0 {
		tr.nodeFree(tr.root)
		tr.root = nil
		tr.rect = Rect[N]{}
		tr.height = 0
		return true, nil
	}
	for !tr.root.isLeaf() && int(tr.root.count) == 1 {
		old := tr.root
		child := old.children()[0]
		old.count = 0 // prevent discardNode from recursing into child
		tr.nodeFree(old)
		tr.root = child
		tr.height--
	}
	return true, nil
}

func defaultCompare[T any](stored, target T) bool {
	return any(stored) == any(target)
}

// nodeDelete is the recursive descent of spec.md §4.3.2. It reports
// removed (an entry was found and taken out of the subtree rooted at the
// node reachable through slot) and shrunk (the caller's recorded bounding
// rect *nr may need to tighten).
func (tr *Tree[N, T]) nodeDelete(nr *Rect[N], slot **node[N, T], ir *Rect[N], target T, compare CompareFunc[T]) (removed, shrunk, ok bool) {
	n, ok := tr.cowGuard(slot)
	if !ok {
		return false, false, false
	}
	if n.isLeaf() {
		items := n.items()
		for i := 0; i < int(n.count); i++ {
			if !ir.contains(&n.rects[i]) {
				continue
			}
			if !compare(items[i], target) {
				continue
			}
			if tr.freeHook != nil {
				tr.freeHook(items[i], tr.userData)
			}
			last := int(n.count) - 1
			copy(n.rects[i:last], n.rects[i+1:n.count])
			copy(items[i:last], items[i+1:n.count])
			items[last] = tr.empty
			n.count--
			shrunk = ir.onEdge(nr)
			if shrunk {
				*nr = n.rectCalc()
			}
			return true, shrunk, true
		}
		return false, false, true
	}

	children := n.children()
	for i := 0; i < int(n.count); i++ {
		if !n.rects[i].contains(ir) {
			continue
		}
		crect := n.rects[i]
		removed, shrunk, ok = tr.nodeDelete(&n.rects[i], &children[i], ir, target, compare)
		if !ok {
			return false, false, false
		}
		if !removed {
			continue
		}
		if int(children[i].count) == 0 {
			tr.nodeFree(children[i])
			last := int(n.count) - 1
			copy(n.rects[i:last], n.rects[i+1:n.count])
			copy(children[i:last], children[i+1:n.count])
			children[last] = nil
			n.count--
			*nr = n.rectCalc()
			return true, true, true
		}
		if shrunk {
			shrunk = !n.rects[i].equals(&crect)
			if shrunk {
				*nr = n.rectCalc()
			}
			n.orderToRight(i)
		}
		return true, shrunk, true
	}
	return false, false, true
}
