package rtree

// Insert adds (min, max, payload) to the tree. If max is omitted by
// passing min as max (a point), min == max. Returns an error (ErrOOM)
// only on allocator failure; in that case the tree is left unchanged,
// since any payload already cloned via the clone hook is released again
// via the free hook before returning.
func (tr *Tree[N, T]) Insert(min, max [2]N, payload T) (bool, error) {
	ir := Rect[N]{Min: min, Max: max}
	stored := payload
	if tr.cloneHook != nil {
		v, ok := tr.cloneHook(payload, tr.userData)
		if !ok {
			return false, ErrOOM
		}
		stored = v
	}
	if !tr.insert(ir, stored) {
		if tr.freeHook != nil {
			tr.freeHook(stored, tr.userData)
		}
		return false, ErrOOM
	}
	return true, nil
}

// insert runs the descent/split/root-bump machinery against an already
// materialised stored payload (spec.md §4.3.1, steps 2 onward).
func (tr *Tree[N, T]) insert(ir Rect[N], stored T) bool {
	if tr.root == nil {
		n, ok := tr.newNode(true)
		if !ok {
			return false
		}
		tr.root = n
		tr.rect = ir
		tr.height = 1
	}
	for {
		split, grown, ok := tr.nodeInsert(&tr.rect, &tr.root, &ir, stored)
		if !ok {
			return false
		}
		if split {
			left := tr.root
			// Allocate the new root before splitNode mutates left, so a
			// failed allocation here leaves tr.root untouched (spec.md
			// §4.3.1: allocate the new branch root, then split the old
			// root into it).
			newRoot, ok := tr.newNode(false)
			if !ok {
				return false
			}
			right, ok := tr.splitNode(tr.rect, left)
			if !ok {
				tr.discardNode(newRoot)
				return false
			}
			newRoot.rects[0] = left.rectCalc()
			newRoot.rects[1] = right.rectCalc()
			children := newRoot.children()
			children[0] = left
			children[1] = right
			newRoot.count = 2
			if newRoot.rects[0].Min[0] > newRoot.rects[1].Min[0] {
				newRoot.swap(0, 1)
			}
			tr.root = newRoot
			tr.height++
			continue
		}
		if grown {
			tr.rect.expand(&ir)
		}
		break
	}
	tr.count++
	return true
}

// nodeInsert is the recursive descent of spec.md §4.3.1. It reports
// split (the node N could not absorb the entry and must be split by its
// caller) and grown (N's parent-recorded bounding rect must widen to
// cover ir). The retry-after-split step is written as a loop rather than
// a second recursive call, per the design note on bounding recursion
// depth under pathological repeated splits.
func (tr *Tree[N, T]) nodeInsert(nr *Rect[N], slot **node[N, T], ir *Rect[N], stored T) (split, grown, ok bool) {
	n, ok := tr.cowGuard(slot)
	if !ok {
		return false, false, false
	}
	for {
		if n.isLeaf() {
			if int(n.count) == MaxEntries {
				return true, false, true
			}
			pos := n.rsearch(ir.Min[0])
			items := n.items()
			copy(n.rects[pos+1:int(n.count)+1], n.rects[pos:n.count])
			copy(items[pos+1:int(n.count)+1], items[pos:n.count])
			n.rects[pos] = *ir
			items[pos] = stored
			n.count++
			return false, !nr.contains(ir), true
		}

		idx := n.chooseSubtree(ir)
		children := n.children()
		childSplit, childGrown, ok := tr.nodeInsert(&n.rects[idx], &children[idx], ir, stored)
		if !ok {
			return false, false, false
		}
		if childSplit {
			if int(n.count) == MaxEntries {
				return true, false, true
			}
			left := children[idx]
			right, ok := tr.splitNode(n.rects[idx], left)
			if !ok {
				return false, false, false
			}
			n.rects[idx] = left.rectCalc()
			copy(n.rects[idx+2:int(n.count)+1], n.rects[idx+1:n.count])
			copy(children[idx+2:int(n.count)+1], children[idx+1:n.count])
			n.rects[idx+1] = right.rectCalc()
			children[idx+1] = right
			n.count++
			if n.rects[idx].Min[0] > n.rects[idx+1].Min[0] {
				n.swap(idx+1, idx)
			}
			n.orderToRight(idx + 1)
			continue // retry node_insert on N with the same (ir, stored)
		}
		if childGrown {
			n.rects[idx].expand(ir)
			n.orderToLeft(idx)
			return false, !nr.contains(ir), true
		}
		return false, false, true
	}
}
