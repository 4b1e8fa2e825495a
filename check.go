package rtree

import "fmt"

// Check verifies the structural invariants from spec.md §8: (I5) sibling
// order, (I3) every branch entry's rect equals the exact union of its
// child's entries, and (I4)/height consistency along the leftmost descent.
// It is grounded on the upstream checker (rtree_check in priv_funcs.h),
// which runs the same three sub-checks; this port additionally identifies
// which sub-check failed, which the C assert(rtree_check(tr)) doesn't need
// but a Go test harness benefits from.
func (tr *Tree[N, T]) Check() error {
	if tr.root == nil {
		return nil
	}
	if err := checkOrder(tr.root); err != nil {
		return err
	}
	if err := checkRects(&tr.rect, tr.root); err != nil {
		return err
	}
	return tr.checkHeight()
}

func checkOrder[N Number, T any](n *node[N, T]) error {
	for i := 1; i < int(n.count); i++ {
		if n.rects[i].Min[0] < n.rects[i-1].Min[0] {
			return fmt.Errorf("rtree: entries out of order at index %d", i)
		}
	}
	if !n.isLeaf() {
		children := n.children()
		for i := 0; i < int(n.count); i++ {
			if err := checkOrder(children[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRects[N Number, T any](want *Rect[N], n *node[N, T]) error {
	got := n.rectCalc()
	if !want.equals(&got) {
		return fmt.Errorf("rtree: invalid rect: want %v, got %v", *want, got)
	}
	if !n.isLeaf() {
		children := n.children()
		for i := 0; i < int(n.count); i++ {
			if err := checkRects(&n.rects[i], children[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (tr *Tree[N, T]) checkHeight() error {
	height := 0
	n := tr.root
	for n != nil {
		height++
		if n.isLeaf() {
			break
		}
		n = n.children()[0]
	}
	if height != tr.height {
		return fmt.Errorf("rtree: invalid height: want %d, got %d", tr.height, height)
	}
	return nil
}
