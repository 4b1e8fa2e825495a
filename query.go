package rtree

// Search reports every entry whose rectangle intersects [min, max] to
// visit, in per-node stored order (Min[0] ascending). Returning false from
// visit aborts the entire traversal immediately. Search never mutates and
// never clone-on-writes.
func (tr *Tree[N, T]) Search(min, max [2]N, visit Visitor[N, T], userData any) {
	if tr.root == nil {
		return
	}
	target := Rect[N]{Min: min, Max: max}
	if !tr.rect.intersects(&target) {
		return
	}
	nodeSearch(tr.root, &target, visit, userData)
}

func nodeSearch[N Number, T any](n *node[N, T], target *Rect[N], visit Visitor[N, T], userData any) bool {
	if n.isLeaf() {
		items := n.items()
		for i := 0; i < int(n.count); i++ {
			if n.rects[i].intersects(target) {
				if !visit(n.rects[i].Min, n.rects[i].Max, items[i], userData) {
					return false
				}
			}
		}
		return true
	}
	children := n.children()
	for i := 0; i < int(n.count); i++ {
		if target.intersects(&n.rects[i]) {
			if !nodeSearch(children[i], target, visit, userData) {
				return false
			}
		}
	}
	return true
}

// Scan reports every entry in the tree, in an unspecified but
// deterministic depth-first order. Scan never mutates and never
// clone-on-writes.
func (tr *Tree[N, T]) Scan(visit Visitor[N, T], userData any) {
	if tr.root == nil {
		return
	}
	nodeScan(tr.root, visit, userData)
}

func nodeScan[N Number, T any](n *node[N, T], visit Visitor[N, T], userData any) bool {
	if n.isLeaf() {
		items := n.items()
		for i := 0; i < int(n.count); i++ {
			if !visit(n.rects[i].Min, n.rects[i].Max, items[i], userData) {
				return false
			}
		}
		return true
	}
	children := n.children()
	for i := 0; i < int(n.count); i++ {
		if !nodeScan(children[i], visit, userData) {
			return false
		}
	}
	return true
}
