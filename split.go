package rtree

// splitNode implements the "largest-axis edge snap" split strategy of
// spec.md §4.2: entries of a full left node are partitioned by which face
// of the parent's largest axis they sit closer to, then either side that
// fell under MinEntries is topped up by donation from the other, and
// finally (I5) is restored on both sides.
func (tr *Tree[N, T]) splitNode(pr Rect[N], left *node[N, T]) (right *node[N, T], ok bool) {
	axis := pr.largestAxis()
	right, ok = tr.newNode(left.isLeaf())
	if !ok {
		return nil, false
	}
	for i := 0; i < int(left.count); i++ {
		dLo := left.rects[i].Min[axis] - pr.Min[axis]
		dHi := pr.Max[axis] - left.rects[i].Max[axis]
		if dLo >= dHi {
			left.moveEntryInto(i, right, tr.empty)
			i--
		}
	}
	switch {
	case int(left.count) < MinEntries:
		right.sortByAxis(axis, true, false)
		for int(left.count) < MinEntries {
			right.moveEntryInto(int(right.count)-1, left, tr.empty)
		}
	case int(right.count) < MinEntries:
		left.sortByAxis(axis, true, true)
		for int(right.count) < MinEntries {
			left.moveEntryInto(int(left.count)-1, right, tr.empty)
		}
	}
	right.sort()
	if !left.issorted() {
		left.sort()
	}
	return right, true
}
