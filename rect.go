package rtree

// Number is the set of coordinate types a Rect may be built from. It
// mirrors the teacher package's generic numeric constraint so a Tree can
// be instantiated over integer or floating-point coordinate spaces alike.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// dims is the fixed compile-time dimension count (spec reference
// configuration: D=2). Rect's arrays are sized by this constant, but the
// exported API (Insert, Delete, Search, Visitor, Bounds) spells its
// coordinate arrays as [2]N, so a different dimensionality means a
// recompile that changes both, not a runtime parameter; Go has no generic
// array-length parameter that would let D vary per instantiation without
// losing the fixed-size, no-heap-alloc rect layout.
const dims = 2

// Rect is an axis-aligned hyperbox: Min[i] <= Max[i] for every axis i.
// A point is encoded as Min == Max.
type Rect[N Number] struct {
	Min, Max [dims]N
}

// eq implements the NaN-safe "indistinguishable under ordering" equality
// primitive the core uses uniformly on coordinates: ¬(a<b) ∧ ¬(a>b). This
// is deliberately not "a == b", which disagrees with this formulation only
// for NaN; every coordinate equality test in this package goes through eq
// (ordering tests use < and > directly) so that NaN
// coordinates produce unspecified-but-safe behavior rather than a crash.
func eq[N Number](a, b N) bool {
	return !(a < b) && !(a > b)
}

// area returns the hypervolume of r.
func (r *Rect[N]) area() N {
	a := r.Max[0] - r.Min[0]
	for i := 1; i < dims; i++ {
		a *= r.Max[i] - r.Min[i]
	}
	return a
}

// unionArea returns the hypervolume of r expanded to also cover b, without
// mutating either rectangle.
func (r *Rect[N]) unionArea(b *Rect[N]) N {
	var lo, hi [dims]N
	for i := 0; i < dims; i++ {
		lo[i] = fmin(r.Min[i], b.Min[i])
		hi[i] = fmax(r.Max[i], b.Max[i])
	}
	a := hi[0] - lo[0]
	for i := 1; i < dims; i++ {
		a *= hi[i] - lo[i]
	}
	return a
}

// expand widens r in place so that it covers b as well.
func (r *Rect[N]) expand(b *Rect[N]) {
	for i := 0; i < dims; i++ {
		if b.Min[i] < r.Min[i] {
			r.Min[i] = b.Min[i]
		}
		if b.Max[i] > r.Max[i] {
			r.Max[i] = b.Max[i]
		}
	}
}

// contains reports whether b is fully contained within r.
func (r *Rect[N]) contains(b *Rect[N]) bool {
	for i := 0; i < dims; i++ {
		if b.Min[i] < r.Min[i] || b.Max[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// intersects reports whether r and b share any point.
func (r *Rect[N]) intersects(b *Rect[N]) bool {
	for i := 0; i < dims; i++ {
		if b.Min[i] > r.Max[i] || b.Max[i] < r.Min[i] {
			return false
		}
	}
	return true
}

// onEdge reports whether r touches any face of b, i.e. shrinking b to the
// tight union of its contents might need to shrink on this side.
func (r *Rect[N]) onEdge(b *Rect[N]) bool {
	for i := 0; i < dims; i++ {
		if eq(r.Min[i], b.Min[i]) || eq(r.Max[i], b.Max[i]) {
			return true
		}
	}
	return false
}

// equals reports coordinate-wise eq-equality between r and b.
func (r *Rect[N]) equals(b *Rect[N]) bool {
	for i := 0; i < dims; i++ {
		if !eq(r.Min[i], b.Min[i]) || !eq(r.Max[i], b.Max[i]) {
			return false
		}
	}
	return true
}

// largestAxis returns the axis with the greatest extent, ties resolved to
// the lowest index.
func (r *Rect[N]) largestAxis() int {
	axis := 0
	best := r.Max[0] - r.Min[0]
	for i := 1; i < dims; i++ {
		extent := r.Max[i] - r.Min[i]
		if extent > best {
			axis = i
			best = extent
		}
	}
	return axis
}

func fmin[N Number](a, b N) N {
	if a < b {
		return a
	}
	return b
}

func fmax[N Number](a, b N) N {
	if a > b {
		return a
	}
	return b
}
