package rtree

// Cloner is implemented by payload types that know how to produce their
// own stored copy. A Tree whose payload type satisfies Cloner[T] can wire
// its clone hook with CloneHookFromCloner instead of hand-writing one.
type Cloner[T any] interface {
	Clone() T
}

// CloneFunc is the stored-payload clone hook: called once per insertion to
// materialise the value actually held by the tree, and once per node copy
// (clone-on-write) for every payload in a privatised leaf. It returns
// ok=false on failure (e.g. its own allocation failed), which the caller
// must treat as OOM.
type CloneFunc[T any] func(src T, userData any) (dst T, ok bool)

// FreeFunc is the stored-payload free hook: called once for every stored
// payload that is evicted, whether by Delete or by the recursive teardown
// of a node whose reference count reaches zero.
type FreeFunc[T any] func(item T, userData any)

// CloneHookFromCloner adapts a Cloner[T] payload type into a CloneFunc,
// for the common case where cloning is just "ask the value to clone
// itself" and never fails.
func CloneHookFromCloner[T Cloner[T]]() CloneFunc[T] {
	return func(src T, _ any) (T, bool) {
		return src.Clone(), true
	}
}

// Visitor is invoked once per matching entry by Search and Scan. Returning
// false stops the traversal immediately; the traversal does not resume.
type Visitor[N Number, T any] func(min, max [2]N, item T, userData any) (more bool)
