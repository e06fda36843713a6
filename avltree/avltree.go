// Package avltree implements a generic AVL-balanced ordered map.
//
// A Tree[K, V] stores (key, value) pairs under a caller-supplied ordering on K,
// keeping the usual AVL invariant (the two child subtrees of any node differ in
// height by at most one) after every mutation. It is deliberately unaware of
// geometry: the event store and the status structure are both thin
// specializations built on top of it, one keyed by plane points, the other by a
// synthetic numeric key whose placement is decided by a segment comparator
// rather than by K's own order.
//
// Two layers of API are exposed:
//
//   - The ordinary map operations (Insert, Delete, Lookup, Predecessor,
//     Successor, Min, Max, Traverse, Range) drive the tree purely by comparing
//     keys with the Tree's Compare function. This is all the event store needs.
//   - A lower-level, node-handle API (InsertChild, DeleteNode, NodeBefore,
//     NodeAfter) lets a caller decide *where* a new entry belongs using its own
//     logic (the status structure descends by comparing segment payloads, not
//     by the synthetic key), and then hand the tree a concrete node slot and
//     key to place. Both layers share the same rotation and rebalancing code,
//     so a tree built through one API stays balanced under operations from the
//     other.
package avltree

// Compare orders two keys, returning a negative number if a < b, zero if a == b,
// and a positive number if a > b.
type Compare[K any] func(a, b K) int

// Tree is an AVL-balanced ordered map from keys K to values V.
type Tree[K any, V any] struct {
	root *Node[K, V]
	cmp  Compare[K]
	size int
}

// New returns an empty Tree ordered by cmp.
func New[K any, V any](cmp Compare[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of entries currently stored.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Root returns the tree's root node, or nil if the tree is empty. Exposed for
// callers (the status structure) that need to walk the tree structurally.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Entry is a single (key, value) pair returned by traversal and range queries.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func entryOf[K any, V any](n *Node[K, V]) Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}
