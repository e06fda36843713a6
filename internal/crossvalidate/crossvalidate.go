// Package crossvalidate implements two event-queue backends over off-the-shelf
// balanced-tree libraries -- github.com/emirpasic/gods' red-black tree and
// github.com/google/btree's generic B-tree -- that property tests use to
// double-check the hand-rolled avltree/eventstore's ordering. Neither backend
// is used by production RunSweepLine; they exist purely so a test can insert
// the same set of points into all three structures and assert their in-order
// traversals agree, before trusting C1's bespoke rotation logic on harder
// cases.
package crossvalidate

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"

	"github.com/segsweep/segsweep/point"
)

func compare(a, b any) int {
	return point.Compare(a.(point.Point), b.(point.Point))
}

// RBTEventQueue is an ordered set of points backed by emirpasic/gods'
// red-black tree.
type RBTEventQueue struct {
	tree *rbt.Tree
}

// NewRBTEventQueue returns an empty RBTEventQueue.
func NewRBTEventQueue() *RBTEventQueue {
	return &RBTEventQueue{tree: rbt.NewWith(compare)}
}

// Insert adds p to the queue if not already present.
func (q *RBTEventQueue) Insert(p point.Point) {
	q.tree.Put(p, struct{}{})
}

// Ordered returns every inserted point in ascending lex order.
func (q *RBTEventQueue) Ordered() []point.Point {
	out := make([]point.Point, 0, q.tree.Size())
	it := q.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(point.Point))
	}
	return out
}

// BTreeEventQueue is an ordered set of points backed by google/btree's
// generic B-tree.
type BTreeEventQueue struct {
	tree *btree.BTreeG[point.Point]
}

// NewBTreeEventQueue returns an empty BTreeEventQueue with the given B-tree
// degree.
func NewBTreeEventQueue(degree int) *BTreeEventQueue {
	return &BTreeEventQueue{
		tree: btree.NewG[point.Point](degree, func(a, b point.Point) bool {
			return point.Compare(a, b) < 0
		}),
	}
}

// Insert adds p to the queue, replacing any existing equal point.
func (q *BTreeEventQueue) Insert(p point.Point) {
	q.tree.ReplaceOrInsert(p)
}

// Ordered returns every inserted point in ascending lex order.
func (q *BTreeEventQueue) Ordered() []point.Point {
	out := make([]point.Point, 0, q.tree.Len())
	q.tree.Ascend(func(p point.Point) bool {
		out = append(out, p)
		return true
	})
	return out
}
