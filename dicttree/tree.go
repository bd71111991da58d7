package dicttree

import "cmp"

// Tree is a prefix tree of sequences over K.
//
// The zero value is not usable; create trees with New.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	words int // number of terminal nodes
	nodes int // number of allocated nodes, root included
}

// New returns an empty Tree with a single root node.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{root: &Node[K]{}, nodes: 1}
}

// Root exposes the root node for read-only traversal.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Insert stores seq, creating one node per key not yet present and marking
// the final node terminal. It reports whether seq was newly added.
//
// Inserting the same sequence twice leaves the tree unchanged.
func (t *Tree[K]) Insert(seq []K) bool {
	// 1) Walk from the root, extending the path where keys are missing.
	cur := t.root
	for _, k := range seq {
		next, created := cur.ensure(k)
		if created {
			t.nodes++
		}
		cur = next
	}

	// 2) Mark the last level terminal; count only first-time insertions.
	if cur.terminal {
		return false
	}
	cur.terminal = true
	t.words++

	return true
}

// Lookup walks seq from the root and returns the node it ends on.
// It returns (nil, false) as soon as a key has no branch.
func (t *Tree[K]) Lookup(seq []K) (*Node[K], bool) {
	cur := t.root
	for _, k := range seq {
		next, ok := cur.Child(k)
		if !ok {
			return nil, false
		}
		cur = next
	}

	return cur, true
}

// Contains reports whether seq was inserted in full.
// A sequence that is only a prefix of stored sequences is not contained.
func (t *Tree[K]) Contains(seq []K) bool {
	n, ok := t.Lookup(seq)

	return ok && n.terminal
}

// HasPrefix reports whether at least one path starts with seq, regardless of
// terminal marking. The empty prefix always matches.
func (t *Tree[K]) HasPrefix(seq []K) bool {
	_, ok := t.Lookup(seq)

	return ok
}

// Len returns the number of distinct stored sequences.
func (t *Tree[K]) Len() int {
	return t.words
}

// Nodes returns the number of allocated nodes, including the root.
func (t *Tree[K]) Nodes() int {
	return t.nodes
}

// Clear drops every stored sequence.
func (t *Tree[K]) Clear() {
	t.root = &Node[K]{}
	t.words = 0
	t.nodes = 1
}

// Walk calls fn for every stored sequence that starts with prefix, in
// ascending key order (shorter sequences before their extensions).
// The slice handed to fn is reused between calls; copy it to retain it.
// Returning false from fn stops the walk.
func (t *Tree[K]) Walk(prefix []K, fn func(seq []K) bool) {
	start, ok := t.Lookup(prefix)
	if !ok {
		return
	}
	buf := make([]K, len(prefix), len(prefix)+8)
	copy(buf, prefix)
	walk(start, buf, fn)
}

// walk is the pre-order recursion behind Walk. It returns false once fn asked
// to stop so that every frame unwinds immediately.
func walk[K cmp.Ordered](n *Node[K], path []K, fn func([]K) bool) bool {
	if n.terminal && !fn(path) {
		return false
	}
	for _, k := range n.Keys() {
		if !walk(n.children[k], append(path, k), fn) {
			return false
		}
	}

	return true
}
