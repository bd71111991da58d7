package dicttree

import (
	"cmp"
	"slices"
)

// Node is one level of a Tree. Children are keyed by K; a node marks the end
// of a stored sequence through its terminal flag.
type Node[K cmp.Ordered] struct {
	children map[K]*Node[K] // nil until the first child is added
	terminal bool           // true if a stored sequence ends here
}

// Child returns the child reached through key k, if any.
func (n *Node[K]) Child(k K) (*Node[K], bool) {
	if n == nil || n.children == nil {
		return nil, false
	}
	c, ok := n.children[k]

	return c, ok
}

// Terminal reports whether a stored sequence ends at this node.
func (n *Node[K]) Terminal() bool {
	return n != nil && n.terminal
}

// Degree returns the number of direct children.
func (n *Node[K]) Degree() int {
	if n == nil {
		return 0
	}

	return len(n.children)
}

// Keys returns the child keys in ascending order.
func (n *Node[K]) Keys() []K {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	keys := make([]K, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// ensure returns the child at k, allocating it (and the children map) when
// missing. The bool result is true if a new node was created.
func (n *Node[K]) ensure(k K) (*Node[K], bool) {
	if n.children == nil {
		n.children = make(map[K]*Node[K])
	}
	if c, ok := n.children[k]; ok {
		return c, false
	}
	c := &Node[K]{}
	n.children[k] = c

	return c, true
}
