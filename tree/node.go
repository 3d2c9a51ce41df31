package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our forests are built of. Every node carries a record
// and an ordered list of children. A node without children is a leaf.
type Node[R any] struct {
	Record   R         // payload of the node
	children Forest[R] // children nodes, owned by this node
}

// Forest is an ordered sequence of root nodes.
type Forest[R any] []*Node[R]

// NewNode creates a new tree node for a given record.
func NewNode[R any](record R) *Node[R] {
	return &Node[R]{Record: record}
}

func (node *Node[R]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Record)
}

// AddChild appends a child node. nil children are ignored.
// It returns the parent node to allow for chaining.
func (node *Node[R]) AddChild(ch *Node[R]) *Node[R] {
	if ch != nil {
		node.children = append(node.children, ch)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[R]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// IsLeaf is true for nodes without children.
func (node *Node[R]) IsLeaf() bool {
	return node.ChildCount() == 0
}

// Child returns the n-th child of a node.
func (node *Node[R]) Child(n int) (*Node[R], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not alter the node.
func (node *Node[R]) Children() Forest[R] {
	children := make(Forest[R], node.ChildCount())
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of node, or -1.
func (node *Node[R]) IndexOfChild(ch *Node[R]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Descendants collects all nodes below node (excluding node) matching a
// predicate, in pre-order.
func (node *Node[R]) Descendants(predicate Predicate[R]) []*Node[R] {
	if node == nil {
		return []*Node[R]{}
	}
	return Select(node.children, predicate)
}

// Size returns the number of nodes reachable from the roots of f.
func (f Forest[R]) Size() int {
	n := 0
	for _, node := range f {
		if node != nil {
			n += 1 + node.children.Size()
		}
	}
	return n
}
