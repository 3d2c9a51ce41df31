package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"

	"github.com/npillmayer/forest/maybe"
)

// ErrInvalidAction is returned if a traversal is started without an action.
var ErrInvalidAction = errors.New("traversal action is invalid")

// SkipChildren may be returned by an Action to leave out the children of the
// current node. The traversal continues with the next sibling.
var SkipChildren = errors.New("skip children of node")

// --- Lookup ----------------------------------------------------------------

// FindNode searches f depth-first and returns the first node (in pre-order)
// whose key equals value. Later matches are never inspected.
func FindNode[R any, V comparable](f Forest[R], key func(R) V, value V) maybe.Maybe[*Node[R]] {
	for _, node := range f {
		if node == nil {
			continue
		}
		if key(node.Record) == value {
			return maybe.Just(node)
		}
		if found := FindNode(node.children, key, value); !found.IsNothing() {
			return found
		}
	}
	return maybe.Nothing[*Node[R]]()
}

// FindParent returns the direct parent of the node whose key equals value.
//
// For each node of a level, if one of its immediate children matches, the
// node is the parent; otherwise the search descends into its children.
// Roots have no parent: a match at root level does not count. If several
// nodes match, the first parent found wins.
func FindParent[R any, V comparable](f Forest[R], key func(R) V, value V) maybe.Maybe[*Node[R]] {
	for _, node := range f {
		if node.ChildCount() == 0 {
			continue
		}
		for _, ch := range node.children {
			if ch != nil && key(ch.Record) == value {
				return maybe.Just(node)
			}
		}
		if parent := FindParent(node.children, key, value); !parent.IsNothing() {
			return parent
		}
	}
	return maybe.Nothing[*Node[R]]()
}

// CollectLeaves finds the node identified by nodeID and returns all of its
// descendants in pre-order. This includes inner nodes, not only leafs.
// The result is empty if there is no such node or if it has no children.
func CollectLeaves[R any, K comparable](f Forest[R], id func(R) K, nodeID K) []*Node[R] {
	return descendantsOf(f, id, nodeID, Whatever[R]())
}

// Leaves is like CollectLeaves, but returns leaf nodes only.
func Leaves[R any, K comparable](f Forest[R], id func(R) K, nodeID K) []*Node[R] {
	return descendantsOf(f, id, nodeID, NodeIsLeaf[R]())
}

func descendantsOf[R any, K comparable](f Forest[R], id func(R) K, nodeID K, predicate Predicate[R]) []*Node[R] {
	node, ok := FindNode(f, id, nodeID).Get()
	if !ok {
		return []*Node[R]{}
	}
	return node.Descendants(predicate)
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for Select and Descendants to collect a
// selection of nodes.
type Predicate[R any] func(test *Node[R]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[R any]() Predicate[R] {
	return func(*Node[R]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[R any]() Predicate[R] {
	return func(test *Node[R]) bool {
		return test.IsLeaf()
	}
}

// KeyIs is a predicate to match nodes whose key equals value.
func KeyIs[R any, V comparable](key func(R) V, value V) Predicate[R] {
	return func(test *Node[R]) bool {
		return key(test.Record) == value
	}
}

// Select collects all nodes of f matching a predicate, in pre-order.
// A nil predicate matches nothing.
func Select[R any](f Forest[R], predicate Predicate[R]) []*Node[R] {
	selection := []*Node[R]{}
	if predicate == nil {
		return selection
	}
	_ = TopDown(f, func(n, _ *Node[R], _ int) error {
		if predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}

// ----------------------------------------------------------------------

// Action is a function type to operate on tree nodes. parent is nil for
// roots, position is the index of n among its siblings.
type Action[R any] func(n *Node[R], parent *Node[R], position int) error

// TopDown traverses a forest in pre-order. The traversal guarantees that
// parents are always processed before their children, and that siblings are
// processed in order.
//
// If the action returns SkipChildren for a node, the branch below this node
// is left out. Any other error stops the traversal and is returned.
func TopDown[R any](f Forest[R], action Action[R]) error {
	if action == nil {
		return ErrInvalidAction
	}
	return topDown(f, nil, action)
}

func topDown[R any](f Forest[R], parent *Node[R], action Action[R]) error {
	for position, node := range f {
		if node == nil {
			continue
		}
		err := action(node, parent, position)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if err = topDown(node.children, node, action); err != nil {
			return err
		}
	}
	return nil
}

// Map creates a forest of the same shape as f, with each record converted
// by fn. f is not modified.
func Map[R, S any](f Forest[R], fn func(R) S) Forest[S] {
	out := make(Forest[S], 0, len(f))
	for _, node := range f {
		if node == nil {
			continue
		}
		n := NewNode(fn(node.Record))
		if node.ChildCount() > 0 {
			n.children = Map(node.children, fn)
		}
		out = append(out, n)
	}
	return out
}
