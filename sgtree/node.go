// Package sgtree holds the maintenance primitives of a scapegoat tree:
// plain BST insertion and rebuilding a subtree into a balanced shape.
// Choosing when and where to rebuild is left to the caller.
package sgtree

import "golang.org/x/exp/constraints"

// Side designates a child of a node.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

type Node[K constraints.Ordered] struct {
	Key   K
	Left  *Node[K]
	Right *Node[K]
}

func NewNode[K constraints.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key}
}

func (n *Node[K]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node[K]) Child(side Side) *Node[K] {
	switch side {
	case Left:
		return n.Left
	case Right:
		return n.Right
	default:
		panic("unexpected side")
	}
}

func (n *Node[K]) setChild(side Side, child *Node[K]) {
	switch side {
	case Left:
		n.Left = child
	case Right:
		n.Right = child
	default:
		panic("unexpected side")
	}
}

// Tree is a binary search tree that is only rebalanced on request.
type Tree[K constraints.Ordered] struct {
	Root *Node[K]
}

func (t *Tree[K]) Insert(key K) {
	t.Root = Insert(t.Root, key)
}

// Rebuild balances the subtree on side of node, see Rebuild.
func (t *Tree[K]) Rebuild(node *Node[K], side Side) {
	Rebuild(node, side)
}

func (t *Tree[K]) Keys() []K {
	return InOrder(t.Root)
}

func (t *Tree[K]) Height() int {
	return Height(t.Root)
}

// Insert adds key as a new leaf and returns the root, which only changes
// when the tree was empty. Keys equal to a node's key go left. The tree is
// not rebalanced.
func Insert[K constraints.Ordered](root *Node[K], key K) *Node[K] {
	if root == nil {
		return NewNode(key)
	}

	node := root
	for {
		side := Right
		if key <= node.Key {
			side = Left
		}
		next := node.Child(side)
		if next == nil {
			node.setChild(side, NewNode(key))
			return root
		}
		node = next
	}
}
