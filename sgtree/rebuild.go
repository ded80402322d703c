package sgtree

import (
	"golang.org/x/exp/constraints"

	"github.com/rs/zerolog/log"
)

// Rebuild replaces the subtree on side of node with a balanced tree made of
// the same nodes. A nil node is ignored.
func Rebuild[K constraints.Ordered](node *Node[K], side Side) {
	if node == nil {
		return
	}

	nodes := EnumerateNodes(node, side)
	node.setChild(side, BuildTree(nodes))

	log.Debug().Msgf("rebuilt %s subtree of %v with %d nodes", side, node.Key, len(nodes))
}

// BuildTree links the sorted nodes into a balanced tree and returns its
// root, or nil for no nodes.
func BuildTree[K constraints.Ordered](nodes []*Node[K]) *Node[K] {
	return Construct(nodes, 0, len(nodes)-1)
}

// Construct links nodes[start..end] (inclusive) into a balanced tree and
// returns its root. The middle node, rounding down, becomes the root.
// Two nodes are linked as a root with a single right child.
func Construct[K constraints.Ordered](nodes []*Node[K], start, end int) *Node[K] {
	if start > end {
		return nil
	}

	var root *Node[K]
	stack := []span[K]{{start: start, end: end}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var sub *Node[K]
		switch {
		case s.start == s.end:
			sub = nodes[s.start]
			sub.Left, sub.Right = nil, nil
		case s.start+1 == s.end:
			sub = nodes[s.start]
			sub.Left, sub.Right = nil, nodes[s.end]
			nodes[s.end].Left, nodes[s.end].Right = nil, nil
		default:
			mid := s.start + (s.end-s.start)/2
			sub = nodes[mid]
			sub.Left, sub.Right = nil, nil
			stack = append(stack,
				span[K]{start: s.start, end: mid - 1, parent: sub, side: Left},
				span[K]{start: mid + 1, end: s.end, parent: sub, side: Right},
			)
		}

		if s.parent == nil {
			root = sub
		} else {
			s.parent.setChild(s.side, sub)
		}
	}
	return root
}

// span is a pending range of nodes and the slot its subtree attaches to.
type span[K constraints.Ordered] struct {
	start, end int
	parent     *Node[K]
	side       Side
}
