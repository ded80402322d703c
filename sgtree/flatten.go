package sgtree

import "golang.org/x/exp/constraints"

// CountNodes returns the number of nodes in the subtree on side of node,
// not counting node itself.
func CountNodes[K constraints.Ordered](node *Node[K], side Side) int {
	if node == nil {
		return 0
	}
	return size(node.Child(side))
}

func size[K constraints.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}

	count := 0
	stack := []*Node[K]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}
	return count
}

// EnumerateNodes returns the nodes of the subtree on side of node in
// in-order, which is key order for a search tree. The nodes themselves are
// returned, not copies, and their links are left untouched.
func EnumerateNodes[K constraints.Ordered](node *Node[K], side Side) []*Node[K] {
	nodes := make([]*Node[K], 0, CountNodes(node, side))
	if node == nil {
		return nodes
	}
	return appendInOrder(nodes, node.Child(side))
}

func appendInOrder[K constraints.Ordered](nodes []*Node[K], root *Node[K]) []*Node[K] {
	stack := []*Node[K]{}
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, n)
		n = n.Right
	}
	return nodes
}

// InOrder returns the keys of the tree rooted at root in in-order.
func InOrder[K constraints.Ordered](root *Node[K]) []K {
	nodes := appendInOrder(make([]*Node[K], 0, size(root)), root)
	keys := make([]K, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key
	}
	return keys
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height[K constraints.Ordered](root *Node[K]) int {
	height := 0
	level := []*Node[K]{}
	if root != nil {
		level = append(level, root)
	}
	for len(level) > 0 {
		height++
		next := []*Node[K]{}
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}
	return height
}
