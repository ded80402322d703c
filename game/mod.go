package game

import "math"

// NoValue marks a node whose minimax value has not been computed.
const NoValue = math.MinInt

const (
	MinLeafValue = -1
	MaxLeafValue = 1
)

type Player int

const (
	Maximizer Player = iota
	Minimizer
)

func (p Player) Other() Player {
	if p == Maximizer {
		return Minimizer
	}
	return Maximizer
}

func (p Player) String() string {
	switch p {
	case Maximizer:
		return "maximizer"
	case Minimizer:
		return "minimizer"
	default:
		return "unknown"
	}
}

// Node is a single board state in a game tree. Each node owns its children
// exclusively.
type Node struct {
	Name     string
	Children []*Node
	Leaf     bool
	Value    int // Fixed for leaves, NoValue until evaluated otherwise
}

func NewLeaf(name string, value int) *Node {
	return &Node{Name: name, Leaf: true, Value: value}
}

func NewInternal(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children, Value: NoValue}
}

// Walk visits every node of the tree in depth-first pre-order, without
// recursion.
func Walk(root *Node, visit func(node *Node, depth int)) {
	if root == nil {
		return
	}

	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(top.node, top.depth)
		// Push in reverse so the first child is visited first
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}
}

// Leaves returns the values of every leaf in the tree, in depth-first order.
func Leaves(root *Node) []int {
	values := []int{}
	Walk(root, func(node *Node, _ int) {
		if node.Leaf {
			values = append(values, node.Value)
		}
	})
	return values
}

// Size returns the number of nodes and the depth of the deepest node.
func Size(root *Node) (nodes int, depth int) {
	Walk(root, func(_ *Node, d int) {
		nodes++
		if d > depth {
			depth = d
		}
	})
	return nodes, depth
}
