package searcher

import (
	"gametree/game"
	"gametree/utils"

	"github.com/rs/zerolog/log"
)

// Evaluate assigns a minimax value to every node of the tree and returns the
// value of the root. The maximizer moves at the root.
func (e *Evaluator) Evaluate(root *game.Node) (int, error) {
	return e.EvaluateAs(root, game.Maximizer)
}

// EvaluateAs is Evaluate with player to move at node.
//
// Leaves keep their value. Every other node takes the max (maximizer) or min
// (minimizer) of its children once all of them are evaluated. A non-leaf
// without children keeps game.NoValue.
func (e *Evaluator) EvaluateAs(node *game.Node, player game.Player) (int, error) {
	if node == nil {
		return game.NoValue, ErrNoValue
	}

	e.metrics.Start()
	postOrder(node, player, e.metrics)
	e.last = e.metrics.Complete()

	log.Debug().Msgf("evaluated %q for %s to %d (nodes=%d leaves=%d depth=%d)",
		node.Name, player, node.Value, e.last.Nodes, e.last.Leaves, e.last.MaxDepth)

	return node.Value, nil
}

// LastMetric returns the metrics of the most recent evaluation. It is zero
// unless the evaluator was created WithMetrics.
func (e *Evaluator) LastMetric() Metric {
	return e.last
}

type frame struct {
	node   *game.Node
	player game.Player
	depth  int
	next   int // Index of the next child to descend into
}

// postOrder walks the tree with an explicit stack so that tree depth is not
// bounded by the goroutine stack.
func postOrder(root *game.Node, player game.Player, metrics MetricsCollector) {
	stack := []frame{{node: root, player: player}}
	metrics.AddNode(0, root.Leaf)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node.Leaf { // Value fixed at parse time
			stack = stack[:len(stack)-1]
			continue
		}

		if top.next < len(top.node.Children) { // Descend before resolving
			child := top.node.Children[top.next]
			top.next++
			metrics.AddNode(top.depth+1, child.Leaf)
			stack = append(stack, frame{node: child, player: top.player.Other(), depth: top.depth + 1})
			continue
		}

		top.node.Value = resolve(top.node.Children, top.player)
		stack = stack[:len(stack)-1]
	}
}

func resolve(children []*game.Node, player game.Player) int {
	value := func(n *game.Node) int { return n.Value }
	switch player {
	case game.Maximizer:
		return utils.MaxBy(children, value, game.NoValue)
	case game.Minimizer:
		return utils.MinBy(children, value, game.NoValue)
	default:
		panic("unexpected player")
	}
}

// BestChild returns the index of the first child whose value matches the
// node's evaluated value, or -1 if the node is unevaluated or has no
// children.
func BestChild(node *game.Node) int {
	if node == nil || node.Leaf || node.Value == game.NoValue {
		return -1
	}

	values := make([]int, len(node.Children))
	for i, child := range node.Children {
		values[i] = child.Value
	}
	return utils.FindIndex(values, node.Value)
}
