package searcher

import (
	"gametree/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/**
Tests minimax evaluation
- happy path: root with leaves -> max at root, min one level down
- post-order: every internal node is annotated, not only the root
- edge case: nil root -> ErrNoValue, NoValue
- edge case: leaf root -> fixed value
- edge case: non-leaf without children -> NoValue
- properties on random trees: agrees with recursive reference, within leaf
  range, idempotent
- deep trees: no stack overflow
*/

func TestEvaluate(t *testing.T) {
	t.Run("evaluating a root with two leaves", func(t *testing.T) {
		root, err := game.Read(strings.NewReader("20state_root\n011X\n010O\n"))
		require.NoError(t, err)

		got, err := Evaluate(root)

		require.NoError(t, err)
		require.Equal(t, 0, got, "Maximizer should pick max(0, -1)")
		require.Equal(t, 0, root.Value, "Root should be annotated with its value")
	})

	t.Run("alternating players by depth", func(t *testing.T) {
		// max(min(1, -1), min(0, 1)) = 0
		left := game.NewInternal("l", game.NewLeaf("a", 1), game.NewLeaf("b", -1))
		right := game.NewInternal("r", game.NewLeaf("c", 0), game.NewLeaf("d", 1))
		root := game.NewInternal("root", left, right)

		got, err := Evaluate(root)

		require.NoError(t, err)
		require.Equal(t, 0, got)
		require.Equal(t, -1, left.Value, "Minimizer should pick the min at depth 1")
		require.Equal(t, 0, right.Value, "Minimizer should pick the min at depth 1")
	})

	t.Run("evaluating with the minimizer to move", func(t *testing.T) {
		root := game.NewInternal("root", game.NewLeaf("a", 1), game.NewLeaf("b", -1))

		got, err := NewEvaluator().EvaluateAs(root, game.Minimizer)

		require.NoError(t, err)
		require.Equal(t, -1, got)
	})

	t.Run("nil root", func(t *testing.T) {
		got, err := Evaluate(nil)

		require.ErrorIs(t, err, ErrNoValue)
		require.Equal(t, game.NoValue, got)
	})

	t.Run("leaf root", func(t *testing.T) {
		got, err := Evaluate(game.NewLeaf("done", 1))

		require.NoError(t, err)
		require.Equal(t, 1, got)
	})

	t.Run("non-leaf without children", func(t *testing.T) {
		got, err := Evaluate(game.NewInternal("empty"))

		require.NoError(t, err)
		require.Equal(t, game.NoValue, got)
	})

	t.Run("evaluating a very deep chain", func(t *testing.T) {
		depth := 300_000
		root := game.NewLeaf("bottom", -1)
		for i := 0; i < depth; i++ {
			root = game.NewInternal("link", root)
		}

		got, err := Evaluate(root)

		require.NoError(t, err)
		require.Equal(t, -1, got)
	})
}

func TestEvaluateRandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		root := randomTree(rng, 6)
		expected := reference(root, game.Maximizer)

		got, err := Evaluate(root)
		require.NoError(t, err)
		require.Equal(t, expected, got, "Should agree with recursive minimax")

		leaves := game.Leaves(root)
		lo, hi := leaves[0], leaves[0]
		for _, v := range leaves {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		require.GreaterOrEqual(t, got, lo, "Value should lie within leaf range")
		require.LessOrEqual(t, got, hi, "Value should lie within leaf range")

		again, err := Evaluate(root)
		require.NoError(t, err)
		require.Equal(t, got, again, "Evaluation should be idempotent")
	}
}

func TestEvaluatorMetrics(t *testing.T) {
	t.Run("collecting metrics", func(t *testing.T) {
		root := game.NewInternal("root",
			game.NewInternal("l", game.NewLeaf("a", 1), game.NewLeaf("b", -1)),
			game.NewLeaf("c", 0),
		)
		e := NewEvaluator(WithMetrics())

		_, err := e.Evaluate(root)
		require.NoError(t, err)

		metric := e.LastMetric()
		require.Equal(t, int64(5), metric.Nodes)
		require.Equal(t, int64(3), metric.Leaves)
		require.Equal(t, int64(2), metric.MaxDepth)
		require.False(t, metric.StartTime.IsZero())
	})

	t.Run("resetting metrics between evaluations", func(t *testing.T) {
		e := NewEvaluator(WithMetrics())
		root := game.NewInternal("root", game.NewLeaf("a", 1))

		_, _ = e.Evaluate(root)
		_, _ = e.Evaluate(root)

		require.Equal(t, int64(2), e.LastMetric().Nodes)
	})

	t.Run("no metrics by default", func(t *testing.T) {
		e := NewEvaluator()

		_, _ = e.Evaluate(game.NewLeaf("a", 1))

		require.Equal(t, Metric{}, e.LastMetric())
	})
}

func TestBestChild(t *testing.T) {
	t.Run("picking the first child achieving the value", func(t *testing.T) {
		root := game.NewInternal("root",
			game.NewLeaf("a", -1), game.NewLeaf("b", 1), game.NewLeaf("c", 1))
		_, err := Evaluate(root)
		require.NoError(t, err)

		require.Equal(t, 1, BestChild(root))
	})

	t.Run("unevaluated node", func(t *testing.T) {
		root := game.NewInternal("root", game.NewLeaf("a", 1))

		require.Equal(t, -1, BestChild(root))
	})

	t.Run("leaf and nil", func(t *testing.T) {
		require.Equal(t, -1, BestChild(game.NewLeaf("a", 1)))
		require.Equal(t, -1, BestChild(nil))
	})
}

func randomTree(rng *rand.Rand, depth int) *game.Node {
	if depth == 0 || rng.Intn(4) == 0 {
		return game.NewLeaf("leaf", rng.Intn(3)-1)
	}
	children := make([]*game.Node, 1+rng.Intn(3))
	for i := range children {
		children[i] = randomTree(rng, depth-1)
	}
	return game.NewInternal("node", children...)
}

func reference(node *game.Node, player game.Player) int {
	if node.Leaf {
		return node.Value
	}
	best := reference(node.Children[0], player.Other())
	for _, child := range node.Children[1:] {
		v := reference(child, player.Other())
		if player == game.Maximizer {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}
