package searcher

import (
	"errors"
	"gametree/game"
)

// ErrNoValue is returned when there is no tree to evaluate.
var ErrNoValue = errors.New("no value: game tree is empty")

type Option func(e *Evaluator)

func WithMetrics() Option {
	return func(e *Evaluator) {
		e.metrics = NewMetricsCollector()
	}
}

func WithMetricsCollector(collector MetricsCollector) Option {
	return func(e *Evaluator) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// Evaluator computes minimax values over complete game trees. It keeps no
// state between calls apart from the metrics of the last evaluation.
type Evaluator struct {
	metrics MetricsCollector
	last    Metric
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{ // Default values
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Evaluate is a shorthand for NewEvaluator().Evaluate(root).
func Evaluate(root *game.Node) (int, error) {
	return NewEvaluator().Evaluate(root)
}
