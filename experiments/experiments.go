package experiments

import (
	"errors"
	"fmt"
	"gametree/config"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"
	"gametree/sgtree"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	EvaluationExperiment = "evaluation"
	RebuildExperiment    = "rebuild"
)

var ErrEvaluationFailed = errors.New("some game trees could not be evaluated")

type Order string

const (
	Ascending  Order = "ascending"
	Descending Order = "descending"
	Shuffled   Order = "shuffled"
)

var Orders = []Order{Ascending, Descending, Shuffled}

// Run evaluates every configured game file and runs the configured rebuild
// trials, storing the records of each experiment under cfg.OutputDir.
// Boards are drawn to out when cfg.DrawBoards is set.
func Run(cfg *config.Config, out io.Writer) error {
	runID := uuid.New()
	log.Info().Msgf("starting run %s", runID)

	var failed error
	if len(cfg.GameFiles) > 0 {
		var boards io.Writer
		if cfg.DrawBoards {
			boards = out
		}
		records := RunEvaluation(runID, cfg.GameFiles, boards)
		if err := store(cfg.OutputDir, EvaluationExperiment, runID, func(w *metrics.Writer) error {
			return w.WriteEvaluationRecords(records)
		}); err != nil {
			return err
		}

		count := 0
		for _, record := range records {
			if record.Err != nil {
				count++
			}
		}
		if count > 0 {
			failed = fmt.Errorf("%w: %d of %d", ErrEvaluationFailed, count, len(records))
		}
	}

	if cfg.Trials > 0 && cfg.Keys > 0 {
		records := RunRebuild(runID, cfg.Trials, cfg.Keys, cfg.Seed)
		if err := store(cfg.OutputDir, RebuildExperiment, runID, func(w *metrics.Writer) error {
			return w.WriteRebuildRecords(records)
		}); err != nil {
			return err
		}
	}

	log.Info().Msgf("completed run %s", runID)
	return failed
}

func store(root, name string, runID uuid.UUID, write func(w *metrics.Writer) error) error {
	writer, err := metrics.NewWriter(root, name, runID)
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", name, err)
	}
	if err := write(writer); err != nil {
		return fmt.Errorf("failed to store %s records: %w", name, err)
	}
	log.Info().Msgf("stored %s records in %s", name, writer.Dir())
	return nil
}

// RunEvaluation loads and evaluates each game file. A file that cannot be
// loaded yields a record carrying the error. If boards is not nil the root
// board and its best reply are drawn to it.
func RunEvaluation(runID uuid.UUID, files []string, boards io.Writer) []metrics.EvaluationRecord {
	log.Info().Msgf("starting %s experiment...", EvaluationExperiment)

	records := make([]metrics.EvaluationRecord, 0, len(files))
	evaluator := searcher.NewEvaluator(searcher.WithMetrics())
	for i, file := range files {
		log.Info().Msgf("evaluating game %d of %d: %s", i+1, len(files), file)

		record := evaluateFile(evaluator, file, boards)
		record.RunID = runID
		records = append(records, record)

		if record.Err != nil {
			log.Error().Err(record.Err).Msgf("failed to evaluate %s", file)
			continue
		}
		log.Info().Msgf("completed game %s with value: %d", file, record.Value)
	}

	log.Info().Msgf("completed %s experiment", EvaluationExperiment)
	return records
}

func evaluateFile(evaluator *searcher.Evaluator, file string, boards io.Writer) metrics.EvaluationRecord {
	record := metrics.EvaluationRecord{File: file, Value: game.NoValue}

	root, err := game.Load(file)
	if err != nil {
		record.Err = err
		return record
	}

	value, err := evaluator.Evaluate(root)
	if err != nil {
		record.Err = err
		return record
	}

	metric := evaluator.LastMetric()
	record.Value = value
	record.Nodes = metric.Nodes
	record.Leaves = metric.Leaves
	record.MaxDepth = metric.MaxDepth
	record.Duration = metric.Duration

	var best *game.Node
	if i := searcher.BestChild(root); i >= 0 {
		best = root.Children[i]
		record.BestChild = best.Name
	}

	if boards != nil {
		drawBoards(boards, file, root, best)
	}
	return record
}

func drawBoards(w io.Writer, file string, root, best *game.Node) {
	fmt.Fprintf(w, "%s: value %d\n", file, root.Value)
	if err := game.DrawBoard(w, root.Name); err != nil {
		log.Warn().Err(err).Msgf("cannot draw root board of %s", file)
		return
	}
	if best == nil {
		return
	}
	fmt.Fprintf(w, "best reply (value %d):\n", best.Value)
	if err := game.DrawBoard(w, best.Name); err != nil {
		log.Warn().Err(err).Msgf("cannot draw best reply of %s", file)
	}
}

// RunRebuild inserts keys into a fresh tree for every trial and insertion
// order, then rebuilds the larger side of the root.
func RunRebuild(runID uuid.UUID, trials, keys int, seed uint64) []metrics.RebuildRecord {
	log.Info().Msgf("starting %s experiment...", RebuildExperiment)

	rng := rand.New(rand.NewSource(seed))
	records := []metrics.RebuildRecord{}
	for trial := 1; trial <= trials; trial++ {
		for _, order := range Orders {
			record := rebuildTrial(InsertionOrder(order, keys, rng))
			record.RunID = runID
			record.Trial = trial
			record.Order = string(order)
			records = append(records, record)

			log.Debug().Msgf("trial %d %s: height %d -> %d", trial, order, record.HeightBefore, record.HeightAfter)
		}
	}

	log.Info().Msgf("completed %s experiment with %d trials", RebuildExperiment, len(records))
	return records
}

func rebuildTrial(keys []int) metrics.RebuildRecord {
	tree := &sgtree.Tree[int]{}
	for _, key := range keys {
		tree.Insert(key)
	}

	side := sgtree.Right
	if sgtree.CountNodes(tree.Root, sgtree.Left) > sgtree.CountNodes(tree.Root, sgtree.Right) {
		side = sgtree.Left
	}

	record := metrics.RebuildRecord{
		Keys:         len(keys),
		Side:         side.String(),
		Rebuilt:      sgtree.CountNodes(tree.Root, side),
		HeightBefore: tree.Height(),
	}

	start := time.Now()
	tree.Rebuild(tree.Root, side)
	record.Duration = time.Since(start)
	record.HeightAfter = tree.Height()

	return record
}

// InsertionOrder returns the keys 0..n-1 in the given order.
func InsertionOrder(order Order, n int, rng *rand.Rand) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	switch order {
	case Ascending:
	case Descending:
		for i := range keys {
			keys[i] = n - 1 - i
		}
	case Shuffled:
		rng.Shuffle(n, func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	default:
		panic(fmt.Sprintf("unexpected insertion order %q", order))
	}
	return keys
}
