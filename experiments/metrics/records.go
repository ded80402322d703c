package metrics

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationRecord struct {
	RunID     uuid.UUID
	File      string
	Value     int
	BestChild string // Name of the root's best reply, empty for leaves
	Nodes     int64
	Leaves    int64
	MaxDepth  int64
	Duration  time.Duration
	Err       error
}

type RebuildRecord struct {
	RunID        uuid.UUID
	Trial        int
	Order        string // Insertion order of the keys
	Keys         int
	Side         string // Side of the root that was rebuilt
	Rebuilt      int    // Nodes in the rebuilt subtree
	HeightBefore int
	HeightAfter  int
	Duration     time.Duration
}
