package metrics

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	runID := uuid.New()

	t.Run("creating a timestamped directory", func(t *testing.T) {
		root := t.TempDir()

		w, err := NewWriter(root, "evaluation", runID)

		require.NoError(t, err)
		require.DirExists(t, w.Dir())
		require.Equal(t, filepath.Join(root, "evaluation"), filepath.Dir(w.Dir()))
		require.Contains(t, filepath.Base(w.Dir()), runID.String())
	})

	t.Run("separating writers created at the same time", func(t *testing.T) {
		root := t.TempDir()

		first, err := NewWriter(root, "rebuild", uuid.New())
		require.NoError(t, err)
		second, err := NewWriter(root, "rebuild", uuid.New())
		require.NoError(t, err)

		require.NotEqual(t, first.Dir(), second.Dir())
		require.NoError(t, first.WriteRebuildRecords([]RebuildRecord{{Trial: 1}}))
		require.NoError(t, second.WriteRebuildRecords([]RebuildRecord{{Trial: 2}, {Trial: 3}}))
		require.Len(t, readCSV(t, filepath.Join(first.Dir(), "rebuild_records.csv")), 2)
		require.Len(t, readCSV(t, filepath.Join(second.Dir(), "rebuild_records.csv")), 3)
	})

	t.Run("writing evaluation records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "evaluation", runID)
		require.NoError(t, err)

		err = w.WriteEvaluationRecords([]EvaluationRecord{
			{RunID: runID, File: "a.txt", Value: 1, BestChild: "X________", Nodes: 3, Leaves: 2, MaxDepth: 1, Duration: time.Millisecond},
			{RunID: runID, File: "b.txt", Err: errors.New("file ended too soon")},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "evaluation_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "run_id", rows[0][0])
		require.Equal(t, []string{runID.String(), "a.txt", "1", "X________", "3", "2", "1", "1ms", ""}, rows[1])
		require.Equal(t, "file ended too soon", rows[2][8])
	})

	t.Run("writing rebuild records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "rebuild", runID)
		require.NoError(t, err)

		err = w.WriteRebuildRecords([]RebuildRecord{
			{RunID: runID, Trial: 1, Order: "ascending", Keys: 100, Side: "right", Rebuilt: 99, HeightBefore: 100, HeightAfter: 8},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "rebuild_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{runID.String(), "1", "ascending", "100", "right", "99", "100", "8", "0s"}, rows[1])
	})
}
