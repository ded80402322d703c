package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Writer struct {
	baseDir string
}

func NewWriter(root, name string, runID uuid.UUID) (*Writer, error) {
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Create a subfolder named by current timestamp and run; it must be new
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(parent, timestamp+"-"+runID.String())
	err = os.Mkdir(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteEvaluationRecords(records []EvaluationRecord) error {
	header := []string{"run_id", "file", "value", "best_child", "nodes", "leaves", "max_depth", "duration", "error"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		errText := ""
		if record.Err != nil {
			errText = record.Err.Error()
		}
		rows = append(rows, []string{
			record.RunID.String(),
			record.File,
			strconv.Itoa(record.Value),
			record.BestChild,
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Leaves, 10),
			strconv.FormatInt(record.MaxDepth, 10),
			record.Duration.String(),
			errText,
		})
	}
	return w.write("evaluation_records.csv", header, rows)
}

func (w *Writer) WriteRebuildRecords(records []RebuildRecord) error {
	header := []string{"run_id", "trial", "order", "keys", "side", "rebuilt", "height_before", "height_after", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.RunID.String(),
			strconv.Itoa(record.Trial),
			record.Order,
			strconv.Itoa(record.Keys),
			record.Side,
			strconv.Itoa(record.Rebuilt),
			strconv.Itoa(record.HeightBefore),
			strconv.Itoa(record.HeightAfter),
			record.Duration.String(),
		})
	}
	return w.write("rebuild_records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filename, err)
	}
	return nil
}
