package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// RankRecord is one candidate hold of a ranked search.
type RankRecord struct {
	Rank          int
	Hold          []int
	FreeDice      int
	ExpectedValue float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of baseDir named by the current timestamp.
func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRankRecords(records []RankRecord) error {
	path := filepath.Join(w.baseDir, "rankings.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rankings file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"rank", "hold", "free_dice", "expected_value"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write rankings header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Rank),
			formatHold(record.Hold),
			strconv.Itoa(record.FreeDice),
			strconv.FormatFloat(record.ExpectedValue, 'f', 6, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write ranking row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rankings: %w", err)
	}
	return nil
}

func (w *Writer) WriteSearchMetric(metric SearchMetric) error {
	path := filepath.Join(w.baseDir, "search.json")
	data, err := json.MarshalIndent(metric, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode search metric: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write search metric: %w", err)
	}
	return nil
}

// formatHold renders a hold as space separated faces, e.g. "3 3 5".
func formatHold(hold []int) string {
	faces := make([]string, len(hold))
	for i, face := range hold {
		faces[i] = strconv.Itoa(face)
	}
	return strings.Join(faces, " ")
}
