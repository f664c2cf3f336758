package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteRankRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []RankRecord{
		{Rank: 1, Hold: []int{5}, FreeDice: 4, ExpectedValue: 9.70216049382716},
		{Rank: 2, Hold: []int{}, FreeDice: 5, ExpectedValue: 8.753858024691358},
		{Rank: 3, Hold: []int{3, 5}, FreeDice: 3, ExpectedValue: 8.74074074074074},
	}
	require.NoError(t, w.WriteRankRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "rankings.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"rank", "hold", "free_dice", "expected_value"},
		{"1", "5", "4", "9.702160"},
		{"2", "", "5", "8.753858"},
		{"3", "3 5", "3", "8.740741"},
	}, rows)
}

func TestWriteSearchMetric(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	metric := SearchMetric{
		Hand:        []int{3, 3, 1, 2, 5},
		NumDieSides: 6,
		Holds:       32,
		Outcomes:    4651,
		StartTime:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:    time.Second,
	}
	require.NoError(t, w.WriteSearchMetric(metric))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "search.json"))
	require.NoError(t, err)

	var got SearchMetric
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, metric, got)
}

func TestNewWriter(t *testing.T) {
	t.Run("creating a timestamped directory", func(t *testing.T) {
		base := t.TempDir()

		w, err := NewWriter(base)

		require.NoError(t, err)
		require.Equal(t, base, filepath.Dir(w.Dir()))
		info, err := os.Stat(w.Dir())
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("failing when the base is a file", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(base, []byte("x"), 0644))

		_, err := NewWriter(base)

		require.Error(t, err)
	})
}
