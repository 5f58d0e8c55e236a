package metrics

import (
	"encoding/csv"
	"minimax/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "smoke")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "smoke", w.RunID.String()), w.Dir(), "Each run gets its own directory")

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Evaluate: "basic", Depth: 3}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "evaluator", "depth"}, {"1", "basic", "3"}}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				Start:      "WxxxxxxxxxxxxxxB",
				Final:      "xxxxxxxxxxxxxxxB",
				Winner:     "black",
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 9,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "WxxxxxxxxxxxxxxB", "xxxxxxxxxxxxxxxB", "black",
			"2024-01-01T00:00:00Z", "2024-01-01T00:00:01Z", "1s", "9"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:     2,
				Position: "WxxxxxxxxxxxxxBx",
				SearchMetric: SearchMetric{
					Depth: 3, Evaluate: "improved", Side: game.Black,
					Estimate: -4, Leaves: 12, Nodes: 5, Duration: time.Millisecond,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "2", "black", "WxxxxxxxxxxxxxBx", "improved", "3", "-4", "12", "5", "1ms"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4, game.Black, game.Improved.Name)
	c.AddNode()
	c.AddLeaf()
	c.AddLeaf()

	got := c.Complete(-3)

	require.Equal(t, 4, got.Depth)
	require.Equal(t, game.Black, got.Side)
	require.Equal(t, "improved", got.Evaluate)
	require.Equal(t, 1, got.Nodes)
	require.Equal(t, 2, got.Leaves)
	require.Equal(t, -3, got.Estimate)

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(5), "Dummy collector records nothing")
}
