package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBatch(t *testing.T) {
	path := writeBatchFile(t, `
queries:
  - label: "Drawing 3 1-drops from a Deck by turn 5"
    population: 99
    successes: 22
    draws: 13
    target: 3
  - label: "Drawing 1 Ramp from a Deck by turn 3"
    population: 99
    successes: 10
    draws: 9
    target: 1
`)

	queries, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, queries, 2)

	assert.Equal(t, "Drawing 3 1-drops from a Deck by turn 5", queries[0].Label)
	assert.Equal(t, 99, queries[0].Population)
	assert.Equal(t, 22, queries[0].Successes)
	assert.Equal(t, 13, queries[0].Draws)
	assert.Equal(t, 3, queries[0].Target)
}

func TestLoadBatchErrors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadBatch(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeBatchFile(t, "queries: [not closed")
		_, err := LoadBatch(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("Non-integer parameter", func(t *testing.T) {
		path := writeBatchFile(t, `
queries:
  - label: "fractional draws"
    population: 52
    successes: 13
    draws: 5.5
    target: 2
`)
		_, err := LoadBatch(path)
		require.Error(t, err)
	})
}

func TestRunBatch(t *testing.T) {
	t.Run("Renders every query", func(t *testing.T) {
		path := writeBatchFile(t, `
queries:
  - label: "Hearts"
    population: 52
    successes: 13
    draws: 5
    target: 2
  - label: "One-drops"
    population: 99
    successes: 22
    draws: 13
    target: 3
`)
		var out bytes.Buffer
		require.NoError(t, runBatch(&out, path, false))

		output := out.String()
		assert.Contains(t, output, "Hearts")
		assert.Contains(t, output, "27.43")
		assert.Contains(t, output, "One-drops")
		assert.Contains(t, output, "27.31")
	})

	t.Run("Invalid query is reported and the batch continues", func(t *testing.T) {
		path := writeBatchFile(t, `
queries:
  - label: "Broken"
    population: 10
    successes: 20
    draws: 5
    target: 2
  - label: "Still runs"
    population: 10
    successes: 5
    draws: 4
    target: 0
`)
		var out bytes.Buffer
		require.NoError(t, runBatch(&out, path, false))

		output := out.String()
		assert.Contains(t, output, "Error: invalid parameters")
		assert.Contains(t, output, "Still runs")
		assert.Contains(t, output, "2.38")
	})

	t.Run("Empty file is an error", func(t *testing.T) {
		path := writeBatchFile(t, "queries: []\n")
		var out bytes.Buffer
		err := runBatch(&out, path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no queries")
	})
}

func TestRunBatchSummaryLines(t *testing.T) {
	path := writeBatchFile(t, `
queries:
  - label: "Lands by turn 5"
    population: 99
    successes: 37
    draws: 13
    target: 4
`)
	var out bytes.Buffer
	require.NoError(t, runBatch(&out, path, false))

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines, "Total population size: 99, with 37 success states in population")
	assert.Contains(t, lines, "Number of draws: 13, with a target number of 4 successes")
}
