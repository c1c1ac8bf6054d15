package cli

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/drawodds"
)

// Query is one entry in a batch file.
type Query struct {
	Label      string `yaml:"label"`
	Population int    `yaml:"population"`
	Successes  int    `yaml:"successes"`
	Draws      int    `yaml:"draws"`
	Target     int    `yaml:"target"`
}

// batchFile is the structure of a queries YAML file.
type batchFile struct {
	Queries []Query `yaml:"queries"`
}

// LoadBatch reads a YAML batch file and returns its queries.
func LoadBatch(path string) ([]Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	return file.Queries, nil
}

// RunBatch renders a report for every query in a YAML file, reusing a single
// calculator across queries. A query that fails validation renders its error
// line and the batch continues; only file-level problems abort the run.
func RunBatch(path string, debug bool) error {
	return runBatch(os.Stdout, path, debug)
}

func runBatch(w io.Writer, path string, debug bool) error {
	logger := createLogger(debug)

	queries, err := LoadBatch(path)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", path)
	}
	logger.Debug("loaded batch file", "path", path, "queries", len(queries))

	calc := drawodds.New(drawodds.WithLogger(logger))
	for _, q := range queries {
		calc.SetParameters(q.Population, q.Successes, q.Draws, q.Target, q.Label)
		calc.Fdisplay(w)
	}
	return nil
}
