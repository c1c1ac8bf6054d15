package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/drawodds"
	"github.com/aretw0/drawodds/internal/presentation/tui"
)

// PromptOptions contains the configuration for an interactive session.
type PromptOptions struct {
	Debug bool
}

// RunPrompt reads one query interactively from stdin and renders its report.
// Prompts come in fixed order: description, N, K, n, k. A non-numeric answer
// is a parse error and propagates; it is outside the calculator's
// validation-and-recovery contract.
func RunPrompt(opts PromptOptions) error {
	if isInteractive() {
		tui.PrintBanner(drawodds.Version)
	}
	logger := createLogger(opts.Debug)
	calc := drawodds.New(drawodds.WithLogger(logger))
	return promptQuery(os.Stdin, os.Stdout, calc)
}

// promptQuery runs the fixed prompt sequence against r/w and renders the
// resulting report. Split from RunPrompt so tests can script the session.
func promptQuery(r io.Reader, w io.Writer, calc *drawodds.Calculator) error {
	reader := bufio.NewReader(r)

	label, err := readLine(reader, w, "Enter a description of the probability being calculated")
	if err != nil {
		return err
	}
	population, err := readInt(reader, w, "Enter the total population size (N)")
	if err != nil {
		return err
	}
	successes, err := readInt(reader, w, "Enter the number of successes in the total population (K)")
	if err != nil {
		return err
	}
	draws, err := readInt(reader, w, "Enter the sample size (n)")
	if err != nil {
		return err
	}
	target, err := readInt(reader, w, "Enter the number of successes required (k)")
	if err != nil {
		return err
	}

	calc.SetParameters(population, successes, draws, target, label)
	calc.Fdisplay(w)
	return nil
}

func readLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprintf(w, "%s\n-> ", prompt)
	text, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func readInt(reader *bufio.Reader, w io.Writer, prompt string) (int, error) {
	text, err := readLine(reader, w, prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q: %w", text, err)
	}
	return value, nil
}
