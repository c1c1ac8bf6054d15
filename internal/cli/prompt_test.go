package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/drawodds"
)

func TestPromptQuery(t *testing.T) {
	t.Run("Full session renders report", func(t *testing.T) {
		in := strings.NewReader("Drawing Hearts from a Deck\n52\n13\n5\n2\n")
		var out bytes.Buffer

		err := promptQuery(in, &out, drawodds.New())
		require.NoError(t, err)

		output := out.String()
		// Prompts appear in fixed order with the arrow marker.
		assert.Contains(t, output, "Enter a description of the probability being calculated\n-> ")
		assert.Contains(t, output, "Enter the total population size (N)\n-> ")
		assert.Contains(t, output, "Enter the number of successes in the total population (K)\n-> ")
		assert.Contains(t, output, "Enter the sample size (n)\n-> ")
		assert.Contains(t, output, "Enter the number of successes required (k)\n-> ")

		assert.Contains(t, output, "Drawing Hearts from a Deck")
		assert.Contains(t, output, "27.43")
	})

	t.Run("Missing trailing newline still parses", func(t *testing.T) {
		in := strings.NewReader("Last line\n10\n5\n4\n0")
		var out bytes.Buffer

		err := promptQuery(in, &out, drawodds.New())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "2.38")
	})

	t.Run("Non-numeric input propagates a parse error", func(t *testing.T) {
		in := strings.NewReader("Bad session\nfifty-two\n")
		var out bytes.Buffer

		err := promptQuery(in, &out, drawodds.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected an integer")
		assert.NotContains(t, out.String(), "Less than")
	})

	t.Run("Infeasible parameters render an error line", func(t *testing.T) {
		// k > n fails validation, which the render path recovers from.
		in := strings.NewReader("Too greedy\n52\n13\n5\n9\n")
		var out bytes.Buffer

		err := promptQuery(in, &out, drawodds.New())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Error: invalid parameters")
	})

	t.Run("Truncated session returns read error", func(t *testing.T) {
		in := strings.NewReader("Only a label\n")
		var out bytes.Buffer

		err := promptQuery(in, &out, drawodds.New())
		require.Error(t, err)
	})
}
