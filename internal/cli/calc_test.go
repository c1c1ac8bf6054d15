package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestRunCalc(t *testing.T) {
	t.Run("Complete flags render the report", func(t *testing.T) {
		var out bytes.Buffer
		err := runCalc(&out, CalcOptions{
			Population: intPtr(52),
			Successes:  intPtr(13),
			Draws:      intPtr(5),
			Target:     intPtr(2),
			Label:      "Drawing Hearts from a Deck",
		})
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "Drawing Hearts from a Deck")
		assert.Contains(t, output, "63.30")
		assert.Contains(t, output, "27.43")
		assert.Contains(t, output, "9.28")
	})

	t.Run("Omitted flag is reported as unset", func(t *testing.T) {
		var out bytes.Buffer
		err := runCalc(&out, CalcOptions{
			Population: intPtr(52),
			Successes:  intPtr(13),
			Draws:      intPtr(5),
			// Target never passed.
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Error: invalid parameters")
		assert.Contains(t, out.String(), "must be set")
	})

	t.Run("Default label is applied", func(t *testing.T) {
		var out bytes.Buffer
		err := runCalc(&out, CalcOptions{
			Population: intPtr(10),
			Successes:  intPtr(5),
			Draws:      intPtr(4),
			Target:     intPtr(0),
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Hypergeometric Probability")
	})
}
