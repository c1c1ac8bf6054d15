package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/drawodds/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the report on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// isInteractive reports whether stdin is attached to a terminal. Banners and
// prompt decoration are suppressed when input is piped.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
