package cli

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newVerboseLogger returns a debug-level slog.Logger that writes
// human-readable lines to w.
func newVerboseLogger(w io.Writer) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.DebugLevel,
		Prefix:          "flaskforge",
		ReportTimestamp: true,
	})
	return slog.New(handler)
}
