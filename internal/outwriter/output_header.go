package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/babynames/internal/contract"
	"github.com/huangsam/babynames/schema"
)

// LogLoadHeader prints a concise, 2-line header after a source is loaded.
func LogLoadHeader(w io.Writer, cfg *contract.Config, stats schema.LoadStats) {
	// Line 1: where the records came from
	_, _ = fmt.Fprintf(w, "%s %s (%s): %d records from %d files\n",
		headerPrefix("📂", "Source:", cfg), stats.Location, stats.Backend, stats.Records, stats.FilesRead)

	// Line 2: only when something was dropped
	if stats.LinesSkipped > 0 || stats.FilesSkipped > 0 {
		_, _ = fmt.Fprintf(w, "%s %d malformed lines, %d non-data files\n",
			headerPrefix("⚠️ ", "Skipped:", cfg), stats.LinesSkipped, stats.FilesSkipped)
	}
}

func headerPrefix(emoji, label string, cfg *contract.Config) string {
	if cfg.UseEmojis {
		return emoji + " " + label
	}
	return label
}
