package outwriter

import (
	"os"

	"github.com/huangsam/babynames/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for names in table output
// based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Female + Male + Total + Entropy + Label with borders/padding
	baseWidth := 60

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 40 {
		// Names are never that long; keep the table compact
		return 40
	}
	return available
}
