package outwriter

import (
	"os"

	"github.com/huangsam/folio/internal/contract"
	"golang.org/x/term"
)

// Column width bounds for free-text cells.
const (
	minTextWidth = 15
	maxTextWidth = 70
)

// GetMaxTextWidth calculates the maximum width of a free-text column in table output
// given the width already taken by the fixed columns.
func GetMaxTextWidth(cfg *contract.Config, fixedWidth int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders, separators, and padding
	available := termWidth - fixedWidth - 20
	return max(minTextWidth, min(available, maxTextWidth))
}
