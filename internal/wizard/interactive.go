package wizard

import (
	"os"

	"golang.org/x/term"

	"github.com/strum-player/strum/internal/youtube"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled    bool
	searchFunc SearchFunc
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled: true,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// SetSearchFunc sets the search function for the search wizard.
func (i *Interactive) SetSearchFunc(fn SearchFunc) {
	i.searchFunc = fn
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && IsTerminal()
}

// PromptSearch launches the search wizard if interactive mode is available.
// Returns the selected result, or nil if cancelled or not interactive.
func (i *Interactive) PromptSearch() (*youtube.Result, error) {
	if !i.CanInteract() || i.searchFunc == nil {
		return nil, nil
	}
	return RunSearch(i.searchFunc)
}

// NeedsTrack returns true if a track argument is required but missing.
func NeedsTrack(args []string) bool {
	return len(args) == 0
}
