package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui/styles"
)

// History displays recently played tracks, most recent first
type History struct {
	selected int
}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{selected: 0}
}

// SelectNext selects the next history entry
func (h *History) SelectNext() {
	h.selected++
}

// SelectPrev selects the previous history entry
func (h *History) SelectPrev() {
	if h.selected > 0 {
		h.selected--
	}
}

// Selected returns the selected entry index
func (h *History) Selected() int {
	return h.selected
}

// Render renders the history panel
func (h *History) Render(tracks []core.Track, width, height int, focused bool) string {
	title := styles.PanelTitle("Recently Played", focused)

	var content string
	if len(tracks) == 0 {
		content = styles.Muted.Render("No history yet")
	} else {
		content = h.renderHistory(tracks, width-4, height-4, focused)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(tracks []core.Track, width, maxLines int, focused bool) string {
	if h.selected >= len(tracks) {
		h.selected = len(tracks) - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}

	lines := make([]string, 0, maxLines)

	// Fixed overhead: selector (2) + icon (2) + " — " (3) + duration column (8)
	const overhead = 15

	for i, track := range tracks {
		if i >= maxLines {
			break
		}

		selector := "  "
		if focused && i == h.selected {
			selector = "▸ "
		}

		duration := track.Duration
		durWidth := len(duration)

		title, channel := fitTitleChannel(track.Title, track.ChannelTitle, width-overhead-durWidth)

		trackInfo := fmt.Sprintf("%s — %s", title, channel)
		if focused && i == h.selected {
			trackInfo = styles.Highlight.Render(title) + " — " + channel
		}
		trackInfoLen := len(title) + 3 + len(channel)

		// Right-align the duration column
		padding := width - 4 - trackInfoLen - durWidth
		if padding < 1 {
			padding = 1
		}

		line := fmt.Sprintf("%s%s %s%s%s",
			selector,
			styles.Dim.Render("♪"),
			trackInfo,
			lipgloss.NewStyle().Width(padding).Render(""),
			styles.Dim.Render(duration))

		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
