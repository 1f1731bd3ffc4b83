package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui/styles"
)

// Library displays the liked songs collection
type Library struct {
	selected int
}

// NewLibrary creates a new Library component
func NewLibrary() *Library {
	return &Library{selected: 0}
}

// SelectNext selects the next liked track
func (l *Library) SelectNext() {
	l.selected++
}

// SelectPrev selects the previous liked track
func (l *Library) SelectPrev() {
	if l.selected > 0 {
		l.selected--
	}
}

// Selected returns the selected track index
func (l *Library) Selected() int {
	return l.selected
}

// Render renders the liked songs panel
func (l *Library) Render(tracks []core.Track, currentID string, width, height int, focused bool) string {
	title := styles.PanelTitle("Liked Songs", focused)

	var content string
	if len(tracks) == 0 {
		content = styles.Muted.Render("No liked songs — press l to like")
	} else {
		content = l.renderTracks(tracks, currentID, width-4, height-4, focused)
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

func (l *Library) renderTracks(tracks []core.Track, currentID string, width, maxLines int, focused bool) string {
	if l.selected >= len(tracks) {
		l.selected = len(tracks) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}

	lines := make([]string, 0, len(tracks))

	for i, track := range tracks {
		selector := "  "
		if focused && i == l.selected {
			selector = "▸ "
		}

		playing := ""
		if currentID != "" && track.VideoID == currentID {
			playing = styles.Playing.Render(" ●")
		}

		title, channel := fitTitleChannel(track.Title, track.ChannelTitle, width-9)
		name := fmt.Sprintf("%s — %s", title, styles.Muted.Render(channel))
		if focused && i == l.selected {
			name = styles.Highlight.Render(title) + " — " + styles.Muted.Render(channel)
		}

		line := fmt.Sprintf("%s%s %s%s", selector, styles.Highlight.Render("♥"), name, playing)
		lines = append(lines, line)

		if len(lines) >= maxLines {
			break
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
