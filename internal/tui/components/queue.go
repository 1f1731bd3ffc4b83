package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui/styles"
)

// Queue displays the active play context
type Queue struct {
	offset int
}

// NewQueue creates a new Queue component
func NewQueue() *Queue {
	return &Queue{offset: 0}
}

// ScrollDown scrolls the queue down
func (q *Queue) ScrollDown() {
	q.offset++
}

// ScrollUp scrolls the queue up
func (q *Queue) ScrollUp() {
	if q.offset > 0 {
		q.offset--
	}
}

// Render renders the queue panel
func (q *Queue) Render(queue *core.Queue, width, height int, focused bool) string {
	title := styles.PanelTitle("Queue", focused)

	var content string
	if queue == nil || queue.IsEmpty() {
		content = styles.Muted.Render("Queue is empty")
	} else {
		content = q.renderQueue(queue, width-4, height-4)
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

func (q *Queue) renderQueue(queue *core.Queue, width, maxLines int) string {
	tracks := queue.Tracks

	if q.offset >= len(tracks) {
		q.offset = 0
	}

	visibleCount := maxLines - 1 // leave room for the "more" indicator
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := q.offset
	end := start + visibleCount
	if end > len(tracks) {
		end = len(tracks)
	}

	lines := make([]string, 0, end-start+1)

	// Fixed overhead: "XX. " (4) + "▶ " or "  " (2) + " — " (3)
	const overhead = 9

	for i := start; i < end; i++ {
		track := tracks[i]

		num := fmt.Sprintf("%2d.", i+1)

		available := width - overhead
		title, channel := fitTitleChannel(track.Title, track.ChannelTitle, available)

		var line string
		if i == queue.CurrentIndex {
			line = styles.Playing.Render(fmt.Sprintf("%s ▶ %s — %s", num, title, channel))
		} else {
			line = fmt.Sprintf("%s   %s — %s",
				styles.Dim.Render(num),
				title,
				styles.Muted.Render(channel))
		}

		lines = append(lines, line)
	}

	if end < len(tracks) {
		more := styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(tracks)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// fitTitleChannel truncates a title/channel pair into the available width,
// giving the channel at least a third of the space when both cannot fit.
func fitTitleChannel(title, channel string, available int) (string, string) {
	if len(title)+len(channel) <= available {
		return title, channel
	}

	minChannel := available / 3
	if minChannel < 10 {
		minChannel = 10
	}
	if minChannel > available-10 {
		minChannel = available - 10
	}

	channelSpace := minChannel
	if len(channel) < channelSpace {
		channelSpace = len(channel)
	}
	titleSpace := available - channelSpace

	return truncate(title, titleSpace), truncate(channel, channelSpace)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
