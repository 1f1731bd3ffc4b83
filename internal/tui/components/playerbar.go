package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui/styles"
)

// PlayerBar displays the currently playing track with transport state.
type PlayerBar struct{}

// NewPlayerBar creates a new PlayerBar component
func NewPlayerBar() *PlayerBar {
	return &PlayerBar{}
}

// Render renders the player panel
func (p *PlayerBar) Render(state *core.PlaybackState, liked bool, width, height int, focused bool) string {
	title := styles.PanelTitle("Now Playing", focused)

	var content string
	if !state.HasTrack() {
		content = styles.Muted.Render("Nothing playing — press / to search")
	} else {
		content = p.renderTrack(state, liked, width-4)
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

func (p *PlayerBar) renderTrack(state *core.PlaybackState, liked bool, width int) string {
	track := state.CurrentTrack

	icon := styles.StatusIcon(state.IsPlaying)
	titleStyle := styles.Title.Width(width - 4)
	heart := ""
	if liked {
		heart = " " + styles.Highlight.Render("♥")
	}
	title := titleStyle.Render(track.Title) + heart

	channel := styles.Subtitle.Render(track.ChannelTitle)

	// Progress bar with times on either side
	progressWidth := width - 14
	if progressWidth < 10 {
		progressWidth = 10
	}
	progressBar := styles.ProgressBar(state.Progress, progressWidth)
	currentTime := formatSeconds(state.CurrentTime)
	totalTime := formatSeconds(state.Duration)
	progress := fmt.Sprintf("%s %s %s", currentTime, progressBar, totalTime)

	// Volume and mode indicators
	volumeIcon := "🔊"
	if state.IsMuted {
		volumeIcon = "🔇"
	}
	status := styles.Muted.Render(fmt.Sprintf("%s %d%%", volumeIcon, state.Volume)) +
		"  " + styles.ModeIcons(state.IsShuffle, state.IsRepeat, state.IsMuted)

	controls := p.renderControls(state)

	return lipgloss.JoinVertical(lipgloss.Left,
		icon+" "+title,
		"  "+channel,
		"",
		progress,
		"",
		status,
		controls,
	)
}

func (p *PlayerBar) renderControls(state *core.PlaybackState) string {
	var controls string

	controls += styles.Dim.Render("⏮ ")

	if state.IsPlaying {
		controls += styles.Playing.Render("⏸")
	} else {
		controls += styles.Paused.Render("▶")
	}

	controls += styles.Dim.Render(" ⏭")

	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(controls)
}

func formatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	m := total / 60
	s := total % 60
	if m >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", m/60, m%60, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
