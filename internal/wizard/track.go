package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/strum-player/strum/internal/youtube"
)

// TrackModel is the bubbletea model for the track picker.
type TrackModel struct {
	results  []youtube.Result
	cursor   int
	selected *youtube.Result
	width    int
	height   int
}

// Styles for track picker
var (
	trackTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	trackItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	trackSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	trackMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// NewTrackModel creates a new track picker model.
func NewTrackModel(results []youtube.Result) TrackModel {
	return TrackModel{
		results: results,
		width:   80,
		height:  20,
	}
}

// Init initializes the model.
func (m TrackModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TrackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit

		case "enter", " ":
			if len(m.results) > 0 && m.cursor < len(m.results) {
				m.selected = &m.results[m.cursor]
				return m, tea.Quit
			}

		case "up", "k", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}

		case "home", "g":
			m.cursor = 0

		case "end", "G":
			m.cursor = len(m.results) - 1
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the model.
func (m TrackModel) View() string {
	var b strings.Builder

	b.WriteString(trackTitleStyle.Render("🎵 Select Track"))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(trackMetaStyle.Render("No tracks found"))
	} else {
		for i, result := range m.results {
			var line strings.Builder
			line.WriteString(result.Track.Title)

			meta := " " + trackMetaStyle.Render(formatResultMeta(result))
			line.WriteString(meta)

			if i == m.cursor {
				b.WriteString(trackSelectedStyle.Render("▸ " + line.String()))
			} else {
				b.WriteString(trackItemStyle.Render("  " + line.String()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(trackMetaStyle.Render("↑/↓ navigate • enter select • esc quit"))

	return b.String()
}

// formatResultMeta builds the channel/duration/views suffix for a result.
func formatResultMeta(r youtube.Result) string {
	parts := []string{r.Track.ChannelTitle}
	if r.Track.Duration != "" {
		parts = append(parts, r.Track.Duration)
	}
	if r.ViewCount > 0 {
		parts = append(parts, humanize.SIWithDigits(float64(r.ViewCount), 1, "")+" views")
	}
	return "(" + strings.Join(parts, " · ") + ")"
}

// Selected returns the selected result, or nil if none.
func (m TrackModel) Selected() *youtube.Result {
	return m.selected
}

// RunTrackPicker runs the track picker and returns the selected result.
func RunTrackPicker(results []youtube.Result) (*youtube.Result, error) {
	model := NewTrackModel(results)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(TrackModel).Selected(), nil
}
