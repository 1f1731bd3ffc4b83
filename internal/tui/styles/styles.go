package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Colors - catppuccin mocha by default, switchable with SetTheme.
var (
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Surface   lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextDim   lipgloss.Color
)

// Text styles
var (
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
)

// Border styles
var (
	BorderStyle   lipgloss.Style
	FocusedBorder lipgloss.Style
)

func init() {
	SetTheme("mocha")
}

// SetTheme switches the palette to the named catppuccin flavor.
// Unknown names fall back to mocha.
func SetTheme(name string) {
	var flavor catppuccin.Flavor
	switch name {
	case "latte":
		flavor = catppuccin.Latte
	case "frappe":
		flavor = catppuccin.Frappe
	case "macchiato":
		flavor = catppuccin.Macchiato
	default:
		flavor = catppuccin.Mocha
	}

	Primary = lipgloss.Color(flavor.Mauve().Hex)
	Secondary = lipgloss.Color(flavor.Green().Hex)
	Accent = lipgloss.Color(flavor.Peach().Hex)

	Success = lipgloss.Color(flavor.Green().Hex)
	Warning = lipgloss.Color(flavor.Yellow().Hex)
	Error = lipgloss.Color(flavor.Red().Hex)

	Surface = lipgloss.Color(flavor.Surface0().Hex)
	Border = lipgloss.Color(flavor.Surface2().Hex)
	Text = lipgloss.Color(flavor.Text().Hex)
	TextMuted = lipgloss.Color(flavor.Subtext0().Hex)
	TextDim = lipgloss.Color(flavor.Overlay0().Hex)

	Title = lipgloss.NewStyle().Bold(true).Foreground(Text)
	Subtitle = lipgloss.NewStyle().Foreground(TextMuted)
	Label = lipgloss.NewStyle().Foreground(TextDim)
	Highlight = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Dim = lipgloss.NewStyle().Foreground(TextDim)
	Playing = lipgloss.NewStyle().Foreground(Success)
	Paused = lipgloss.NewStyle().Foreground(Warning)

	BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
	FocusedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)
}

// Panel creates a styled panel with optional focus
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Label
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// ProgressBar creates a progress bar string
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	filledStyle := lipgloss.NewStyle().Foreground(Primary)
	emptyStyle := lipgloss.NewStyle().Foreground(Border)

	return filledStyle.Render(Repeat("━", filled)) +
		emptyStyle.Render(Repeat("─", width-filled))
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}

// ModeIcons renders the shuffle/repeat/mute indicator cluster.
func ModeIcons(shuffle, repeat, muted bool) string {
	icon := func(active bool, symbol string) string {
		if active {
			return Highlight.Render(symbol)
		}
		return Dim.Render(symbol)
	}
	return icon(shuffle, "🔀") + " " + icon(repeat, "🔁") + " " + icon(muted, "🔇")
}

// Repeat repeats a string n times
func Repeat(s string, n int) string {
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
