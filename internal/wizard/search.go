package wizard

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/youtube"
)

// SearchFunc is a function that performs a search.
type SearchFunc func(query string) ([]youtube.Result, error)

// SearchModel is the bubbletea model for the search wizard. Besides free
// typing, the mood tabs trigger curated searches.
type SearchModel struct {
	input      textinput.Model
	results    []youtube.Result
	cursor     int
	moodIndex  int // 0 = free search, 1..len(Moods) = mood tab
	searchFunc SearchFunc
	selected   *youtube.Result
	err        error
	debounce   time.Duration
	lastQuery  string
	searching  bool
	width      int
	height     int
}

// Styles
var (
	searchTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	searchTabStyle = lipgloss.NewStyle().
			Padding(0, 2)

	searchActiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Background(lipgloss.Color("205")).
				Foreground(lipgloss.Color("0"))

	searchResultStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	searchSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color("237"))

	searchSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// NewSearchModel creates a new search wizard model.
func NewSearchModel(searchFunc SearchFunc) SearchModel {
	ti := textinput.New()
	ti.Placeholder = "Search for music..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return SearchModel{
		input:      ti,
		searchFunc: searchFunc,
		debounce:   300 * time.Millisecond,
		width:      80,
		height:     20,
	}
}

// Init initializes the model.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// debounceMsg is sent after the debounce period.
type debounceMsg struct {
	query string
}

// searchResultsMsg contains search results.
type searchResultsMsg struct {
	results []youtube.Result
	err     error
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			if len(m.results) > 0 && m.cursor < len(m.results) {
				m.selected = &m.results[m.cursor]
				return m, tea.Quit
			}

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}

		case "tab":
			// Cycle through mood tabs
			m.moodIndex = (m.moodIndex + 1) % (len(youtube.Moods) + 1)
			if q := m.activeQuery(); q != "" {
				m.searching = true
				return m, m.doSearch(q)
			}

		case "shift+tab":
			if m.moodIndex == 0 {
				m.moodIndex = len(youtube.Moods)
			} else {
				m.moodIndex--
			}
			if q := m.activeQuery(); q != "" {
				m.searching = true
				return m, m.doSearch(q)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4

	case debounceMsg:
		if m.moodIndex == 0 && msg.query == m.input.Value() && msg.query != m.lastQuery {
			m.lastQuery = msg.query
			m.searching = true
			return m, m.doSearch(msg.query)
		}

	case searchResultsMsg:
		m.searching = false
		m.results = msg.results
		m.err = msg.err
		m.cursor = 0
	}

	// Handle text input
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	// Debounce search while typing
	if m.moodIndex == 0 && m.input.Value() != m.lastQuery {
		cmds = append(cmds, tea.Tick(m.debounce, func(time.Time) tea.Msg {
			return debounceMsg{query: m.input.Value()}
		}))
	}

	return m, tea.Batch(cmds...)
}

// activeQuery returns the query for the current tab: the typed text on
// the free-search tab, the curated query on a mood tab.
func (m SearchModel) activeQuery() string {
	if m.moodIndex == 0 {
		return m.input.Value()
	}
	return youtube.Moods[m.moodIndex-1].Query
}

// doSearch performs the search.
func (m SearchModel) doSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if query == "" {
			return searchResultsMsg{results: nil}
		}
		results, err := m.searchFunc(query)
		return searchResultsMsg{results: results, err: err}
	}
}

// View renders the model.
func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(searchTitleStyle.Render("🔍 Search"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	// Mood tabs
	tabs := []string{"Search"}
	for _, mood := range youtube.Moods {
		tabs = append(tabs, mood.Emoji+" "+mood.Name)
	}
	for i, tab := range tabs {
		if i == m.moodIndex {
			b.WriteString(searchActiveTabStyle.Render(tab))
		} else {
			b.WriteString(searchTabStyle.Render(tab))
		}
	}
	b.WriteString("\n\n")

	// Results
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Error: " + m.err.Error()))
	} else if m.searching {
		b.WriteString("Searching...")
	} else if len(m.results) == 0 && m.activeQuery() != "" {
		b.WriteString("No results found")
	} else {
		maxResults := m.height - 10
		if maxResults < 5 {
			maxResults = 5
		}
		for i, result := range m.results {
			if i >= maxResults {
				b.WriteString(searchSubtitleStyle.Render("  ...and more"))
				break
			}

			line := result.Track.Title
			line += " " + searchSubtitleStyle.Render(formatResultMeta(result))

			if i == m.cursor {
				b.WriteString(searchSelectedStyle.Render("▸ " + line))
			} else {
				b.WriteString(searchResultStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	// Help
	b.WriteString("\n")
	b.WriteString(searchSubtitleStyle.Render("↑/↓ navigate • tab moods • enter select • esc quit"))

	return b.String()
}

// Selected returns the selected result, or nil if none.
func (m SearchModel) Selected() *youtube.Result {
	return m.selected
}

// RunSearch runs the search wizard and returns the selected result.
func RunSearch(searchFunc SearchFunc) (*youtube.Result, error) {
	model := NewSearchModel(searchFunc)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalModel.(SearchModel).Selected(), nil
}
