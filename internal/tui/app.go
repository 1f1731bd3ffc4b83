package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strum-player/strum/internal/browser"
	"github.com/strum-player/strum/internal/controller"
	"github.com/strum-player/strum/internal/core"
	"github.com/strum-player/strum/internal/tui/components"
	"github.com/strum-player/strum/internal/tui/styles"
	"github.com/strum-player/strum/internal/youtube"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelPlayer Panel = iota
	PanelQueue
	PanelLibrary
	PanelHistory
)

const searchDebounce = 300 * time.Millisecond
const searchTimeout = 10 * time.Second

// App holds the TUI application dependencies
type App struct {
	ctrl *controller.Controller
	yt   *youtube.Client
	sub  *controller.Subscription
}

// NewApp creates a new TUI application around an existing controller.
func NewApp(ctrl *controller.Controller, yt *youtube.Client) *App {
	return &App{
		ctrl: ctrl,
		yt:   yt,
		sub:  ctrl.Subscribe(),
	}
}

// Model is the main TUI model
type Model struct {
	app          *App
	width        int
	height       int
	focusedPanel Panel

	// Snapshots of the controller state; refreshed on every event
	state  core.PlaybackState
	liked  []core.Track
	recent []core.Track

	// Components
	playerBar   *components.PlayerBar
	queueView   *components.Queue
	libraryView *components.Library
	historyView *components.History

	// Overlays
	showHelp bool

	// Search state
	showSearch    bool
	searchInput   textinput.Model
	searchResults []youtube.Result
	searchCursor  int
	moodIndex     int // 0 = free search, 1..len(Moods) = mood tab
	searching     bool
	lastQuery     string
	searchErr     error

	// Error handling
	lastError   error
	errorExpiry time.Time

	quitting bool
}

// NewModel creates a new TUI model
func NewModel(app *App) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for music..."
	ti.CharLimit = 100
	ti.Width = 50

	return Model{
		app:         app,
		state:       app.ctrl.State(),
		playerBar:   components.NewPlayerBar(),
		queueView:   components.NewQueue(),
		libraryView: components.NewLibrary(),
		historyView: components.NewHistory(),
		searchInput: ti,
	}
}

// Messages
type stateEventMsg struct{}
type playerErrMsg controller.ErrorEvent
type subClosedMsg struct{}
type errMsg error

// Search messages
type searchDebounceMsg struct{ query string }
type searchResultsMsg struct {
	results []youtube.Result
	err     error
}

// waitEvent blocks on the subscription until the controller emits
// something, then re-arms itself from Update. All event kinds collapse
// into a snapshot refresh; errors carry their payload through.
func (m Model) waitEvent() tea.Cmd {
	sub := m.app.sub
	return func() tea.Msg {
		select {
		case <-sub.Done:
			return subClosedMsg{}
		case e := <-sub.Error:
			return playerErrMsg(e)
		case <-sub.StateChanged:
			return stateEventMsg{}
		case <-sub.TrackChanged:
			return stateEventMsg{}
		case <-sub.ProgressChanged:
			return stateEventMsg{}
		case <-sub.ModeChanged:
			return stateEventMsg{}
		case <-sub.VolumeChanged:
			return stateEventMsg{}
		case <-sub.LikeChanged:
			return stateEventMsg{}
		}
	}
}

// refresh pulls fresh snapshots from the controller.
func (m *Model) refresh() {
	m.state = m.app.ctrl.State()
	m.liked = m.app.ctrl.Liked()
	m.recent = m.app.ctrl.RecentlyPlayed()
	if time.Now().After(m.errorExpiry) {
		m.lastError = nil
	}
}

func (m Model) doSearch(query string) tea.Cmd {
	yt := m.app.yt
	return func() tea.Msg {
		if query == "" {
			return searchResultsMsg{results: nil}
		}

		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		results, err := yt.Search(ctx, query)
		return searchResultsMsg{results: results, err: err}
	}
}

func (m Model) openInBrowser() tea.Cmd {
	track := m.state.CurrentTrack
	if track == nil {
		return nil
	}
	url := track.WatchURL()
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg(err)
		}
		return nil
	}
}

// loadTrending pre-populates the search overlay with trending music so
// the first / press shows something to play. Failures (no API key yet,
// offline) are dropped silently.
func (m Model) loadTrending() tea.Cmd {
	yt := m.app.yt
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		results, err := yt.Trending(ctx)
		if err != nil {
			return searchResultsMsg{}
		}
		return searchResultsMsg{results: results}
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitEvent(), m.loadTrending())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateEventMsg:
		m.refresh()
		return m, m.waitEvent()

	case playerErrMsg:
		m.lastError = playbackError(controller.ErrorEvent(msg))
		m.errorExpiry = time.Now().Add(5 * time.Second)
		m.refresh()
		return m, m.waitEvent()

	case subClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case errMsg:
		m.lastError = msg
		m.errorExpiry = time.Now().Add(5 * time.Second)
		return m, nil

	case searchDebounceMsg:
		if msg.query == m.searchInput.Value() && msg.query != m.lastQuery {
			m.lastQuery = msg.query
			m.searching = true
			return m, m.doSearch(msg.query)
		}

	case searchResultsMsg:
		m.searching = false
		m.searchResults = msg.results
		m.searchErr = msg.err
		m.searchCursor = 0
		return m, nil
	}

	// Forward other messages to textinput when search is active
	if m.showSearch {
		var inputCmd tea.Cmd
		m.searchInput, inputCmd = m.searchInput.Update(msg)
		return m, inputCmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys (always work)
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	// Help overlay
	if m.showHelp {
		switch msg.String() {
		case "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	// Search overlay
	if m.showSearch {
		return m.handleSearchKeyPress(msg)
	}

	// Normal mode
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.showSearch = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.searchResults = nil
		m.searchCursor = 0
		m.moodIndex = 0
		m.lastQuery = ""
		m.searchErr = nil
		return m, textinput.Blink

	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % 4
		return m, nil

	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + 3) % 4
		return m, nil
	}

	// Playback controls
	switch msg.String() {
	case " ":
		m.app.ctrl.TogglePlayPause()
		return m, nil
	case "n":
		m.app.ctrl.PlayNext()
		return m, nil
	case "p":
		m.app.ctrl.PlayPrev()
		return m, nil
	case "s":
		m.app.ctrl.ToggleShuffle()
		return m, nil
	case "r":
		m.app.ctrl.ToggleRepeat()
		return m, nil
	case "m":
		m.app.ctrl.ToggleMute()
		return m, nil
	case "l":
		if m.state.HasTrack() {
			m.app.ctrl.ToggleLike(*m.state.CurrentTrack)
		}
		return m, nil
	case "o":
		return m, m.openInBrowser()
	case "+", "=":
		m.app.ctrl.ChangeVolume(clampVolume(m.state.Volume + 5))
		return m, nil
	case "-":
		m.app.ctrl.ChangeVolume(clampVolume(m.state.Volume - 5))
		return m, nil
	case "left":
		m.app.ctrl.SeekTo(clampPercent(m.state.Progress - 5))
		return m, nil
	case "right":
		m.app.ctrl.SeekTo(clampPercent(m.state.Progress + 5))
		return m, nil
	}

	// Panel-specific keys
	switch m.focusedPanel {
	case PanelQueue:
		switch msg.String() {
		case "j", "down":
			m.queueView.ScrollDown()
		case "k", "up":
			m.queueView.ScrollUp()
		}
	case PanelLibrary:
		switch msg.String() {
		case "j", "down":
			m.libraryView.SelectNext()
		case "k", "up":
			m.libraryView.SelectPrev()
		case "enter":
			m.playLikedSelection()
		}
	case PanelHistory:
		switch msg.String() {
		case "j", "down":
			m.historyView.SelectNext()
		case "k", "up":
			m.historyView.SelectPrev()
		case "enter":
			m.playHistorySelection()
		}
	}

	return m, nil
}

// playLikedSelection starts playback of the selected liked song, with the
// whole liked list as the play context.
func (m *Model) playLikedSelection() {
	selected := m.libraryView.Selected()
	if selected < 0 || selected >= len(m.liked) {
		return
	}
	m.app.ctrl.PlayTrack(m.liked[selected], m.liked)
}

// playHistorySelection replays the selected history entry, with the
// history as the play context.
func (m *Model) playHistorySelection() {
	selected := m.historyView.Selected()
	if selected < 0 || selected >= len(m.recent) {
		return
	}
	m.app.ctrl.PlayTrack(m.recent[selected], m.recent)
}

func (m Model) handleSearchKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.String() {
	case "esc":
		m.showSearch = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		if len(m.searchResults) > 0 && m.searchCursor < len(m.searchResults) {
			result := m.searchResults[m.searchCursor]
			m.showSearch = false
			m.searchInput.Blur()
			m.app.ctrl.PlayTrack(result.Track, resultTracks(m.searchResults))
		}
		return m, nil

	case "up", "ctrl+p":
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.searchCursor < len(m.searchResults)-1 {
			m.searchCursor++
		}
		return m, nil

	case "tab":
		// Cycle through mood tabs
		m.moodIndex = (m.moodIndex + 1) % (len(youtube.Moods) + 1)
		if q := m.activeQuery(); q != "" {
			m.searching = true
			return m, m.doSearch(q)
		}
		return m, nil

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
		return m, nil
	}

	// Handle text input
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	cmds = append(cmds, inputCmd)

	// Debounce search while typing on the free-search tab
	if m.moodIndex == 0 && m.searchInput.Value() != m.lastQuery {
		cmds = append(cmds, tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{query: m.searchInput.Value()}
		}))
	}

	return m, tea.Batch(cmds...)
}

// activeQuery returns the query for the current tab: the typed text on the
// free-search tab, the curated query on a mood tab.
func (m Model) activeQuery() string {
	if m.moodIndex == 0 {
		return m.searchInput.Value()
	}
	return youtube.Moods[m.moodIndex-1].Query
}

// playbackError turns a player error event into a displayable error.
func playbackError(e controller.ErrorEvent) error {
	if e.Track != nil {
		return fmt.Errorf("playback failed for %q (code %d)", e.Track.Title, e.Code)
	}
	return fmt.Errorf("playback failed (code %d)", e.Code)
}

func resultTracks(results []youtube.Result) []core.Track {
	tracks := make([]core.Track, len(results))
	for i, r := range results {
		tracks[i] = r.Track
	}
	return tracks
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	// Show overlays if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showSearch {
		return m.renderSearch()
	}

	// Main layout: two columns
	// Left: Now Playing (top), Queue (bottom)
	// Right: Liked Songs (top), Recently Played (bottom)

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	topHeight := m.height * 40 / 100
	bottomHeight := m.height - topHeight - 2

	currentID := ""
	liked := false
	if m.state.HasTrack() {
		currentID = m.state.CurrentTrack.VideoID
		liked = m.app.ctrl.IsLiked(currentID)
	}

	playerBar := m.playerBar.Render(&m.state, liked, leftWidth-2, topHeight-2, m.focusedPanel == PanelPlayer)
	queueView := m.queueView.Render(&m.state.Queue, leftWidth-2, bottomHeight-2, m.focusedPanel == PanelQueue)
	libraryView := m.libraryView.Render(m.liked, currentID, rightWidth-2, topHeight-2, m.focusedPanel == PanelLibrary)
	historyView := m.historyView.Render(m.recent, rightWidth-2, bottomHeight-2, m.focusedPanel == PanelHistory)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, playerBar, queueView)
	rightCol := lipgloss.JoinVertical(lipgloss.Left, libraryView, historyView)

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func (m Model) renderStatusBar() string {
	status := styles.Dim.Render("q:quit  ?:help  /:search  space:play/pause  n:next  p:prev  s:shuffle  r:repeat  l:like  +/-:volume")

	if m.lastError != nil {
		status = styles.Paused.Render("Error: " + m.lastError.Error())
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Strum - Keyboard Shortcuts"
	divider := styles.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  /            Search
  Tab          Next panel
  Shift+Tab    Previous panel

  Playback
  ────────
  Space        Play/Pause
  n            Next track
  p            Previous track
  s            Toggle shuffle
  r            Toggle repeat
  m            Toggle mute
  l            Like/unlike track
  o            Open in browser
  +/=          Volume up
  -            Volume down
  ←/→          Seek back/forward

  Queue Panel
  ───────────
  j/↓          Scroll down
  k/↑          Scroll up

  Liked Songs / Recently Played Panels
  ────────────────────────────────────
  j/↓          Select next
  k/↑          Select previous
  Enter        Play selected

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

func (m Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.Highlight.Render("Search"))
	b.WriteString("\n\n")

	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	// Mood tabs
	tabs := []string{"Search"}
	for _, mood := range youtube.Moods {
		tabs = append(tabs, mood.Emoji+" "+mood.Name)
	}
	activeTabStyle := lipgloss.NewStyle().Padding(0, 1).Background(styles.Primary).Foreground(styles.Surface)
	tabStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(styles.TextMuted)
	for i, tab := range tabs {
		if i == m.moodIndex {
			b.WriteString(activeTabStyle.Render(tab))
		} else {
			b.WriteString(tabStyle.Render(tab))
		}
	}
	b.WriteString("\n\n")

	// Results
	if m.searchErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Error).Render("Error: " + m.searchErr.Error()))
	} else if m.searching {
		b.WriteString(styles.Muted.Render("Searching..."))
	} else if len(m.searchResults) == 0 && m.activeQuery() != "" && m.lastQuery != "" {
		b.WriteString(styles.Muted.Render("No results found"))
	} else {
		maxResults := 10
		for i, result := range m.searchResults {
			if i >= maxResults {
				b.WriteString(styles.Muted.Render("  ...and more"))
				break
			}

			line := result.Track.Title
			meta := result.Track.ChannelTitle
			if result.Track.Duration != "" {
				meta += " · " + result.Track.Duration
			}
			line += " " + styles.Muted.Render("("+meta+")")

			if i == m.searchCursor {
				b.WriteString(styles.Highlight.Render("▸ ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	// Help
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Tab:moods  ↑/↓:nav  Enter:play  Esc:close"))

	content := lipgloss.NewStyle().
		Width(64).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.FocusedBorder.Render(content))
}

// Run starts the TUI application and blocks until it exits. The controller
// subscription is released on exit; the controller itself belongs to the
// caller.
func Run(ctrl *controller.Controller, yt *youtube.Client, theme string) error {
	styles.SetTheme(theme)

	app := NewApp(ctrl, yt)
	defer ctrl.Unsubscribe(app.sub)

	model := NewModel(app)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
