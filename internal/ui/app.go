package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sentinelhq/sentinel/internal/mockdata"
	"github.com/sentinelhq/sentinel/internal/prefs"
	"github.com/sentinelhq/sentinel/internal/state"
	"github.com/sentinelhq/sentinel/internal/viewstate"
)

// pane identifies which part of the dashboard receives cursor keys.
type pane int

const (
	paneSidebar pane = iota
	paneServices
)

const defaultRefreshTick = 500 * time.Millisecond

var radarSpinner = spinner.Spinner{
	Frames: []string{"◴", "◷", "◶", "◵"},
	FPS:    time.Second / 6,
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Series      []mockdata.PerformanceSample
	Services    []mockdata.Service
	RefreshTick time.Duration
	ThemeName   string
	PrefsPath   string
	Logger      *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store       *state.Store
	logger      *slog.Logger
	prefsPath   string
	refreshTick time.Duration

	// Components
	theme   Theme
	keys    keyMap
	help    help.Model
	radar   spinner.Model
	loadBar progress.Model

	// View state
	view          viewstate.Controller
	modal         Modal
	showHelp      bool
	focus         pane
	navCursor     int
	serviceCursor int
	width         int
	height        int
	ready         bool

	// Data
	snapshot state.Snapshot
	series   []mockdata.PerformanceSample
	services []mockdata.Service
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	refreshTick := opts.RefreshTick
	if refreshTick <= 0 {
		refreshTick = defaultRefreshTick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	series := opts.Series
	if series == nil {
		series = mockdata.NewSeries(0, mockdata.DefaultDays)
	}
	services := opts.Services
	if services == nil {
		services = mockdata.Services()
	}

	m := Model{
		store:       opts.Store,
		logger:      logger,
		prefsPath:   prefsPath,
		refreshTick: refreshTick,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		radar:       spinner.New(spinner.WithSpinner(radarSpinner)),
		loadBar:     progress.New(progress.WithSolidFill("#7c3aed"), progress.WithoutPercentage()),
		view:        viewstate.New(),
		series:      series,
		services:    services,
	}
	m.applyTheme(opts.ThemeName)
	return m
}

// applyTheme switches palettes and restyles the bubbles components.
func (m *Model) applyTheme(name string) {
	m.theme = GetTheme(name)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	m.radar.Style = styles.AccentText.Bold(true)
	m.loadBar.EmptyColor = m.theme.Border

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.refreshTick),
		m.radar.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.radar, cmd = m.radar.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < minWidth || m.height < minHeight {
		return m.renderResizeHint()
	}
	if m.modal != nil && m.view.ModalVisible() {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The dialog owns the keyboard while it is open.
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.closeModal()
			return m, cmd
		}
		m.modal = modal
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		// Two panes, so both directions toggle.
		if m.focus == paneSidebar {
			m.focus = paneServices
		} else {
			m.focus = paneSidebar
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Open):
		if m.focus == paneSidebar {
			m.openTab(m.navCursor)
		} else {
			m.openService(m.serviceCursor)
		}

	case key.Matches(msg, m.keys.Jump):
		m.openTab(int(msg.String()[0] - '1'))
	}

	return m, nil
}

// moveCursor moves the cursor of the focused pane. Service cards form a
// two-column grid.
func (m *Model) moveCursor(dRow, dCol int) {
	if m.focus == paneSidebar {
		m.navCursor = clamp(m.navCursor+dRow, 0, len(viewstate.Tabs())-1)
		return
	}
	n := len(m.services)
	if n == 0 {
		return
	}
	next := m.serviceCursor + dRow*2
	if dCol != 0 {
		col := m.serviceCursor%2 + dCol
		if col < 0 || col > 1 {
			return
		}
		next = m.serviceCursor + dCol
	}
	if next >= 0 && next < n {
		m.serviceCursor = next
	}
}

func (m *Model) openTab(i int) {
	tabs := viewstate.Tabs()
	if i < 0 || i >= len(tabs) {
		return
	}
	m.focus = paneSidebar
	m.navCursor = i
	m.openModal(string(tabs[i].ID), tabs[i].Label)
}

func (m *Model) openService(i int) {
	if i < 0 || i >= len(m.services) {
		return
	}
	name := m.services[i].Name
	m.openModal(name, name)
}

func (m *Model) openModal(id, label string) {
	m.view.Navigate(id)
	m.modal = restrictedModal{trigger: label}
	m.logger.Info("restricted access requested", "trigger", id)
}

func (m *Model) closeModal() {
	m.view.CloseModal()
	m.modal = nil
	m.logger.Info("restricted access dismissed", "trigger", m.view.Trigger())
}

func (m *Model) cycleTheme() {
	m.applyTheme(NextTheme(m.theme.Name))
	m.logger.Info("theme changed", "theme", m.theme.Name)
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// handleTick polls the store and schedules the next refresh.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.refreshTick))
	return m, tea.Batch(cmds...)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// opts.Context stops the program without reporting an error.
func Run(opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(New(opts), programOpts...)
	_, err := p.Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
