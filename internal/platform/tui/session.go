package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenScores
)

// SessionModel manages the full session flow: level menu -> play -> menu,
// with the best-times table one key away. It is the top-level model for
// both local and SSH play.
type SessionModel struct {
	levels   []levels.Level
	store    *storage.Store
	player   string
	logger   *log.Logger
	recorder Recorder
	width    int
	height   int
	screen   sessionScreen
	menu     LevelMenuModel
	play     *PlayModel
	scores   ScoresModel
	levelIdx int
	quitting bool
}

// NewSessionModel creates a new session model that opens on the level menu.
func NewSessionModel(lvls []levels.Level, store *storage.Store, player string, logger *log.Logger, width, height int) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		levels:   lvls,
		store:    store,
		player:   player,
		logger:   logger,
		recorder: nopRecorder{},
		width:    width,
		height:   height,
		menu:     NewLevelMenuModel(lvls, store, player, width, height),
	}
}

// WithRecorder returns a copy of the session that reports gameplay to r.
func (m SessionModel) WithRecorder(r Recorder) SessionModel {
	if r != nil {
		m.recorder = r
	}
	return m
}

// StartAt returns a session that opens directly on the level with id.
func (m SessionModel) StartAt(id string) (SessionModel, error) {
	for i, lvl := range m.levels {
		if lvl.ID == id {
			if err := m.startLevel(i); err != nil {
				return m, err
			}
			return m, nil
		}
	}
	return m, fmt.Errorf("%w: %s", levels.ErrNotFound, id)
}

// startLevel switches to the play screen for levels[idx].
func (m *SessionModel) startLevel(idx int) error {
	play, err := NewPlayModel(m.levels[idx], m.store, m.player, m.width, m.height)
	if err != nil {
		return err
	}
	play = play.WithLogger(m.logger).WithRecorder(m.recorder)
	m.play = &play
	m.levelIdx = idx
	m.screen = screenPlay
	m.logger.Debug("level started", "level", m.levels[idx].ID, "player", m.player)
	return nil
}

// toMenu rebuilds the menu so solve marks are current.
func (m *SessionModel) toMenu() {
	m.menu = NewLevelMenuModel(m.levels, m.store, m.player, m.width, m.height)
	m.menu.cursor = min(m.levelIdx, max(len(m.levels)-1, 0))
	m.menu.updateScroll()
	m.play = nil
	m.screen = screenMenu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenPlay && m.play != nil {
		return m.play.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		if m.play != nil {
			return m.updatePlay(msg)
		}
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(LevelMenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScores() {
		m.scores = NewScoresModel(m.levels, m.store, m.player, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if idx := m.menu.SelectedIndex(); idx >= 0 {
		if err := m.startLevel(idx); err != nil {
			// Loader-validated levels should never get here
			m.logger.Warn("cannot start level", "level", m.levels[idx].ID, "error", err)
			m.toMenu()
			return m, nil
		}
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when on the play screen.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.WantsNext() {
		next := m.levelIdx + 1
		if next < len(m.levels) {
			if err := m.startLevel(next); err == nil {
				return m, m.play.Init()
			}
		}
		m.levelIdx = next
		m.toMenu()
		return m, nil
	}

	if m.play.BackToMenu() {
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates on the best-times screen.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scoresModel, ok := newScores.(ScoresModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, nil
	}

	if m.scores.WantsPlay() {
		lvl, _ := m.scores.CurrentLevel()
		next, err := m.StartAt(lvl.ID)
		if err != nil {
			m.logger.Warn("cannot start level", "level", lvl.ID, "error", err)
			m.toMenu()
			return m, nil
		}
		return next, next.play.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		if m.play != nil {
			return m.play.View()
		}
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// Options configures a local terminal session.
type Options struct {
	Levels     []levels.Level
	Store      *storage.Store
	Player     string
	Logger     *log.Logger
	Width      int
	Height     int
	StartLevel string // Open this level directly instead of the menu
}

// Run starts a local session in the alternate screen and blocks until the
// player quits.
func Run(opts Options) error {
	model := NewSessionModel(opts.Levels, opts.Store, opts.Player, opts.Logger, opts.Width, opts.Height)
	if opts.StartLevel != "" {
		var err error
		if model, err = model.StartAt(opts.StartLevel); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
