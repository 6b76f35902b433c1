package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/logging"
	"github.com/vovakirdan/flow3d/internal/puzzle"
	"github.com/vovakirdan/flow3d/internal/storage"
)

// PlayModel is the Bubble Tea model for solving one level.
// It shows one z-layer at a time with a miniature of every layer beside it.
type PlayModel struct {
	level     levels.Level
	puzzle    *puzzle.Puzzle
	drag      puzzle.Drag
	cursor    puzzle.Coord
	store     *storage.Store
	player    string
	logger    *log.Logger
	recorder  Recorder
	keyMapper *KeyMapper
	theme     Theme
	now       func() time.Time
	clock     int64

	width   int
	height  int
	moves   int // Commits made so far
	started time.Time
	elapsed time.Duration
	message string

	solved     bool
	quitting   bool
	backToMenu bool
	next       bool
}

// NewPlayModel creates a play screen for the level. Each model owns its
// own puzzle, so concurrent sessions never share state.
func NewPlayModel(level levels.Level, store *storage.Store, player string, width, height int) (PlayModel, error) {
	p, err := level.NewPuzzle()
	if err != nil {
		return PlayModel{}, fmt.Errorf("level %s: %w", level.ID, err)
	}

	var cursor puzzle.Coord
	if pairs := p.Pairs(); len(pairs) > 0 {
		cursor = pairs[0].A
	}

	m := PlayModel{
		level:     level,
		puzzle:    p,
		cursor:    cursor,
		store:     store,
		player:    player,
		logger:    logging.Discard(),
		recorder:  nopRecorder{},
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
		now:       time.Now,
		clock:     nextClock(),
		width:     width,
		height:    height,
	}
	m.started = m.now()
	return m, nil
}

// WithLogger returns a copy of the model that logs commits and solves.
func (m PlayModel) WithLogger(logger *log.Logger) PlayModel {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithRecorder returns a copy of the model that reports commits and solves to r.
func (m PlayModel) WithRecorder(r Recorder) PlayModel {
	if r != nil {
		m.recorder = r
	}
	return m
}

// Init starts the play clock.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.clock, 1)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if msg.Clock != m.clock || m.quitting || m.backToMenu || m.next {
			return m, nil
		}
		if !m.solved {
			m.elapsed = m.now().Sub(m.started)
		}
		return m, tickCmd(m.clock, 1)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.solved {
		switch action {
		case PlayActionNext:
			m.next = true
		case PlayActionRestart:
			m.restart()
		case PlayActionBack, PlayActionCancel:
			m.backToMenu = true
		}
		return m, nil
	}

	switch action {
	case PlayActionLeft:
		m.move(-1, 0, 0)
	case PlayActionRight:
		m.move(1, 0, 0)
	case PlayActionUp:
		m.move(0, -1, 0)
	case PlayActionDown:
		m.move(0, 1, 0)
	case PlayActionLayerUp:
		m.move(0, 0, -1)
	case PlayActionLayerDown:
		m.move(0, 0, 1)

	case PlayActionGrab:
		if m.drag.Active() {
			m.commit()
		} else {
			m.grab()
		}

	case PlayActionCancel:
		if m.drag.Active() {
			m.drag.Reset()
			m.message = "drag cancelled"
		} else {
			m.backToMenu = true
		}

	case PlayActionClear:
		m.clear()

	case PlayActionRestart:
		m.restart()

	case PlayActionNext:
		m.message = "solve the level first"

	case PlayActionBack:
		m.drag.Reset()
		m.backToMenu = true
	}

	return m, nil
}

// move shifts the cursor. While dragging, the cursor only goes where the
// drag can follow.
func (m *PlayModel) move(dx, dy, dz int) {
	target := m.cursor.Add(dx, dy, dz)
	if !m.puzzle.ValidLocation(target) {
		return
	}
	if m.drag.Active() && !m.drag.Extend(m.puzzle, target) {
		m.message = fmt.Sprintf("cannot draw %s through %v", m.drag.Color(), target)
		return
	}
	m.cursor = target
	m.message = ""
}

// grab starts a drag at the cursor.
func (m *PlayModel) grab() {
	if err := m.drag.Begin(m.puzzle, m.cursor); err != nil {
		if errors.Is(err, puzzle.ErrUnoccupiedHead) {
			m.message = "grab a start or a flow"
		} else {
			m.message = err.Error()
		}
		return
	}
	m.message = fmt.Sprintf("drawing %s", m.drag.Color())
}

// commit applies the drag to the puzzle.
func (m *PlayModel) commit() {
	res, err := m.drag.Commit(m.puzzle)
	if err != nil {
		m.logger.Debug("commit rejected", "level", m.level.ID, "error", err)
		m.message = err.Error()
		return
	}
	m.moves++
	m.logger.Debug("commit",
		"level", m.level.ID,
		"color", res.Color,
		"steps", res.Steps,
		"reason", res.Reason,
		"severed", len(res.Severed),
	)
	m.recorder.Committed(m.level.ID, res.Reason)
	m.message = describeCommit(res)
	m.checkSolved()
}

// clear removes the flow under the cursor.
func (m *PlayModel) clear() {
	if m.drag.Active() {
		return
	}
	cell := m.puzzle.Cell(m.cursor)
	if cell.IsEmpty() {
		return
	}
	m.puzzle.ClearColor(cell.Color())
	m.message = fmt.Sprintf("%s cleared", cell.Color())
}

// restart puts the level back to its starting state.
func (m *PlayModel) restart() {
	m.puzzle.Reset()
	m.drag.Reset()
	m.moves = 0
	m.solved = false
	m.started = m.now()
	m.elapsed = 0
	m.message = "level restarted"
}

// checkSolved records the solve the first time the cube is complete.
func (m *PlayModel) checkSolved() {
	if m.solved || !m.puzzle.CheckWin() {
		return
	}
	m.solved = true
	m.elapsed = m.now().Sub(m.started)
	m.logger.Info("level solved", "level", m.level.ID, "player", m.player, "moves", m.moves, "time", m.elapsed)
	m.recorder.Solved(m.level.ID, m.moves, m.elapsed)

	if m.store == nil {
		return
	}
	// Best-effort save, the win stands regardless
	_, err := m.store.SaveSolve(storage.Solve{
		LevelID:  m.level.ID,
		Player:   m.player,
		Moves:    m.moves,
		Duration: m.elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save solve", "level", m.level.ID, "error", err)
	}
}

func describeCommit(res puzzle.CommitResult) string {
	var msg string
	switch res.Reason {
	case puzzle.StopClosed:
		msg = fmt.Sprintf("%s connected", res.Color)
	case puzzle.StopBlocked:
		msg = fmt.Sprintf("%s blocked at %v", res.Color, res.BlockedAt)
	default:
		msg = fmt.Sprintf("%s drawn, %d links", res.Color, res.Steps)
	}
	if len(res.Severed) > 0 {
		cut := make([]string, len(res.Severed))
		for i, c := range res.Severed {
			cut[i] = c.String()
		}
		msg += " (cut " + strings.Join(cut, ", ") + ")"
	}
	return msg
}

// View renders the play screen. The win check runs on every render.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	won := m.puzzle.CheckWin()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTitle(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderHUD(), m.width))
	b.WriteString("\n\n")

	board := m.theme.BoardFrame.Render(renderBoard(m.puzzle, m.cursor.Z, m.cursor, &m.drag, m.theme))
	side := renderLayerStrip(m.puzzle, m.cursor.Z, m.theme)
	if won {
		side = m.renderWinOverlay()
	}
	b.WriteString(centerBlock(lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", side), m.width))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(centerText(m.theme.HUDMessage.Render(m.message), m.width))
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.renderControls(won), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m PlayModel) renderTitle() string {
	title := m.theme.HUDTitle.Render("F L O W 3 D")
	name := m.theme.HUDValue.Render(m.level.Name)
	return title + m.theme.HUDSeparator.Render("  ·  ") + name
}

func (m PlayModel) renderHUD() string {
	st := m.puzzle.Stats()
	sep := m.theme.HUDSeparator.Render(" │ ")
	fields := []string{
		fmt.Sprintf("layer %d/%d", m.cursor.Z+1, m.puzzle.Size()),
		fmt.Sprintf("moves %d", m.moves),
		FormatDuration(m.elapsed),
		fmt.Sprintf("filled %d/%d (%d%%)", st.Filled, st.Cells, st.Percent()),
		fmt.Sprintf("flows %d/%d", st.ClosedFlows, st.Flows),
	}
	for i, f := range fields {
		fields[i] = m.theme.HUDValue.Render(f)
	}
	return strings.Join(fields, sep)
}

func (m PlayModel) renderWinOverlay() string {
	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render("SOLVED!"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.OverlayText.Render(fmt.Sprintf("time   %s", FormatDuration(m.elapsed))))
	b.WriteString("\n")
	b.WriteString(m.theme.OverlayText.Render(fmt.Sprintf("moves  %d", m.moves)))
	return m.theme.OverlayBorder.Render(b.String())
}

func (m PlayModel) renderControls(won bool) string {
	if won {
		return m.theme.HUDControls.Render("N: Next level  |  R: Replay  |  B: Menu  |  Q: Quit")
	}
	if m.drag.Active() {
		return m.theme.HUDControls.Render("Arrows/hjkl: Draw  |  [ ]: Layer  |  Space: Drop  |  Esc: Cancel")
	}
	return m.theme.HUDControls.Render("Arrows/hjkl: Move  |  [ ]: Layer  |  Space: Grab  |  X: Clear  |  R: Restart  |  B: Menu  |  Q: Quit")
}

// Level returns the level being played.
func (m PlayModel) Level() levels.Level {
	return m.level
}

// Puzzle returns the live puzzle.
func (m PlayModel) Puzzle() *puzzle.Puzzle {
	return m.puzzle
}

// Cursor returns the cell under the cursor.
func (m PlayModel) Cursor() puzzle.Coord {
	return m.cursor
}

// Dragging returns true while a drag is pending.
func (m PlayModel) Dragging() bool {
	return m.drag.Active()
}

// Moves returns the number of commits made.
func (m PlayModel) Moves() int {
	return m.moves
}

// Message returns the last status line.
func (m PlayModel) Message() string {
	return m.message
}

// IsSolved returns true once the cube has been completed.
func (m PlayModel) IsSolved() bool {
	return m.solved
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsNext returns true if user asked for the next level after a win.
func (m PlayModel) WantsNext() bool {
	return m.next
}
