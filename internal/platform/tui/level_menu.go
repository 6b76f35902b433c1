package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/storage"
)

// LevelMenuModel is the level picker.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levels       []levels.Level
	solved       map[string]bool          // Levels this player has solved
	best         map[string]time.Duration // Best time per level, any player
	selected     int
	choosing     bool
	quitting     bool
	back         bool
	wantsScores  bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a new level selection model.
// Solve marks and best times come from store when it is non-nil.
func NewLevelMenuModel(lvls []levels.Level, store *storage.Store, player string, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    lvls,
		solved:    make(map[string]bool),
		best:      make(map[string]time.Duration),
		selected:  -1,
		choosing:  true,
		theme:     GetTheme(),
	}

	if store == nil {
		return m
	}
	if ids, err := store.SolvedLevels(player); err == nil {
		for _, id := range ids {
			m.solved[id] = true
		}
	}
	if stats, err := store.AllLevelStats(); err == nil {
		for id, st := range stats {
			m.best[id] = st.BestTime
		}
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.choosing = false
			m.selected = m.cursor
		}
	case MenuActionScores:
		m.wantsScores = true
	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	visible := m.height - 10 // Account for header and footer
	if visible < 3 {
		visible = 3
	}
	return visible
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("F L O W 3 D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	startIdx := m.scrollOffset
	endIdx := startIdx + m.visibleItems()
	if endIdx > len(m.levels) {
		endIdx = len(m.levels)
	}

	if startIdx > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Best times  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m LevelMenuModel) renderItem(i int) string {
	lvl := m.levels[i]

	cursor := "  "
	style := m.theme.MenuItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}

	line := style.Render(fmt.Sprintf("%s%2d. %-18s %d³", cursor, i+1, lvl.Name, lvl.Size))
	if d := lvl.Difficulty(); d != "" {
		line += m.theme.MenuDescription.Render(fmt.Sprintf("  %-6s", d))
	}

	mark := "   "
	if m.solved[lvl.ID] {
		mark = " ✓ "
	}
	line += m.theme.MenuSolved.Render(mark)

	if best, ok := m.best[lvl.ID]; ok {
		line += m.theme.MenuDescription.Render("best " + FormatDuration(best))
	}
	return line
}

// Selected returns the chosen level, or nil if still choosing.
func (m LevelMenuModel) Selected() *levels.Level {
	if m.choosing || m.selected < 0 || m.selected >= len(m.levels) {
		return nil
	}
	lvl := m.levels[m.selected]
	return &lvl
}

// SelectedIndex returns the index of the chosen level, or -1.
func (m LevelMenuModel) SelectedIndex() int {
	if m.choosing {
		return -1
	}
	return m.selected
}

// IsChoosing returns true if still in selection mode.
func (m LevelMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// WantsScores returns true if user asked for the best-times table.
func (m LevelMenuModel) WantsScores() bool {
	return m.wantsScores
}

// IsSolved reports whether the player has solved the level.
func (m LevelMenuModel) IsSolved(id string) bool {
	return m.solved[id]
}
