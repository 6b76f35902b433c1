package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flow3d/internal/levels"
	"github.com/vovakirdan/flow3d/internal/storage"
)

const (
	scoresRowLimit     = 100 // Solves loaded per level
	scoresPanelWidth   = 26
	scoresMinWideWidth = 84 // Below this the level panel is dropped
)

// Ranking selects the order of the best-times table.
type Ranking int

const (
	RankByTime Ranking = iota
	RankByMoves
)

func (r Ranking) String() string {
	if r == RankByMoves {
		return "fewest moves"
	}
	return "fastest"
}

// scoreKeys binds the best-times screen. Row scrolling is left to the
// table's own key map; Scroll only feeds the help line.
type scoreKeys struct {
	Scroll    key.Binding
	PrevLevel key.Binding
	NextLevel key.Binding
	Rank      key.Binding
	Play      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevLevel, k.NextLevel, k.Rank, k.Play, k.Back}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.PrevLevel, k.NextLevel},
		{k.Rank, k.Play, k.Back, k.Quit},
	}
}

func newScoreKeys() scoreKeys {
	return scoreKeys{
		Scroll:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		PrevLevel: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev level")),
		NextLevel: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "next level")),
		Rank:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "time/moves")),
		Play:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play level")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoresModel is the best-times screen: one level at a time, its solves
// ranked by time or by moves, and the level's aggregate stats.
type ScoresModel struct {
	levels  []levels.Level
	current int
	store   *storage.Store
	player  string
	theme   Theme
	keys    scoreKeys
	help    help.Model
	table   table.Model
	ranking Ranking
	solves  []storage.Solve
	stats   *storage.LevelStats
	width   int
	height  int

	quitting  bool
	goingBack bool
	wantsPlay bool
}

// NewScoresModel creates the best-times screen opened on the first level.
// Rows set by player are marked.
func NewScoresModel(lvls []levels.Level, store *storage.Store, player string, width, height int) ScoresModel {
	m := ScoresModel{
		levels: lvls,
		store:  store,
		player: player,
		theme:  GetTheme(),
		keys:   newScoreKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoresModel) wide() bool {
	return m.width >= scoresMinWideWidth
}

func (m ScoresModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Time", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "Solved", Width: 12},
	}
	avail := m.width - 6
	if m.wide() {
		avail -= scoresPanelWidth + 2
	}
	if spare := avail - 54; spare > 0 {
		cols[1].Width += min(spare, 10)
	}

	styles := table.DefaultStyles()
	styles.Header = m.theme.HUDTitle.Padding(0, 1)
	styles.Selected = m.theme.MenuItemActive

	return table.New(
		table.WithColumns(cols),
		table.WithHeight(max(m.height-12, 3)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

// reload fetches the current level's solves and stats, then re-ranks.
func (m *ScoresModel) reload() {
	m.solves, m.stats = nil, nil
	lvl, ok := m.CurrentLevel()
	if !ok || m.store == nil {
		m.fillTable()
		return
	}
	if solves, err := m.store.BestSolves(lvl.ID, scoresRowLimit); err == nil {
		m.solves = solves
	}
	if stats, err := m.store.LevelStats(lvl.ID); err == nil {
		m.stats = stats
	}
	m.rank()
}

// rank orders the loaded solves. Both orders break ties on the other key.
func (m *ScoresModel) rank() {
	slices.SortStableFunc(m.solves, func(a, b storage.Solve) int {
		if m.ranking == RankByMoves {
			return cmp.Or(cmp.Compare(a.Moves, b.Moves), cmp.Compare(a.Duration, b.Duration))
		}
		return cmp.Or(cmp.Compare(a.Duration, b.Duration), cmp.Compare(a.Moves, b.Moves))
	})
	m.fillTable()
}

func (m *ScoresModel) fillTable() {
	rows := make([]table.Row, 0, len(m.solves))
	for i, s := range m.solves {
		who := s.Player
		switch {
		case who == "":
			who = "-"
		case who == m.player:
			who += " *"
		}
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			who,
			FormatDuration(s.Duration),
			fmt.Sprint(s.Moves),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoresModel) step(delta int) {
	if n := len(m.levels); n > 0 {
		m.current = (m.current + delta + n) % n
		m.reload()
	}
}

// Init initializes the model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the best-times screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextLevel):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Rank):
			m.ranking = 1 - m.ranking
			m.rank()
			return m, nil
		case key.Matches(msg, m.keys.Play):
			m.wantsPlay = len(m.levels) > 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the best-times screen.
func (m ScoresModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST TIMES"
	if lvl, ok := m.CurrentLevel(); ok {
		title += " - " + lvl.Name
	}
	sub := m.theme.MenuDescription.Render("ranked by " + m.ranking.String())

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.levelPanel(), "  ", m.solvesBox())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Center, m.levelStrip(), "", m.solvesBox())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(m.theme.MenuTitle.Render(title), m.width),
		centerText(sub, m.width),
		"",
		centerBlock(body, m.width),
		"",
		m.theme.HUDControls.Render(m.help.View(m.keys)),
	)
}

func (m ScoresModel) solvesBox() string {
	content := m.table.View()
	if len(m.solves) == 0 {
		content = m.theme.MenuDescription.Padding(1, 3).
			Render("No solves recorded yet.\nConnect every pair to set a time!")
	}
	return m.theme.BoardFrame.Render(content)
}

// levelPanel lists every level beside the table and details the current one.
func (m ScoresModel) levelPanel() string {
	var b strings.Builder
	for i, lvl := range m.levels {
		line := fmt.Sprintf("  %s %d³", lvl.Name, lvl.Size)
		style := m.theme.MenuItemNormal
		if i == m.current {
			line = "> " + line[2:]
			style = m.theme.MenuItemActive
		}
		b.WriteString(style.Render(truncate(line, scoresPanelWidth-4)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(m.statsText())
	return m.theme.BoardFrame.Width(scoresPanelWidth).Render(b.String())
}

// levelStrip names the neighbours of the current level for narrow screens.
func (m ScoresModel) levelStrip() string {
	lvl, ok := m.CurrentLevel()
	if !ok {
		return m.theme.MenuDescription.Render("no levels")
	}
	name := m.theme.MenuItemActive.Render(fmt.Sprintf("%s %d³", lvl.Name, lvl.Size))
	return lipgloss.JoinVertical(lipgloss.Center,
		m.theme.HUDSeparator.Render("‹ ")+name+m.theme.HUDSeparator.Render(" ›"),
		m.statsText(),
	)
}

func (m ScoresModel) statsText() string {
	if m.stats == nil || m.stats.Solves == 0 {
		return m.theme.MenuDescription.Render("not solved yet")
	}
	s := m.stats
	return m.theme.HUDValue.Render(fmt.Sprintf("%d solves by %d players\nbest %s  avg %s\nfewest moves %d",
		s.Solves, s.Players, FormatDuration(s.BestTime), FormatDuration(s.AvgTime), s.FewestMoves))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// CurrentLevel returns the level whose times are shown.
func (m ScoresModel) CurrentLevel() (levels.Level, bool) {
	if len(m.levels) == 0 {
		return levels.Level{}, false
	}
	return m.levels[m.current], true
}

// Ranking returns the active table order.
func (m ScoresModel) Ranking() Ranking {
	return m.ranking
}

// Solves returns the rows in table order.
func (m ScoresModel) Solves() []storage.Solve {
	return m.solves
}

// WantsPlay returns true if the user asked to play the shown level.
func (m ScoresModel) WantsPlay() bool {
	return m.wantsPlay
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoresModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoresModel) IsQuitting() bool {
	return m.quitting
}
