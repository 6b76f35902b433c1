package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

// Theme contains all configurable visual styles for the Flow3D screens.
type Theme struct {
	Name string

	// Board
	Flows      [puzzle.ColorCount]lipgloss.Style // Indexed by puzzle.Color
	Start      lipgloss.Style                    // Applied on top of the flow color
	EmptyCell  lipgloss.Style
	Cursor     lipgloss.Style
	DragCell   lipgloss.Style
	BoardFrame lipgloss.Style

	// Layer strip
	LayerLabel  lipgloss.Style
	LayerActive lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	HUDMessage   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuSolved      lipgloss.Style
}

// FlowStyle returns the style for a palette color.
func (t Theme) FlowStyle(c puzzle.Color) lipgloss.Style {
	if !c.Valid() {
		return t.EmptyCell
	}
	return t.Flows[c.Index()]
}

func flowStyles(codes [puzzle.ColorCount]string) [puzzle.ColorCount]lipgloss.Style {
	var styles [puzzle.ColorCount]lipgloss.Style
	for i, code := range codes {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		// Order follows the palette: red, green, blue, yellow, orange, magenta, aqua
		Flows:      flowStyles([puzzle.ColorCount]string{"196", "46", "33", "226", "208", "201", "51"}),
		Start:      lipgloss.NewStyle().Bold(true),
		EmptyCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		DragCell:   lipgloss.NewStyle().Underline(true),
		BoardFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),

		LayerLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LayerActive: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDMessage:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),

		OverlayBorder: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("255")).Padding(1, 3),
		OverlayTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		MenuSolved:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

// NeonTheme returns a high-contrast theme on a dark background.
func NeonTheme() Theme {
	t := DefaultTheme()
	t.Name = "neon"
	t.Flows = flowStyles([puzzle.ColorCount]string{"#FF0055", "#39FF14", "#1F51FF", "#FFFF33", "#FF9933", "#FF00FF", "#00FFFF"})
	t.Start = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#1a1a2e"))
	t.EmptyCell = lipgloss.NewStyle().Foreground(lipgloss.Color("#333344"))
	t.BoardFrame = t.BoardFrame.BorderForeground(lipgloss.Color("#FF00FF"))

	t.LayerActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	t.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)
	t.HUDValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	t.HUDSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))

	t.OverlayBorder = t.OverlayBorder.BorderForeground(lipgloss.Color("#FF00FF"))
	t.OverlayTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14")).Bold(true)

	t.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)
	t.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")).Bold(true)
	t.MenuSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("#39FF14"))
	return t
}

// MonoTheme returns a theme without colors. Flows are told apart by letter.
func MonoTheme() Theme {
	plain := lipgloss.NewStyle()
	var flows [puzzle.ColorCount]lipgloss.Style
	for i := range flows {
		flows[i] = plain
	}

	return Theme{
		Name:       "mono",
		Flows:      flows,
		Start:      lipgloss.NewStyle().Bold(true),
		EmptyCell:  lipgloss.NewStyle().Faint(true),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		DragCell:   lipgloss.NewStyle().Underline(true),
		BoardFrame: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),

		LayerLabel:  plain,
		LayerActive: lipgloss.NewStyle().Bold(true).Underline(true),

		HUDTitle:     lipgloss.NewStyle().Bold(true),
		HUDValue:     plain,
		HUDSeparator: plain,
		HUDControls:  lipgloss.NewStyle().Faint(true),
		HUDMessage:   lipgloss.NewStyle().Italic(true),

		OverlayBorder: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 3),
		OverlayTitle:  lipgloss.NewStyle().Bold(true),
		OverlayText:   plain,

		MenuTitle:       lipgloss.NewStyle().Bold(true),
		MenuItemNormal:  plain,
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Reverse(true),
		MenuDescription: lipgloss.NewStyle().Faint(true),
		MenuSolved:      plain,
	}
}

// ThemeByName looks up a theme. The boolean is false for unknown names.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), true
	case "neon":
		return NeonTheme(), true
	case "mono", "monochrome":
		return MonoTheme(), true
	}
	return DefaultTheme(), false
}

// ThemeNames lists the accepted theme names.
func ThemeNames() []string {
	return []string{"default", "neon", "mono"}
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the theme used by models created afterwards.
func SetTheme(t Theme) {
	themeMu.Lock()
	currentTheme = t
	themeMu.Unlock()
}

// GetTheme returns the current theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
