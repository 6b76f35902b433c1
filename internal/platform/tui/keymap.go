package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to play and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// PlayAction represents an action on the puzzle board.
type PlayAction int

const (
	PlayActionNone PlayAction = iota
	PlayActionLeft            // -X
	PlayActionRight           // +X
	PlayActionUp              // -Y
	PlayActionDown            // +Y
	PlayActionLayerUp         // -Z
	PlayActionLayerDown       // +Z
	PlayActionGrab            // Grab, or commit while dragging
	PlayActionCancel
	PlayActionClear
	PlayActionRestart
	PlayActionNext
	PlayActionBack
	PlayActionQuit
)

// MapKey translates a key message to a play action.
// Returns the action (may be PlayActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action PlayAction, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return PlayActionQuit, true
	}

	switch key {
	case "left", "h":
		return PlayActionLeft, false
	case "right", "l":
		return PlayActionRight, false
	case "up", "k":
		return PlayActionUp, false
	case "down", "j":
		return PlayActionDown, false
	case "[", "pgup":
		return PlayActionLayerUp, false
	case "]", "pgdown":
		return PlayActionLayerDown, false
	case " ", "space", "enter":
		return PlayActionGrab, false
	case "esc":
		return PlayActionCancel, false
	case "x", "backspace", "delete":
		return PlayActionClear, false
	case "r":
		return PlayActionRestart, false
	case "n":
		return PlayActionNext, false
	case "b":
		return PlayActionBack, false
	}

	return PlayActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScores
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScores
	}

	return MenuActionNone
}
