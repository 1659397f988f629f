package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// GameKeyMap holds the in-game bindings.
type GameKeyMap struct {
	Charge     key.Binding
	Release    key.Binding
	Impulse    key.Binding
	Left       key.Binding
	Right      key.Binding
	Teleport   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns the bindings shown in the one-line help.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Charge, k.Impulse, k.Left, k.Right, k.Release, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Charge, k.Impulse, k.Left, k.Right, k.Release},
		{k.Pause, k.Restart, k.Teleport},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Charge: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "charge / launch"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "drop egg"),
		),
		Impulse: key.NewBinding(
			key.WithKeys("i", "up", "w"),
			key.WithHelp("i/click", "raise angle"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←", "aim left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "aim right"),
		),
		Teleport: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "teleport (debug)"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea input to game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the active bindings.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key press. Terminals report no key-up, so the charge
// key toggles: it starts a charge when none is running and launches
// otherwise.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, charging bool) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Charge):
		if charging {
			return core.ActionChargeRelease, false
		}
		return core.ActionChargeStart, false
	case key.Matches(msg, k.Release):
		return core.ActionRelease, false
	case key.Matches(msg, k.Impulse):
		return core.ActionImpulse, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Teleport):
		return core.ActionTeleport, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMouse turns a button press anywhere into an angle impulse.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button != tea.MouseButtonNone {
		return core.ActionImpulse
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
