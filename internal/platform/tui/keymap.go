package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight/sim"
)

// DefaultHoldTicks keeps a key held across the gap between the first press
// and the terminal's auto-repeat at 60 ticks per second.
const DefaultHoldTicks = 30

// teaKeyNames translates Bubble Tea key strings to the game's key names.
var teaKeyNames = map[string]string{
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"up":    "ArrowUp",
	"space": " ",
}

// opposite movement is dropped when the other direction is pressed.
var opposite = map[core.Action]core.Action{
	core.ActionMoveLeft:  core.ActionMoveRight,
	core.ActionMoveRight: core.ActionMoveLeft,
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses and auto-repeats but never releases, so a
// held action stays active for HoldTicks ticks after the last press or
// repeat and is then released.
type KeyMapper struct {
	HoldTicks int
	held      map[core.Action]int
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		HoldTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	return km.mapKeyString(msg.String())
}

func (km *KeyMapper) mapKeyString(key string) (core.Action, bool) {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	}

	name := key
	if n, ok := teaKeyNames[key]; ok {
		name = n
	}
	if a, ok := sim.KeyAction(name); ok {
		return a, false
	}
	return core.ActionNone, false
}

// Press records a key press. Held actions are refreshed; one-shot actions
// (pause, restart, quit) are returned for the caller to handle.
func (km *KeyMapper) Press(msg tea.KeyMsg) (core.Action, bool) {
	return km.press(msg.String())
}

func (km *KeyMapper) press(key string) (core.Action, bool) {
	action, quit := km.mapKeyString(key)
	if isHeld(action) {
		km.held[action] = km.HoldTicks
		if o, ok := opposite[action]; ok {
			delete(km.held, o)
		}
	}
	return action, quit
}

// Apply sets every held action on frame and ages the holds by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, ticks := range km.held {
		frame.Set(a)
		if ticks <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = ticks - 1
		}
	}
}

// Release drops every held action.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// Held reports whether a is currently held.
func (km *KeyMapper) Held(a core.Action) bool {
	return km.held[a] > 0
}

func isHeld(a core.Action) bool {
	switch a {
	case core.ActionMoveLeft, core.ActionMoveRight, core.ActionJump, core.ActionAttack:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuAction(msg.String())
}

func menuAction(key string) MenuAction {
	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
