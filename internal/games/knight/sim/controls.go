package sim

import "github.com/vovakirdan/tui-knight/internal/core"

// Actions is the held input for one frame.
type Actions struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// keyActions maps the named keys the game understands to actions.
var keyActions = map[string]core.Action{
	"ArrowLeft":  core.ActionMoveLeft,
	"a":          core.ActionMoveLeft,
	"A":          core.ActionMoveLeft,
	"ArrowRight": core.ActionMoveRight,
	"d":          core.ActionMoveRight,
	"D":          core.ActionMoveRight,
	"ArrowUp":    core.ActionJump,
	"w":          core.ActionJump,
	"W":          core.ActionJump,
	" ":          core.ActionAttack,
}

// KeyAction resolves a key name. Unknown names report false.
func KeyAction(name string) (core.Action, bool) {
	a, ok := keyActions[name]
	return a, ok
}

// Controls tracks which actions are held. Frontends mutate it through key
// events; the world only ever sees the Actions value it produces.
type Controls struct {
	held Actions
}

// KeyDown marks the action bound to name as held. Unknown keys are ignored.
func (c *Controls) KeyDown(name string) {
	if a, ok := KeyAction(name); ok {
		c.Set(a, true)
	}
}

// KeyUp releases the action bound to name. Unknown keys are ignored.
func (c *Controls) KeyUp(name string) {
	if a, ok := KeyAction(name); ok {
		c.Set(a, false)
	}
}

// Set updates a single action. Actions the game does not use are ignored.
func (c *Controls) Set(a core.Action, held bool) {
	switch a {
	case core.ActionMoveLeft:
		c.held.Left = held
	case core.ActionMoveRight:
		c.held.Right = held
	case core.ActionJump:
		c.held.Jump = held
	case core.ActionAttack:
		c.held.Attack = held
	}
}

// Release drops every held action.
func (c *Controls) Release() {
	c.held = Actions{}
}

// Actions returns the current held state.
func (c *Controls) Actions() Actions {
	return c.held
}

// ActionsFromInput converts a platform input frame into held actions.
func ActionsFromInput(in core.InputFrame) Actions {
	return Actions{
		Left:   in.Has(core.ActionMoveLeft),
		Right:  in.Has(core.ActionMoveRight),
		Jump:   in.Has(core.ActionJump),
		Attack: in.Has(core.ActionAttack),
	}
}
