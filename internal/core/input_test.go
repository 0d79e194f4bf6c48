package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should not report any action")
	}

	f.Set(ActionJump)
	f.Set(ActionMoveRight)
	if !f.Has(ActionJump) || !f.Has(ActionMoveRight) {
		t.Error("Set actions should be reported by Has")
	}

	f.Unset(ActionJump)
	if f.Has(ActionJump) {
		t.Error("Unset should clear the action")
	}
	if !f.Has(ActionMoveRight) {
		t.Error("Unset should not affect other actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionAttack)
	f.Set(ActionPause)
	f.Clear()

	if f.Has(ActionAttack) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionAttack, "Attack"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		tickRate int
		expected float64
	}{
		{60, 1.0},
		{30, 2.0},
		{120, 0.5},
		{0, 1.0},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.tickRate}
		if got := cfg.FrameDelta(); got != tc.expected {
			t.Errorf("FrameDelta() at %d fps = %f, expected %f", tc.tickRate, got, tc.expected)
		}
	}
}
