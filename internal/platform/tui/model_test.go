package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

const fakeID = "tui-fake"

// fakeGame ends its run after overAt steps.
type fakeGame struct {
	resets int
	steps  int
	overAt int
	seed   int64
	preset string
	right  int // steps with MoveRight held
	paused bool
}

func (g *fakeGame) ID() string    { return fakeID }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.seed = cfg.Seed
	g.paused = false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && !g.over() {
		g.steps++
		if in.Has(core.ActionMoveRight) {
			g.right++
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) over() bool { return g.overAt > 0 && g.steps >= g.overAt }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps * 10, GameOver: g.over(), Paused: g.paused}
}

func (g *fakeGame) Run() core.RunSummary {
	return core.RunSummary{Seed: uint32(g.seed), Distance: g.steps * 10, Frames: g.steps}
}

func (g *fakeGame) SetPreset(p string) { g.preset = p }

var lastFake *fakeGame

func init() {
	registry.Register(fakeID, func() registry.Game {
		lastFake = &fakeGame{overAt: 3}
		return lastFake
	})
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(m Model, n int) Model {
	for range n {
		next, _ := m.Update(TickMsg(time.Time{}))
		m = next.(Model)
	}
	return m
}

func press(m Model, key string) Model {
	next, _ := m.Update(keyMsg(key))
	return next.(Model)
}

func TestModelSavesRunOnce(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{overAt: 3}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7}

	m := NewModel(g, store, cfg)
	m.Init()
	m = tick(m, 10)

	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	runs, err := store.RecentRuns(fakeID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Distance != 30 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v, expected distance 30, seed 7", runs[0])
	}
}

func TestModelRestartKeepsFixedSeed(t *testing.T) {
	g := &fakeGame{overAt: 2}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 99})
	m.Init()

	// Restart is ignored while the run is alive.
	m = press(m, "r")
	m = tick(m, 1)
	if g.resets != 1 {
		t.Fatalf("restart during a run: resets = %d, expected 1", g.resets)
	}

	m = tick(m, 3)
	m = press(m, "r")
	m = tick(m, 1)
	if g.resets != 2 {
		t.Fatalf("resets = %d, expected 2 after restart", g.resets)
	}
	if g.seed != 99 {
		t.Errorf("restart seed = %d, expected the fixed seed 99", g.seed)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelHeldKeyDrivesSteps(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	m = press(m, "right")
	m = tick(m, DefaultHoldTicks+5)
	if g.right != DefaultHoldTicks {
		t.Errorf("MoveRight held for %d steps, expected %d", g.right, DefaultHoldTicks)
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	m = tick(m, 1)
	m = press(m, "b")
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = press(m, "p")
	m = tick(m, 1)
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	m = press(m, "b")
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})
	next, cmd := m.Update(keyMsg("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, Seed: 1})
	if !strings.Contains(m.View(), "fake") {
		t.Errorf("View() = %q, expected game output", m.View())
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, fakeID, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "hard")
	if m.Preset() != "hard" {
		t.Fatalf("Preset() = %q, expected hard", m.Preset())
	}

	update := func(key string) {
		next, _ := m.Update(keyMsg(key))
		m = next.(MenuModel)
	}

	update("down")
	update("right")
	if m.Preset() != "fixed" {
		t.Errorf("Preset() = %q, expected fixed", m.Preset())
	}
	update("right")
	if m.Preset() != "easy" {
		t.Errorf("Preset() = %q, expected wrap to easy", m.Preset())
	}
	update("left")
	if m.Preset() != "fixed" {
		t.Errorf("Preset() = %q, expected wrap back to fixed", m.Preset())
	}

	if !strings.Contains(m.View(), "Difficulty: < fixed >") {
		t.Errorf("menu should show the preset:\n%s", m.View())
	}
}

func TestMenuUnknownPresetIsNormal(t *testing.T) {
	m := NewMenuModel(nil, fakeID, core.RuntimeConfig{}, "brutal")
	if m.Preset() != "normal" {
		t.Errorf("Preset() = %q, expected normal", m.Preset())
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	store := testStore(t)
	s := NewSessionModel(store, fakeID, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "easy")

	update := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	update(keyMsg("enter"))
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game", s.screen)
	}
	if lastFake.preset != "easy" {
		t.Errorf("game preset = %q, expected easy", lastFake.preset)
	}

	for range 5 {
		update(TickMsg(time.Time{}))
	}
	update(keyMsg("b"))
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after back", s.screen)
	}
	if !strings.Contains(s.View(), "Best distance: 30") {
		t.Errorf("menu should show the saved run:\n%s", s.View())
	}

	update(keyMsg("tab"))
	if s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}
	if !strings.Contains(s.View(), "BEST DISTANCES") {
		t.Errorf("scoreboard missing title:\n%s", s.View())
	}
	update(keyMsg("esc"))
	if s.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after leaving scores", s.screen)
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	store := testStore(t)
	store.SaveRun(fakeID, core.RunSummary{Seed: 5, Distance: 420, EnemiesDefeated: 2, Frames: 3600})

	m := NewScoreboardModel(store, fakeID, 100, 30)
	if !strings.Contains(m.View(), "420") {
		t.Errorf("best view should list the run:\n%s", m.View())
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	out := m.View()
	if !strings.Contains(out, "RECENT RUNS") || !strings.Contains(out, "1:00") {
		t.Errorf("recent view should list the run duration:\n%s", out)
	}
}

func TestFormatFrames(t *testing.T) {
	tests := []struct {
		frames   int
		expected string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60 * 75, "1:15"},
	}
	for _, tc := range tests {
		if got := formatFrames(tc.frames); got != tc.expected {
			t.Errorf("formatFrames(%d) = %q, expected %q", tc.frames, got, tc.expected)
		}
	}
}

func TestModelDoublePauseCancels(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	m = press(m, "p")
	m = press(m, "p")
	m = tick(m, 1)
	if m.State().Paused {
		t.Error("two pause presses in one tick should leave the game running")
	}

	m = press(m, "p")
	m = tick(m, 1)
	if !m.State().Paused {
		t.Error("a single pause press should pause")
	}
}

func TestScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(2, 1, "cd")

	if got := screenText(s); got != "ab\n  cd\n" {
		t.Errorf("screenText() = %q, expected %q", got, "ab\n  cd\n")
	}
}
