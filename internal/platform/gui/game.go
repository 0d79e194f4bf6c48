// Package gui runs Knight Run in a desktop window with Ebitengine. Unlike
// the terminal, the window reports real key-up events, so held actions
// follow the keyboard exactly.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/games/knight/sim"
	"github.com/vovakirdan/tui-knight/internal/platform/gui/settings"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

// Logical screen size in world units.
const (
	ScreenWidth  = int(knight.ViewWidth)
	ScreenHeight = int(knight.ViewHeight)
)

// keyBindings maps window keys to the game's key names.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowLeft, "ArrowLeft"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyArrowRight, "ArrowRight"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowUp, "ArrowUp"},
	{ebiten.KeyW, "w"},
	{ebiten.KeySpace, " "},
}

// Options configures a window run.
type Options struct {
	Runtime  core.RuntimeConfig
	Preset   string
	Store    *storage.Store  // may be nil
	Settings *settings.Store // may be nil
	Logger   *log.Logger     // may be nil
}

// Game implements ebiten.Game around a knight.Game.
type Game struct {
	game     *knight.Game
	opts     Options
	runtime  core.RuntimeConfig
	controls sim.Controls
	saved    bool
	hitboxes bool
	log      *log.Logger
}

// New creates the window game and starts the first run.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	opts.Runtime.ScreenW = ScreenWidth
	opts.Runtime.ScreenH = ScreenHeight

	g := &Game{
		game:    knight.New(),
		opts:    opts,
		runtime: opts.Runtime,
		log:     opts.Logger.WithPrefix("window"),
	}
	if opts.Preset != "" {
		g.game.SetPreset(opts.Preset)
	}
	if opts.Settings != nil {
		g.hitboxes = opts.Settings.Settings().ShowHitboxes
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	rt := g.runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	g.game.Reset(rt)
	g.controls.Release()
	g.saved = false

	if g.opts.Settings != nil {
		g.opts.Settings.SetLastSeed(g.game.Run().Seed)
	}
}

// Update reads the keyboard and steps the game once.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveSettings()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hitboxes = !g.hitboxes
		if g.opts.Settings != nil {
			g.opts.Settings.SetShowHitboxes(g.hitboxes)
		}
	}

	state := g.game.State()
	if state.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.reset()
		}
		return nil
	}

	g.readKeys()
	in := inputFrame(g.controls.Actions())
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}

	if g.game.Step(in).State.GameOver && !g.saved {
		g.saveRun()
	}
	return nil
}

// readKeys sets each action from every key bound to it.
func (g *Game) readKeys() {
	held := make(map[core.Action]bool, len(keyBindings))
	for _, b := range keyBindings {
		a, ok := sim.KeyAction(b.name)
		if !ok {
			continue
		}
		held[a] = held[a] || ebiten.IsKeyPressed(b.key)
	}
	for a, down := range held {
		g.controls.Set(a, down)
	}
}

func inputFrame(a sim.Actions) core.InputFrame {
	in := core.NewInputFrame()
	if a.Left {
		in.Set(core.ActionMoveLeft)
	}
	if a.Right {
		in.Set(core.ActionMoveRight)
	}
	if a.Jump {
		in.Set(core.ActionJump)
	}
	if a.Attack {
		in.Set(core.ActionAttack)
	}
	return in
}

func (g *Game) saveRun() {
	g.saved = true
	if g.opts.Store == nil {
		return
	}
	if _, err := g.opts.Store.SaveRun(g.game.ID(), g.game.Run()); err != nil {
		g.log.Warn("run not saved", "err", err)
	}
}

func (g *Game) saveSettings() {
	if g.opts.Settings == nil {
		return
	}
	if err := g.opts.Settings.Save(); err != nil {
		g.log.Warn("settings not saved", "err", err)
	}
}

// Layout fixes the logical screen to the world view.
func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.game.Frame()
	screen.Fill(rgba(core.ColorSky))

	cam := float32(f.CameraX)
	for _, p := range f.Platforms {
		x, y := float32(p.X)-cam, float32(p.Y)
		vector.DrawFilledRect(screen, x, y, float32(p.W), float32(p.H), rgba(core.ColorDirt), false)
		vector.DrawFilledRect(screen, x, y, float32(p.W), min(4, float32(p.H)), rgba(core.ColorGrass), false)
		vector.StrokeRect(screen, x, y, float32(p.W), float32(p.H), 1, rgba(core.ColorDirtDark), false)
	}

	for _, pk := range f.Pickups {
		if pk.Collected {
			continue
		}
		drawHeart(screen, float32(pk.Box.X)-cam, float32(pk.Box.Y+pk.FloatOffset), float32(pk.Box.W), 1)
	}

	for _, e := range f.Enemies {
		if e.Alive {
			drawGoblin(screen, e, cam)
		}
	}

	drawKnight(screen, f.Player, cam)

	if g.hitboxes {
		drawHitboxes(screen, f, cam)
	}
	g.drawHUD(screen, f)
}

func drawGoblin(screen *ebiten.Image, e sim.EnemyView, cam float32) {
	c := core.ColorGoblin
	if e.HitFlash > 0 {
		c = core.ColorGoblinFlash
	}
	x, y := float32(e.Box.X)-cam, float32(e.Box.Y)
	w, h := float32(e.Box.W), float32(e.Box.H)
	vector.DrawFilledRect(screen, x, y, w, h, rgba(c), false)

	eyeX := x + 3
	if e.FacingRight {
		eyeX = x + w - 7
	}
	vector.DrawFilledRect(screen, eyeX, y+5, 4, 4, rgba(core.ColorHeart), false)
}

func drawKnight(screen *ebiten.Image, p sim.PlayerView, cam float32) {
	if knight.KnightHidden(p) {
		return
	}

	x, y := float32(p.Box.X)-cam, float32(p.Box.Y)
	w, h := float32(p.Box.W), float32(p.Box.H)
	vector.DrawFilledRect(screen, x, y, w, h, rgba(core.ColorTunic), false)
	vector.DrawFilledRect(screen, x, y, w, 9, rgba(core.ColorArmor), false)
	vector.DrawFilledRect(screen, x, y+h-6, w, 6, rgba(core.ColorBoots), false)
	if p.Dead {
		return
	}

	s := p.Sword
	hx, hy := float32(s.HandX)-cam, float32(s.HandY)
	vector.StrokeLine(screen, hx, hy, float32(s.TipX)-cam, float32(s.TipY), 3, rgba(core.ColorSteel), true)
	vector.DrawFilledRect(screen, hx-3, hy-1, 6, 3, rgba(core.ColorGold), false)
}

func drawHitboxes(screen *ebiten.Image, f sim.Frame, cam float32) {
	outline := func(b core.AABB, c color.Color) {
		vector.StrokeRect(screen, float32(b.X)-cam, float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
	}

	outline(f.Player.Box, color.RGBA{0x00, 0xFF, 0xFF, 0xFF})
	for _, e := range f.Enemies {
		if e.Alive {
			outline(e.Box, color.RGBA{0xFF, 0x00, 0xFF, 0xFF})
		}
	}
	if f.Player.Sword.CanHit {
		outline(f.Player.Sword.Hitbox, color.RGBA{0xFF, 0xFF, 0x00, 0xFF})
	}
}

// drawHeart draws one heart cell filled to fill (0..1).
func drawHeart(screen *ebiten.Image, x, y, size float32, fill float32) {
	vector.DrawFilledRect(screen, x, y, size, size, rgba(core.ColorHeartEmpty), false)
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, size*fill, size, rgba(core.ColorHeart), false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, f sim.Frame) {
	const heartSize, gap = 16, 4
	for i := range int(f.Player.MaxHealth) / 4 {
		q := min(max(int(f.Player.Health)-i*4, 0), 4)
		drawHeart(screen, float32(10+i*(heartSize+gap)), 10, heartSize, float32(q)/4)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Distance: %d", int(f.Distance)), ScreenWidth-120, 12)
	if g.hitboxes {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("seed %d  enemies %d", g.game.Run().Seed, len(f.Enemies)), 10, 32)
	}

	switch {
	case f.Player.Dead:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", ScreenWidth/2-27, ScreenHeight/2-20)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Distance: %d  |  Press R to restart", int(f.Distance)),
			ScreenWidth/2-111, ScreenHeight/2)
	case g.game.State().Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", ScreenWidth/2-18, ScreenHeight/2-20)
		ebitenutil.DebugPrintAt(screen, "Press P to resume", ScreenWidth/2-51, ScreenHeight/2)
	}
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xFF}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	scale := 1.0
	if opts.Settings != nil {
		scale = opts.Settings.Settings().WindowScale
	}

	g := New(opts)
	ebiten.SetWindowSize(int(float64(ScreenWidth)*scale), int(float64(ScreenHeight)*scale))
	ebiten.SetWindowTitle("Knight Run")
	ebiten.SetTPS(g.runtime.TickRate)

	// RunGame returns nil when Update ends with ebiten.Termination.
	err := ebiten.RunGame(g)
	g.saveSettings()
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
