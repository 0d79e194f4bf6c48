package knight

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight/sim"
)

// World-space size of the visible area. The camera keeps the knight
// ViewWidth/2 from the left edge.
const (
	ViewWidth  = 800.0
	ViewHeight = 500.0
)

// Visual characters for rendering
const (
	GrassChar   = '▀'
	DirtChar    = '▓'
	GoblinChar  = '▒'
	HeartChar   = '♥'
	EmptyHeart  = '♡'
	HelmetChar  = '▄'
	TunicChar   = '█'
	MinScreenW  = 24
	MinScreenH  = 8
	maxHearts   = 7
	hudRows     = 1
	flickerRate = 10 // Flicker toggles per second of damage cooldown
)

var quarterHearts = [4]rune{EmptyHeart, '¼', '½', '¾'}

// viewport maps world units to screen cells below the HUD row. Anything
// outside bounds is skipped.
type viewport struct {
	camX   float64
	sx, sy float64
	bounds core.Rect
}

func newViewport(dst *core.Screen, camX float64) viewport {
	return viewport{
		camX:   camX,
		sx:     float64(dst.Width()) / ViewWidth,
		sy:     float64(dst.Height()-hudRows) / ViewHeight,
		bounds: core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows),
	}
}

// rect converts a world box to cells. Every visible box covers at least
// one cell.
func (v viewport) rect(b core.AABB) core.Rect {
	x0 := int(math.Floor((b.X - v.camX) * v.sx))
	x1 := int(math.Ceil((b.Right() - v.camX) * v.sx))
	y0 := int(math.Floor(b.Y*v.sy)) + hudRows
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + hudRows
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor((x - v.camX) * v.sx)), int(math.Floor(y*v.sy)) + hudRows
}

// RenderFrame draws a simulation frame into dst.
func RenderFrame(dst *core.Screen, f sim.Frame, paused bool) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	v := newViewport(dst, f.CameraX)

	for _, p := range f.Platforms {
		if r := v.rect(p); v.bounds.Intersects(r) {
			drawPlatform(dst, r)
		}
	}
	for _, pk := range f.Pickups {
		if pk.Collected {
			continue
		}
		box := pk.Box
		box.Y += pk.FloatOffset
		cx, cy := v.point(box.Center())
		if v.bounds.Contains(cx, cy) {
			dst.SetColored(cx, cy, HeartChar, core.ColorHeart)
		}
	}
	for _, e := range f.Enemies {
		if !e.Alive {
			continue
		}
		if r := v.rect(e.Box); v.bounds.Intersects(r) {
			drawGoblin(dst, r, e)
		}
	}

	drawKnight(dst, v, f.Player)
	drawHUD(dst, f)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if f.Player.Dead {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Distance: %d  |  Press R to restart", int(f.Distance)))
	}
}

func drawPlatform(dst *core.Screen, r core.Rect) {
	dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorGrass)
	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), DirtChar, core.ColorDirt)
	}
}

func drawGoblin(dst *core.Screen, r core.Rect, e sim.EnemyView) {
	color := core.ColorGoblin
	if e.HitFlash > 0 {
		color = core.ColorGoblinFlash
	}
	dst.DrawRect(r, GoblinChar, color)

	// Eye on the leading side.
	eyeX := r.X
	if e.FacingRight {
		eyeX = r.Right() - 1
	}
	dst.SetColored(eyeX, r.Y, 'o', core.ColorHeart)
}

func drawKnight(dst *core.Screen, v viewport, p sim.PlayerView) {
	if KnightHidden(p) {
		return
	}

	r := v.rect(p.Box)
	dst.DrawHLine(r.X, r.Y, r.W, HelmetChar, core.ColorArmor)
	if r.H > 1 {
		dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-1), TunicChar, core.ColorTunic)
	}
	if r.H > 2 {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, legRune(p), core.ColorBoots)
	}

	if p.Dead {
		return
	}
	drawSword(dst, v, p.Sword)
}

// KnightHidden reports whether the knight blinks out this frame while
// invincible.
func KnightHidden(p sim.PlayerView) bool {
	return p.Invincible && !p.Dead && int(p.DamageCooldown*flickerRate)%2 == 1
}

// legRune picks a stride from the walk cycle.
func legRune(p sim.PlayerView) rune {
	if !p.OnGround {
		return '╨'
	}
	switch int(p.AnimFrame) {
	case 1:
		return '╱'
	case 3:
		return '╲'
	default:
		return '║'
	}
}

// drawSword samples the blade from hand to tip.
func drawSword(dst *core.Screen, v viewport, s sim.SwordPose) {
	r := bladeRune(s.Angle)
	const samples = 6
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		x, y := v.point(s.HandX+(s.TipX-s.HandX)*t, s.HandY+(s.TipY-s.HandY)*t)
		if v.bounds.Contains(x, y) {
			dst.SetColored(x, y, r, core.ColorSteel)
		}
	}
	if hx, hy := v.point(s.HandX, s.HandY); v.bounds.Contains(hx, hy) {
		dst.SetColored(hx, hy, '+', core.ColorGold)
	}
}

// bladeRune chooses a line character for the blade angle (radians, y up).
func bladeRune(angle float64) rune {
	deg := math.Mod(angle*180/math.Pi+360, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '│'
	default:
		return '╲'
	}
}

func drawHUD(dst *core.Screen, f sim.Frame) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	x := 1
	for _, r := range heartsText(f.Player.Health) {
		color := core.ColorHeart
		if r == EmptyHeart {
			color = core.ColorHeartEmpty
		}
		dst.SetColored(x, 0, r, color)
		x++
	}

	dist := fmt.Sprintf(" Distance: %d ", int(f.Distance))
	dst.DrawTextColored(dst.Width()-len(dist)-1, 0, dist, core.ColorHUD)
}

// heartsText renders health in quarter hearts as seven glyphs.
func heartsText(health float64) string {
	var sb strings.Builder
	for i := range maxHearts {
		switch q := core.Clamp(int(health)-i*4, 0, 4); q {
		case 4:
			sb.WriteRune(HeartChar)
		case 0:
			sb.WriteRune(EmptyHeart)
		default:
			sb.WriteRune(quarterHearts[q])
		}
	}
	return sb.String()
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorWarning)

	dst.DrawTextCentered(boxY+3, subtitle)
}
