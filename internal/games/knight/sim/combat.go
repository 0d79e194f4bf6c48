package sim

import (
	"math"

	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// SwordPose is the blade geometry for one frame. The blade pivots at the
// hand and sweeps from StartAngle toward the facing-dependent end angle.
type SwordPose struct {
	Active   bool    // A swing is in progress
	Progress float64 // 0 at swing start, 1 at swing end
	Angle    float64 // Radians, counter-clockwise from +x (screen y is flipped)
	HandX    float64
	HandY    float64
	TipX     float64
	TipY     float64
	Hitbox   core.AABB // Square centred on the tip
	CanHit   bool      // Swing is inside the hit window
}

func swordPose(p *Player, c config.CombatConfig) SwordPose {
	progress := p.SwingProgress()

	start := degToRad(c.StartAngle)
	end := degToRad(c.EndAngleRight)
	handX := p.Right() + c.HandOffsetRight
	if !p.FacingRight {
		end = degToRad(c.EndAngleLeft)
		handX = p.X - c.HandOffsetLeft
	}
	handY := p.Y + c.HandOffsetY

	angle := start + (end-start)*progress
	tipX := handX + math.Cos(angle)*c.SwordLength
	tipY := handY - math.Sin(angle)*c.SwordLength

	half := c.HitboxSize / 2
	return SwordPose{
		Active:   p.Attacking,
		Progress: progress,
		Angle:    angle,
		HandX:    handX,
		HandY:    handY,
		TipX:     tipX,
		TipY:     tipY,
		Hitbox:   core.NewAABB(tipX-half, tipY-half, c.HitboxSize, c.HitboxSize),
		CanHit:   p.Attacking && progress < c.HitWindow,
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// swordHits applies the current swing to every living enemy whose hit flash
// has expired. The flash doubles as the one-hit-per-swing guard.
// It returns the indices of enemies struck this frame.
func swordHits(p *Player, enemies []Enemy, hits []int) []int {
	pose := p.Sword()
	if !pose.CanHit {
		return hits
	}
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive || e.HitFlash > 0 {
			continue
		}
		if pose.Hitbox.Overlaps(e.AABB) {
			e.TakeDamage(p.FacingRight)
			hits = append(hits, i)
		}
	}
	return hits
}

// contactDamage hurts the player on the first living enemy it overlaps.
// At most one enemy deals damage per frame. It returns the index of that
// enemy, or -1.
func contactDamage(p *Player, enemies []Enemy) int {
	if p.Invincible {
		return -1
	}
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive || !p.Overlaps(e.AABB) {
			continue
		}
		p.TakeDamage()
		p.knockBack(e.X)
		return i
	}
	return -1
}
