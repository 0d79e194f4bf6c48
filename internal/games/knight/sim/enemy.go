package sim

import (
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// Enemy is a goblin patrolling a fixed stretch of ground.
type Enemy struct {
	Body
	Health      int
	PatrolStart float64
	PatrolEnd   float64
	Alive       bool
	HitFlash    float64 // 1.0 on hit, decays toward 0

	cfg *config.KnightConfig
}

// NewEnemy creates an enemy at (x, y) patrolling patrolRange centred on x.
func NewEnemy(cfg *config.KnightConfig, x, y, patrolRange float64) Enemy {
	ec := cfg.Enemy
	return Enemy{
		Body: Body{
			AABB: core.NewAABB(x, y, ec.Width, ec.Height),
			VelX: ec.Speed,
		},
		Health:      ec.Health,
		PatrolStart: x - patrolRange/2,
		PatrolEnd:   x + patrolRange/2,
		Alive:       true,
		cfg:         cfg,
	}
}

// Update advances a living enemy one frame. Dead enemies are frozen.
func (e *Enemy) Update(delta float64, platforms []Platform) {
	if !e.Alive {
		return
	}

	if e.HitFlash > 0 {
		e.HitFlash -= delta * e.cfg.Enemy.HitFlashDecay
	}

	e.fall(e.cfg.Physics)

	if e.X <= e.PatrolStart || e.X >= e.PatrolEnd {
		e.VelX = -e.VelX
	}

	e.land(platforms, e.cfg.Physics.FloorY)
}

// TakeDamage always applies: there is no immunity window for enemies.
// A knight facing right knocks the enemy left and vice versa.
// It reports whether the hit killed the enemy.
func (e *Enemy) TakeDamage(attackerFacingRight bool) bool {
	e.Health--
	e.HitFlash = e.cfg.Enemy.HitFlash

	if attackerFacingRight {
		e.VelX = -e.cfg.Enemy.KnockbackX
	} else {
		e.VelX = e.cfg.Enemy.KnockbackX
	}
	e.VelY = -e.cfg.Enemy.KnockbackY

	if e.Health <= 0 {
		e.Alive = false
		return true
	}
	return false
}

// FacingRight derives facing from the direction of travel.
func (e *Enemy) FacingRight() bool {
	return e.VelX >= 0
}
