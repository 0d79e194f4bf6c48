package sim

import (
	"math"

	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// Player is the knight. Health is counted in quarter hearts.
type Player struct {
	Body
	OnGround       bool
	FacingRight    bool
	Attacking      bool
	AttackCooldown float64 // Seconds left in the current swing
	Health         float64
	MaxHealth      float64
	AnimFrame      float64 // Walk cycle phase in [0, AnimationFrames)
	Invincible     bool
	DamageCooldown float64 // Seconds left of damage immunity
	Dead           bool

	cfg *config.KnightConfig
}

// NewPlayer creates a knight at the configured start position.
func NewPlayer(cfg *config.KnightConfig) Player {
	pc := cfg.Player
	return Player{
		Body: Body{
			AABB: core.NewAABB(pc.StartX, pc.StartY, pc.Width, pc.Height),
		},
		FacingRight: true,
		Health:      pc.StartHealth,
		MaxHealth:   pc.MaxHealth,
		cfg:         cfg,
	}
}

// MoveLeft sets the horizontal velocity to full speed leftward.
func (p *Player) MoveLeft() {
	p.VelX = -p.cfg.Player.Speed
	p.FacingRight = false
}

// MoveRight sets the horizontal velocity to full speed rightward.
func (p *Player) MoveRight() {
	p.VelX = p.cfg.Player.Speed
	p.FacingRight = true
}

// Jump launches the player if standing on something.
func (p *Player) Jump() {
	if p.OnGround {
		p.VelY = -p.cfg.Player.JumpPower
	}
}

// Attack starts a sword swing unless one is still cooling down.
// It reports whether a new swing began.
func (p *Player) Attack() bool {
	if p.AttackCooldown > 0 {
		return false
	}
	p.Attacking = true
	p.AttackCooldown = p.cfg.Combat.AttackDuration
	return true
}

// Update advances the player one frame: gravity, integration, landing,
// cooldowns, friction and the walk cycle.
func (p *Player) Update(delta float64, platforms []Platform) {
	if p.Dead {
		return
	}
	phys := p.cfg.Physics

	p.fall(phys)
	p.OnGround = p.land(platforms, phys.FloorY)

	elapsed := delta * phys.TimeScale
	if p.AttackCooldown > 0 {
		p.AttackCooldown -= elapsed
		if p.AttackCooldown <= 0 {
			p.Attacking = false
			p.AttackCooldown = 0
		}
	}
	if p.DamageCooldown > 0 {
		p.DamageCooldown -= elapsed
		if p.DamageCooldown <= 0 {
			p.Invincible = false
			p.DamageCooldown = 0
		}
	}

	p.VelX *= phys.Friction

	if math.Abs(p.VelX) > phys.StoppedThreshold {
		p.AnimFrame += p.cfg.Player.AnimationStep
		if p.AnimFrame >= p.cfg.Player.AnimationFrames {
			p.AnimFrame = 0
		}
	} else {
		p.AnimFrame = 0
	}
}

// TakeDamage removes one hit's worth of health and starts the immunity
// window. It is a no-op while immune or dead and reports whether it applied.
func (p *Player) TakeDamage() bool {
	if p.Invincible || p.DamageCooldown > 0 || p.Dead {
		return false
	}

	p.Health -= p.cfg.Player.Damage
	p.Invincible = true
	p.DamageCooldown = p.cfg.Player.Invincibility

	if p.Health <= 0 {
		p.Health = 0
		p.Dead = true
	}
	return true
}

// Heal restores health up to the maximum. Nothing happens at full health,
// and the return value says so, so callers can leave a pickup in place.
func (p *Player) Heal(amount float64) bool {
	if p.Dead || p.Health >= p.MaxHealth {
		return false
	}
	p.Health = min(p.Health+amount, p.MaxHealth)
	return true
}

// knockBack pushes the player away from an attacker at attackerX.
func (p *Player) knockBack(attackerX float64) {
	if p.X < attackerX {
		p.VelX = -p.cfg.Player.KnockbackX
	} else {
		p.VelX = p.cfg.Player.KnockbackX
	}
	p.VelY = -p.cfg.Player.KnockbackY
}

// SwingProgress returns how far through the current swing the player is,
// from 0 at the start to 1 at the end. It is 0 when not attacking.
func (p *Player) SwingProgress() float64 {
	if !p.Attacking {
		return 0
	}
	return 1 - p.AttackCooldown/p.cfg.Combat.AttackDuration
}

// Sword returns the current blade geometry.
func (p *Player) Sword() SwordPose {
	return swordPose(p, p.cfg.Combat)
}
