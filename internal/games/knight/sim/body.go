// Package sim is the Knight Run simulation: physics, collision, combat,
// level generation and pruning, stepped one frame at a time by World.
//
// Coordinates are world units with y growing downward. Nothing in this
// package draws or reads devices; frontends consume Frame snapshots and feed
// Actions back in.
package sim

import (
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// Body is the kinematic state shared by the player and enemies.
type Body struct {
	core.AABB
	VelX, VelY float64
}

// fall applies gravity up to terminal speed, then integrates position.
func (b *Body) fall(p config.PhysicsConfig) {
	b.VelY += p.Gravity
	if b.VelY > p.MaxFallSpeed {
		b.VelY = p.MaxFallSpeed
	}
	b.X += b.VelX
	b.Y += b.VelY
}

// land resolves collisions against platforms (top face only) and the hard
// floor. It reports whether the body ends the step resting on something.
func (b *Body) land(platforms []Platform, floorY float64) bool {
	grounded := false
	for i := range platforms {
		p := &platforms[i]
		if !b.Overlaps(p.AABB) {
			continue
		}
		if b.VelY > 0 && b.Y < p.Y {
			b.Y = p.Y - b.H
			b.VelY = 0
			grounded = true
		}
	}

	if b.Bottom() > floorY {
		b.Y = floorY - b.H
		b.VelY = 0
		grounded = true
	}
	return grounded
}

// Platform is static level geometry. Only its top face is solid.
type Platform struct {
	core.AABB
}

// NewPlatform creates a platform from its top-left corner and size.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{AABB: core.NewAABB(x, y, w, h)}
}
