package sim

import (
	"math"

	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
)

// HeartPickup restores one heart when touched by a wounded player.
// The float offset is cosmetic; collision uses the resting position.
type HeartPickup struct {
	core.AABB
	Collected   bool
	FloatOffset float64
}

// NewHeartPickup creates a heart with its top-left corner at (x, y).
func NewHeartPickup(cfg config.PickupConfig, x, y float64) HeartPickup {
	return HeartPickup{AABB: core.NewAABB(x, y, cfg.Size, cfg.Size)}
}

// Update recomputes the bobbing offset from the world clock.
func (h *HeartPickup) Update(gameTime float64, cfg config.PickupConfig) {
	h.FloatOffset = math.Sin(gameTime*cfg.FloatSpeed) * cfg.FloatAmplitude
}

// TryCollect heals the player if the heart is available, touching and
// needed. A player at full health leaves the heart in place.
func (h *HeartPickup) TryCollect(p *Player, amount float64) bool {
	if h.Collected || !h.Overlaps(p.AABB) {
		return false
	}
	if !p.Heal(amount) {
		return false
	}
	h.Collected = true
	return true
}
