package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-knight/internal/core"
)

// Frame is a read-only copy of the world after an update. Renderers draw
// from it and cannot reach back into the World.
type Frame struct {
	CameraX   float64
	Distance  float64
	GameTime  float64
	Platforms []core.AABB
	Enemies   []EnemyView
	Pickups   []PickupView
	Player    PlayerView
}

// EnemyView is an enemy as the renderer sees it.
type EnemyView struct {
	Box         core.AABB
	Alive       bool
	HitFlash    float64
	FacingRight bool
}

// PickupView is a heart pickup as the renderer sees it.
type PickupView struct {
	Box         core.AABB
	FloatOffset float64
	Collected   bool
}

// PlayerView is the knight as the renderer sees it.
type PlayerView struct {
	Box            core.AABB
	VelX, VelY     float64
	FacingRight    bool
	OnGround       bool
	Sword          SwordPose
	Invincible     bool
	DamageCooldown float64
	Health         float64
	MaxHealth      float64
	Dead           bool
	AnimFrame      float64
}

// Frame snapshots the current state.
func (w *World) Frame() Frame {
	f := Frame{
		CameraX:   w.cameraX,
		Distance:  w.distance,
		GameTime:  w.gameTime,
		Platforms: make([]core.AABB, len(w.ents.Platforms)),
		Enemies:   make([]EnemyView, len(w.ents.Enemies)),
		Pickups:   make([]PickupView, len(w.ents.Pickups)),
	}

	for i, p := range w.ents.Platforms {
		f.Platforms[i] = p.AABB
	}
	for i := range w.ents.Enemies {
		e := &w.ents.Enemies[i]
		f.Enemies[i] = EnemyView{
			Box:         e.AABB,
			Alive:       e.Alive,
			HitFlash:    e.HitFlash,
			FacingRight: e.FacingRight(),
		}
	}
	for i, h := range w.ents.Pickups {
		f.Pickups[i] = PickupView{
			Box:         h.AABB,
			FloatOffset: h.FloatOffset,
			Collected:   h.Collected,
		}
	}

	p := &w.player
	f.Player = PlayerView{
		Box:            p.AABB,
		VelX:           p.VelX,
		VelY:           p.VelY,
		FacingRight:    p.FacingRight,
		OnGround:       p.OnGround,
		Sword:          p.Sword(),
		Invincible:     p.Invincible,
		DamageCooldown: p.DamageCooldown,
		Health:         p.Health,
		MaxHealth:      p.MaxHealth,
		Dead:           p.Dead,
		AnimFrame:      p.AnimFrame,
	}
	return f
}

// Checksum hashes every position, velocity and flag in the frame with
// FNV-64a. Two runs that agree bit for bit produce the same checksum.
func (f Frame) Checksum() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putB := func(v bool) {
		if v {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	putBox := func(b core.AABB) {
		putF(b.X)
		putF(b.Y)
		putF(b.W)
		putF(b.H)
	}

	putF(f.CameraX)
	putF(f.Distance)
	putF(f.GameTime)

	for _, p := range f.Platforms {
		putBox(p)
	}
	for _, e := range f.Enemies {
		putBox(e.Box)
		putB(e.Alive)
		putF(e.HitFlash)
	}
	for _, pk := range f.Pickups {
		putBox(pk.Box)
		putB(pk.Collected)
	}

	p := f.Player
	putBox(p.Box)
	putF(p.VelX)
	putF(p.VelY)
	putB(p.FacingRight)
	putB(p.OnGround)
	putB(p.Sword.Active)
	putF(p.Sword.Progress)
	putB(p.Invincible)
	putF(p.DamageCooldown)
	putF(p.Health)
	putB(p.Dead)

	return h.Sum64()
}

// Hearts returns the player's health in whole hearts (fractional).
func (p PlayerView) Hearts() float64 {
	return p.Health / 4
}
