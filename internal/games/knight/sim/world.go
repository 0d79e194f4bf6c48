package sim

import "github.com/vovakirdan/tui-knight/internal/config"

// Stats counts what happened during a run.
type Stats struct {
	Frames          int
	EnemiesDefeated int
	HeartsCollected int
}

// World owns the whole simulation and advances it one frame per Update.
// It is not safe for concurrent use; each session owns its own World.
type World struct {
	cfg        config.KnightConfig
	difficulty *config.DifficultyManager
	gen        *Generator
	player     Player
	ents       Entities
	cameraX    float64
	distance   float64
	gameTime   float64
	seed       uint32
	stats      Stats
	events     []Event
	hits       []int
}

// NewWorld creates a world from cfg. A zero seed uses the configured one.
func NewWorld(cfg config.KnightConfig, seed uint32) *World {
	w := &World{cfg: cfg}
	w.Reset(seed)
	return w
}

// Reset rebuilds the opening section and regenerates the level ahead of
// the camera. A zero seed uses the configured one.
func (w *World) Reset(seed uint32) {
	seed &= lcgMask
	if seed == 0 {
		seed = w.cfg.World.Seed & lcgMask
	}
	w.seed = seed

	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)
	w.gen = NewGenerator(&w.cfg, w.difficulty, seed)
	w.player = NewPlayer(&w.cfg)

	w.ents = Entities{}
	for _, p := range w.cfg.World.Platforms {
		w.ents.Platforms = append(w.ents.Platforms, NewPlatform(p.X, p.Y, p.Width, p.Height))
	}
	for _, e := range w.cfg.World.Enemies {
		w.ents.Enemies = append(w.ents.Enemies, NewEnemy(&w.cfg, e.X, e.Y, e.PatrolRange))
	}

	w.cameraX = 0
	w.distance = 0
	w.gameTime = 0
	w.stats = Stats{}
	w.events = w.events[:0]

	w.gen.Fill(w.cameraX, w.distance, &w.ents)
}

// Update advances the world by delta frames (1.0 at 60 FPS) with the given
// held input. Once the player is dead it does nothing.
func (w *World) Update(delta float64, in Actions) {
	w.events = w.events[:0]
	p := &w.player
	if p.Dead {
		return
	}

	w.gameTime += delta
	w.stats.Frames++

	if in.Left {
		p.MoveLeft()
	}
	if in.Right {
		p.MoveRight()
	}
	if in.Jump {
		p.Jump()
	}
	if in.Attack && p.Attack() {
		w.emit(EventSwordSwing, p.X, p.Y)
	}

	p.Update(delta, w.ents.Platforms)
	for i := range w.ents.Enemies {
		w.ents.Enemies[i].Update(delta, w.ents.Platforms)
	}

	for i := range w.ents.Pickups {
		h := &w.ents.Pickups[i]
		h.Update(w.gameTime, w.cfg.Pickup)
		if h.TryCollect(p, w.cfg.Player.HealAmount) {
			w.stats.HeartsCollected++
			w.emit(EventHeartCollected, h.X, h.Y)
		}
	}

	w.hits = swordHits(p, w.ents.Enemies, w.hits[:0])
	for _, i := range w.hits {
		e := &w.ents.Enemies[i]
		if e.Alive {
			w.emit(EventEnemyHit, e.X, e.Y)
			continue
		}
		w.stats.EnemiesDefeated++
		w.emit(EventEnemyDefeated, e.X, e.Y)
	}

	if i := contactDamage(p, w.ents.Enemies); i >= 0 {
		w.emit(EventPlayerHurt, p.X, p.Y)
		if p.Dead {
			w.emit(EventGameOver, p.X, p.Y)
		}
	}

	w.cameraX = max(p.X-w.cfg.World.CameraLead, 0)
	w.distance = max(w.distance, p.X)

	w.gen.Fill(w.cameraX, w.distance, &w.ents)
	Prune(w.cameraX-w.cfg.World.CleanupBehind, &w.ents)
}

func (w *World) emit(kind EventKind, x, y float64) {
	w.events = append(w.events, Event{Kind: kind, X: x, Y: y, Health: w.player.Health})
}

// Events returns what happened during the last Update. The slice is reused
// by the next Update.
func (w *World) Events() []Event {
	return w.events
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Dead reports whether the run is over.
func (w *World) Dead() bool {
	return w.player.Dead
}

// CameraX returns the left edge of the view in world units.
func (w *World) CameraX() float64 {
	return w.cameraX
}

// Distance returns the furthest x the player has reached.
func (w *World) Distance() float64 {
	return w.distance
}

// GameTime returns the accumulated frame delta.
func (w *World) GameTime() float64 {
	return w.gameTime
}

// Seed returns the seed the current run started from.
func (w *World) Seed() uint32 {
	return w.seed
}

// Stats returns run counters.
func (w *World) Stats() Stats {
	return w.stats
}

// Difficulty returns the current generator difficulty multiplier.
func (w *World) Difficulty() float64 {
	return w.difficulty.Multiplier(w.distance)
}

// Frontier returns how far ahead the level has been generated.
func (w *World) Frontier() float64 {
	return w.gen.Frontier()
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.KnightConfig {
	return w.cfg
}
