package sim

import "github.com/vovakirdan/tui-knight/internal/config"

// Entities holds every live object in the level, in spawn order.
type Entities struct {
	Platforms []Platform
	Enemies   []Enemy
	Pickups   []HeartPickup
}

// Generator places platforms, enemies and hearts ahead of the camera.
// Each placement consumes two LCG draws, so a given seed always produces
// the same level no matter how the frames that trigger generation are split.
type Generator struct {
	cfg        *config.KnightConfig
	difficulty *config.DifficultyManager
	rng        LCG
	frontier   float64
}

// NewGenerator creates a generator whose frontier starts at the configured
// end of the opening section.
func NewGenerator(cfg *config.KnightConfig, difficulty *config.DifficultyManager, seed uint32) *Generator {
	return &Generator{
		cfg:        cfg,
		difficulty: difficulty,
		rng:        NewLCG(seed),
		frontier:   cfg.World.StartFrontier,
	}
}

// Frontier returns the x coordinate up to which the level exists.
func (g *Generator) Frontier() float64 {
	return g.frontier
}

// Seed returns the current generator state.
func (g *Generator) Seed() uint32 {
	return g.rng.State()
}

// Fill generates until the frontier reaches GenerateAhead past cameraX.
// Calling it again with the same camera position adds nothing.
// It returns the number of platforms added.
func (g *Generator) Fill(cameraX, distance float64, ents *Entities) int {
	target := cameraX + g.cfg.World.GenerateAhead
	added := 0
	for g.frontier < target {
		g.place(distance, ents)
		added++
	}
	return added
}

// place emits one platform and its optional enemy and heart.
func (g *Generator) place(distance float64, ents *Entities) {
	gc := g.cfg.Generator

	r := g.rng.Next()
	gap := gc.GapMin + float64(r%gc.GapRange)
	width := gc.WidthMin + float64(r%gc.WidthRange)
	y := gc.HeightBase + float64(r%gc.HeightRange) - float64(gc.HeightRange/2)
	x := g.frontier + gap + width/2

	ents.Platforms = append(ents.Platforms, NewPlatform(x, y, width, gc.PlatformHeight))

	// The threshold may exceed 100 at high difficulty, which makes the
	// spawn certain.
	threshold := uint32(gc.EnemyChance * g.difficulty.Multiplier(distance))
	if r%100 < threshold {
		ents.Enemies = append(ents.Enemies,
			NewEnemy(g.cfg, x+width/4, y-gc.EnemyOffsetY, width*gc.PatrolRatio))
	}

	if g.rng.Next()%100 < gc.HeartChance {
		ents.Pickups = append(ents.Pickups, NewHeartPickup(g.cfg.Pickup, x, y-gc.HeartOffsetY))
	}

	g.frontier = x + width/2
}
