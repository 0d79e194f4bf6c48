package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-knight/internal/config"
)

// scriptedInput is a fixed, busy input pattern used by determinism tests.
func scriptedInput(frame int) Actions {
	return Actions{
		Right:  frame%120 < 90,
		Left:   frame%120 >= 100,
		Jump:   frame%45 == 0,
		Attack: frame%30 < 3,
	}
}

func TestWorldStartingState(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 0)

	if w.Seed() != 1 {
		t.Errorf("Seed() = %d, expected configured seed 1", w.Seed())
	}
	p := w.Player()
	if p.X != 100 || p.Y != 300 || p.Health != 28 {
		t.Errorf("player starts at (%v, %v) with %v health", p.X, p.Y, p.Health)
	}
	if len(w.ents.Platforms) != 8 {
		t.Errorf("starting platforms = %d, expected 3 fixed + 5 generated", len(w.ents.Platforms))
	}
	if len(w.ents.Enemies) != 1 {
		t.Errorf("starting enemies = %d, expected 1", len(w.ents.Enemies))
	}
	if w.Frontier() < w.CameraX()+1200 {
		t.Errorf("Frontier() = %v, expected the level generated ahead", w.Frontier())
	}
}

func TestWorldDeterminism(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	w1 := NewWorld(cfg, 4242)
	w2 := NewWorld(cfg, 4242)

	for i := range 1500 {
		in := scriptedInput(i)
		w1.Update(1, in)
		w2.Update(1, in)

		if c1, c2 := w1.Frame().Checksum(), w2.Frame().Checksum(); c1 != c2 {
			t.Fatalf("checksums diverged at frame %d: %x vs %x", i, c1, c2)
		}
	}

	if !reflect.DeepEqual(w1.Frame(), w2.Frame()) {
		t.Error("final frames differ")
	}
	if w1.Stats() != w2.Stats() {
		t.Errorf("stats differ: %+v vs %+v", w1.Stats(), w2.Stats())
	}
}

func TestWorldSeedsDiffer(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	a := NewWorld(cfg, 1).Frame().Checksum()
	b := NewWorld(cfg, 2).Frame().Checksum()
	if a == b {
		t.Error("different seeds should generate different levels")
	}
}

func TestWorldResetRestoresStart(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	w := NewWorld(cfg, 9)
	start := w.Frame().Checksum()

	for i := range 300 {
		w.Update(1, scriptedInput(i))
	}
	w.Reset(9)

	if got := w.Frame().Checksum(); got != start {
		t.Errorf("Reset() checksum = %x, expected %x", got, start)
	}
	if w.Stats() != (Stats{}) {
		t.Errorf("Reset() stats = %+v, expected zero", w.Stats())
	}
}

func TestWorldHealthInvariants(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	cfg.Player.StartHealth = 6
	w := NewWorld(cfg, 77)

	died := false
	for i := range 5000 {
		w.Update(1, scriptedInput(i))
		p := w.Player()
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("frame %d: health %v out of bounds", i, p.Health)
		}
		if died && !p.Dead {
			t.Fatalf("frame %d: player revived", i)
		}
		if p.Dead && p.Health != 0 {
			t.Fatalf("frame %d: dead with health %v", i, p.Health)
		}
		died = died || p.Dead
	}
}

func TestWorldDeathShortCircuits(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	cfg.Player.StartHealth = 1
	cfg.World.Enemies = []config.EnemySpawn{{X: 100, Y: 300, PatrolRange: 80}}
	w := NewWorld(cfg, 1)

	w.Update(1, Actions{})
	if !w.Dead() {
		t.Fatal("player should die on first contact with one quarter heart")
	}
	kinds := eventKinds(w.Events())
	if !reflect.DeepEqual(kinds, []EventKind{EventPlayerHurt, EventGameOver}) {
		t.Errorf("events = %v, expected [player_hurt game_over]", kinds)
	}

	before := w.Frame()
	for range 10 {
		w.Update(1, Actions{Right: true, Jump: true, Attack: true})
	}
	if !reflect.DeepEqual(w.Frame(), before) {
		t.Error("updates after death should change nothing")
	}
	if len(w.Events()) != 0 {
		t.Errorf("events after death = %v, expected none", eventKinds(w.Events()))
	}
}

func TestWorldInvincibilityUnderContinuousContact(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	cfg.World.Platforms = []config.PlatformConfig{{X: 0, Y: 450, Width: 100000, Height: 50}}
	cfg.World.Enemies = nil
	for x := 20.0; x < 300; x += 15 {
		cfg.World.Enemies = append(cfg.World.Enemies, config.EnemySpawn{X: x, Y: 423, PatrolRange: 200})
	}
	w := NewWorld(cfg, 1)

	prev := w.Player().Health
	var losses []int
	for i := range 400 {
		w.Update(1, Actions{})
		if h := w.Player().Health; h < prev {
			if prev-h != 1 {
				t.Fatalf("frame %d: lost %v in one frame", i, prev-h)
			}
			losses = append(losses, i)
			prev = h
		}
	}

	if len(losses) < 2 {
		t.Fatalf("losses at %v, expected repeated contact damage", losses)
	}
	for i := 1; i < len(losses); i++ {
		if gap := losses[i] - losses[i-1]; gap < 63 {
			t.Errorf("damage %d frames apart (frames %d, %d), expected at least 63", gap, losses[i-1], losses[i])
		}
	}
}

func TestWorldAttackEvents(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 1)
	w.ents.Enemies = nil

	w.Update(1, Actions{Attack: true})
	if kinds := eventKinds(w.Events()); !reflect.DeepEqual(kinds, []EventKind{EventSwordSwing}) {
		t.Errorf("events = %v, expected [sword_swing]", kinds)
	}

	// Holding attack does not start a new swing until the first ends.
	frames := 1
	for w.Player().Attacking {
		w.Update(1, Actions{Attack: false})
		frames++
	}
	if frames != 25 {
		t.Errorf("swing lasted %d frames, expected 25", frames)
	}
}

func TestWorldSwordDefeatsEnemy(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 1)
	for range 60 {
		w.Update(1, Actions{})
	}
	w.ents.Enemies = nil

	p := w.Player()
	p.Attack()
	pose := p.Sword()
	// Park the enemy where the blade will be after one frame of travel.
	w.ents.Enemies = append(w.ents.Enemies, NewEnemy(&w.cfg, pose.TipX-5, pose.TipY-5, 0.001))

	w.Update(1, Actions{Attack: true})

	kinds := eventKinds(w.Events())
	if !reflect.DeepEqual(kinds, []EventKind{EventSwordSwing, EventEnemyDefeated}) {
		t.Fatalf("events = %v, expected [sword_swing enemy_defeated]", kinds)
	}
	e := w.ents.Enemies[0]
	if e.Alive || e.HitFlash != 1.0 || e.VelX != -8 {
		t.Errorf("enemy after hit: Alive=%v HitFlash=%v VelX=%v", e.Alive, e.HitFlash, e.VelX)
	}
	if w.Stats().EnemiesDefeated != 1 {
		t.Errorf("EnemiesDefeated = %d, expected 1", w.Stats().EnemiesDefeated)
	}
}

func TestWorldPickupAtFullHealthStays(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 1)
	w.ents.Enemies = nil
	p := w.Player()
	w.ents.Pickups = []HeartPickup{NewHeartPickup(w.cfg.Pickup, p.X, p.Y)}

	w.Update(1, Actions{})

	if len(w.ents.Pickups) != 1 || w.ents.Pickups[0].Collected {
		t.Fatal("pickup at full health should stay uncollected")
	}
	if w.Player().Health != 28 {
		t.Errorf("Health = %v, expected 28", w.Player().Health)
	}

	w.player.Health = 26
	w.Update(1, Actions{})

	if w.Player().Health != 28 {
		t.Errorf("Health = %v, expected healed and clamped to 28", w.Player().Health)
	}
	if len(w.ents.Pickups) != 0 {
		t.Error("collected pickup should be pruned")
	}
	if w.Stats().HeartsCollected != 1 {
		t.Errorf("HeartsCollected = %d, expected 1", w.Stats().HeartsCollected)
	}
	if kinds := eventKinds(w.Events()); !reflect.DeepEqual(kinds, []EventKind{EventHeartCollected}) {
		t.Errorf("events = %v, expected [heart_collected]", kinds)
	}
}

func TestWorldCameraAndDistance(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 1)
	w.ents.Enemies = nil

	for range 200 {
		w.Update(1, Actions{Right: true})
		p := w.Player()
		if w.CameraX() != max(p.X-400, 0) {
			t.Fatalf("CameraX() = %v, expected %v", w.CameraX(), max(p.X-400, 0))
		}
		if w.Frontier() < w.CameraX()+1200 {
			t.Fatalf("Frontier() = %v fell behind camera %v", w.Frontier(), w.CameraX())
		}
	}
	far := w.Distance()

	for range 50 {
		w.Update(1, Actions{Left: true})
	}
	if w.Distance() != far {
		t.Errorf("Distance() = %v, expected running max %v", w.Distance(), far)
	}
}

func TestWorldPrunesBehindCamera(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 11)

	for i := range 3000 {
		w.Update(1, Actions{Right: true, Jump: i%20 == 0})
		line := w.CameraX() - 500
		for _, p := range w.ents.Platforms {
			if p.Right() <= line {
				t.Fatalf("frame %d: platform ending at %v survived line %v", i, p.Right(), line)
			}
		}
		for _, e := range w.ents.Enemies {
			if e.X <= line {
				t.Fatalf("frame %d: enemy at %v survived line %v", i, e.X, line)
			}
		}
		if w.Dead() {
			break
		}
	}
}

func TestFrameIsACopy(t *testing.T) {
	w := NewWorld(config.DefaultKnightConfig(), 1)
	f := w.Frame()
	sum := f.Checksum()

	f.Platforms[0].X = -999
	f.Enemies[0].Alive = false

	if w.ents.Platforms[0].X == -999 || !w.ents.Enemies[0].Alive {
		t.Error("mutating a Frame should not touch the world")
	}
	if w.Frame().Checksum() != sum {
		t.Error("world checksum changed after mutating a Frame copy")
	}
	if f.Checksum() == sum {
		t.Error("Checksum() should reflect the mutated frame")
	}
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}

func TestWorldFixedPresetSpawnsEnemies(t *testing.T) {
	cfg := config.DefaultKnightConfig()
	config.ApplyKnightPreset(&cfg, config.DifficultyFixed)
	w := NewWorld(cfg, 1)

	spawned := len(w.ents.Enemies)
	for range 3000 {
		before := len(w.ents.Enemies)
		w.Update(1, Actions{Right: true, Jump: true})
		if n := len(w.ents.Enemies); n > before {
			spawned += n - before
		}
		if w.Dead() {
			break
		}
	}
	if w.Difficulty() != config.FixedLevel {
		t.Errorf("Difficulty() = %v, expected %v", w.Difficulty(), config.FixedLevel)
	}
	// The opening section holds one enemy; the rest come from the generator.
	if spawned <= len(cfg.World.Enemies) {
		t.Errorf("spawned %d enemies, expected generated ones too", spawned)
	}
}
