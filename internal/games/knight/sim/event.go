package sim

// EventKind identifies something notable that happened during a frame.
type EventKind int

const (
	EventSwordSwing EventKind = iota
	EventEnemyHit
	EventEnemyDefeated
	EventPlayerHurt
	EventHeartCollected
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSwordSwing:
		return "sword_swing"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventPlayerHurt:
		return "player_hurt"
	case EventHeartCollected:
		return "heart_collected"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Update. X and Y locate the subject; Health is
// the player's health in quarter hearts after the event.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Health float64
}

// Hearts converts the event's health to whole hearts.
func (e Event) Hearts() float64 {
	return e.Health / 4
}
