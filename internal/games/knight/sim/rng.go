package sim

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// LCG is the 31-bit linear congruential generator that drives level
// placement. The same seed always yields the same level.
type LCG struct {
	state uint32
}

// NewLCG creates a generator. Only the low 31 bits of seed are used.
func NewLCG(seed uint32) LCG {
	return LCG{state: seed & lcgMask}
}

// Next advances the sequence and returns the new 31-bit value.
// uint32 arithmetic wraps mod 2^32, which the mask reduces to mod 2^31.
func (l *LCG) Next() uint32 {
	l.state = (l.state*lcgMultiplier + lcgIncrement) & lcgMask
	return l.state
}

// State returns the last value produced (or the seed before any draw).
func (l LCG) State() uint32 {
	return l.state
}
