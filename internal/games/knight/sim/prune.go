package sim

// Prune removes everything that has fallen behind line. Survivors keep
// their spawn order and the freed tail slots are zeroed.
//
// A platform goes once its right edge is at or behind the line. Enemies go
// once their x is at or behind it, living or dead. Hearts go when collected
// or behind the line.
func Prune(line float64, ents *Entities) {
	platforms := ents.Platforms[:0]
	for _, p := range ents.Platforms {
		if p.Right() > line {
			platforms = append(platforms, p)
		}
	}
	clear(ents.Platforms[len(platforms):])
	ents.Platforms = platforms

	enemies := ents.Enemies[:0]
	for _, e := range ents.Enemies {
		if e.X > line {
			enemies = append(enemies, e)
		}
	}
	clear(ents.Enemies[len(enemies):])
	ents.Enemies = enemies

	pickups := ents.Pickups[:0]
	for _, h := range ents.Pickups {
		if !h.Collected && h.X > line {
			pickups = append(pickups, h)
		}
	}
	clear(ents.Pickups[len(pickups):])
	ents.Pickups = pickups
}
