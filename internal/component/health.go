package component

import "mesoquest/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health invariant: 0 <= Current <= Max.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Damage lowers Current by up to n and returns the amount actually removed.
func (h *Health) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	n = min(n, h.Current)
	h.Current -= n
	return n
}
