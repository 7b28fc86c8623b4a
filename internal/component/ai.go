package component

import (
	"time"

	"mesoquest/internal/ecs"
)

const CMob ecs.ComponentType = 7

// MobState is the animation/behaviour state of a mob. Hit and Die are timed;
// Stand and Move are derived every tick from movement.
type MobState uint8

const (
	MobStand MobState = iota
	MobMove
	MobHit
	MobDie
)

var mobStateNames = [...]string{"stand", "move", "hit", "die"}

func (s MobState) String() string {
	if int(s) < len(mobStateNames) {
		return mobStateNames[s]
	}
	return "stand"
}

type Mob struct {
	Species    int
	State      MobState
	StateUntil time.Duration
	// Dir is the walking direction, +1 or -1.
	Dir          int
	Speed        float64
	NextWanderAt time.Duration
	AggroUntil   time.Duration
	Dead         bool
	Exp          int
	Damage       int
}

func (Mob) Type() ecs.ComponentType { return CMob }

// Frozen reports whether the mob is in a hit stun at now.
func (m Mob) Frozen(now time.Duration) bool {
	return m.State == MobHit && now < m.StateUntil
}

// Expired reports whether a dead mob finished its death animation.
func (m Mob) Expired(now time.Duration) bool {
	return m.Dead && m.State == MobDie && now >= m.StateUntil
}
