package component

import (
	"time"

	"mesoquest/internal/ecs"
)

const CFighter ecs.ComponentType = 4

// AttackVariants is the round-robin order of melee swing animations.
var AttackVariants = [...]string{"attack1", "attack2", "attackF"}

// Fighter is the player's melee state. All times are simulation clock values.
type Fighter struct {
	BaseDamage int
	Damage     int
	// LastAttackAt is when the previous swing started.
	LastAttackAt time.Duration
	// Variant indexes AttackVariants for the next swing.
	Variant int
	// Anim is the swing shown until AnimUntil.
	Anim      string
	AnimUntil time.Duration
	// LastHurtAt throttles contact damage.
	LastHurtAt time.Duration
}

func (Fighter) Type() ecs.ComponentType { return CFighter }
