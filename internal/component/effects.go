package component

import (
	"time"

	"mesoquest/internal/ecs"
)

const CDamageText ecs.ComponentType = 9

// DamageText is a floating damage number.
type DamageText struct {
	Value int
	Life  time.Duration
}

func (DamageText) Type() ecs.ComponentType { return CDamageText }
