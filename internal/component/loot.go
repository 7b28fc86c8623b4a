package component

import (
	"time"

	"mesoquest/internal/ecs"
)

const CMeso ecs.ComponentType = 8

// Meso is a dropped currency pickup.
type Meso struct {
	Value int
	// Kind is the visual bucket ("mesos1".."mesos4").
	Kind string
	Life time.Duration
}

func (Meso) Type() ecs.ComponentType { return CMeso }
