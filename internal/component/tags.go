package component

import "mesoquest/internal/ecs"

const CTagPlayer ecs.ComponentType = 10

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
