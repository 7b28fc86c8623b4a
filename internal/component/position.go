package component

import (
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

const CBody ecs.ComponentType = 1

// Body is an entity's sprite box and velocity in world pixels.
type Body struct {
	X, Y, W, H float64
	VX, VY     float64
	// Facing is +1 (right) or -1 (left).
	Facing int
	// Footing is the support under the entity. For mobs it is the platform
	// they patrol (OnGround when roaming the ground).
	Footing gamemap.PlatformRef
}

func (Body) Type() ecs.ComponentType { return CBody }

// Rect returns the sprite box.
func (b Body) Rect() gamemap.Rect {
	return gamemap.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// OnGround reports whether the body is supported.
func (b Body) OnGround() bool { return b.Footing.Grounded() }

// CenterX returns the horizontal center of the sprite box.
func (b Body) CenterX() float64 { return b.X + b.W/2 }
