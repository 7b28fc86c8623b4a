package gamemap

import "fmt"

// Rect is an axis-aligned rectangle in world pixels. Y grows downwards.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Intersects reports whether r overlaps other. Edges that merely touch do
// not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// PlatformRef says what an entity is standing on. Non-negative values index
// GameMap.Platforms.
type PlatformRef int

const (
	// Airborne means the entity is not supported by anything.
	Airborne PlatformRef = -2
	// OnGround means the entity rests on the ground line (or roams it, for mobs).
	OnGround PlatformRef = -1
)

// Grounded reports whether the ref names a support.
func (p PlatformRef) Grounded() bool { return p != Airborne }

func (p PlatformRef) String() string {
	switch p {
	case Airborne:
		return "airborne"
	case OnGround:
		return "ground"
	}
	return fmt.Sprintf("platform#%d", int(p))
}

// GameMap is the static level geometry. Platforms[0] is always the ground
// plane; the rest are one-sided floating platforms.
type GameMap struct {
	Key        string
	Width      float64
	Height     float64
	GroundY    float64
	Platforms  []Rect
	Background string
	Boss       bool
}

// Ground returns the ground plane rectangle.
func (m *GameMap) Ground() Rect {
	if len(m.Platforms) == 0 {
		return Rect{X: 0, Y: m.GroundY, W: m.Width, H: m.Height - m.GroundY}
	}
	return m.Platforms[0]
}

// Floating returns the indices of the floating platforms.
func (m *GameMap) Floating() []PlatformRef {
	if len(m.Platforms) < 2 {
		return nil
	}
	refs := make([]PlatformRef, 0, len(m.Platforms)-1)
	for i := 1; i < len(m.Platforms); i++ {
		refs = append(refs, PlatformRef(i))
	}
	return refs
}

// Platform returns the rectangle behind ref. ok is false for Airborne,
// OnGround and out-of-range indices.
func (m *GameMap) Platform(ref PlatformRef) (Rect, bool) {
	if ref < 0 || int(ref) >= len(m.Platforms) {
		return Rect{}, false
	}
	return m.Platforms[ref], true
}

// Span returns the horizontal range an entity supported by ref may occupy.
// Anything that is not a platform spans the whole world.
func (m *GameMap) Span(ref PlatformRef) (minX, maxX float64) {
	if p, ok := m.Platform(ref); ok {
		return p.X, p.Right()
	}
	return 0, m.Width
}

// SurfaceY returns the top of whatever ref names.
func (m *GameMap) SurfaceY(ref PlatformRef) float64 {
	if p, ok := m.Platform(ref); ok {
		return p.Y
	}
	return m.GroundY
}

// Def is the authoring format of one map.
type Def struct {
	Background string  `json:"bgPath" yaml:"bg_path" jsonschema:"description=Background image reference"`
	GroundY    float64 `json:"groundY" yaml:"ground_y"`
	Platforms  []Rect  `json:"platforms" yaml:"platforms" jsonschema:"minItems=1"`
	Boss       bool    `json:"boss,omitempty" yaml:"boss" jsonschema:"description=Boss maps host a single mob and drop bigger mesos"`
}

// FromDef builds a GameMap of the given world size from a definition.
func FromDef(key string, d Def, width, height float64) *GameMap {
	m := &GameMap{
		Key:        key,
		Width:      width,
		Height:     height,
		GroundY:    d.GroundY,
		Background: d.Background,
		Boss:       d.Boss,
	}
	m.Platforms = append([]Rect(nil), d.Platforms...)
	if len(m.Platforms) == 0 {
		m.Platforms = []Rect{{X: 0, Y: d.GroundY, W: width, H: height - d.GroundY}}
	}
	return m
}
