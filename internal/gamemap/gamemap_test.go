package gamemap

import "testing"

func testMap() *GameMap {
	return FromDef("town", Def{
		GroundY: 465,
		Platforms: []Rect{
			{X: 0, Y: 465, W: 960, H: 75},
			{X: 238, Y: 215, W: 485, H: 18},
			{X: 199, Y: 293, W: 560, H: 18},
			{X: 160, Y: 370, W: 638, H: 18},
		},
	}, 960, 540)
}

func TestRectIntersectsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, c := range cases {
		if got := a.Intersects(c.other); got != c.want {
			t.Errorf("%s: Intersects=%v, want %v", c.name, got, c.want)
		}
		if got := c.other.Intersects(a); got != c.want {
			t.Errorf("%s (swapped): Intersects=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestSpanAndSurface(t *testing.T) {
	m := testMap()

	minX, maxX := m.Span(2)
	if minX != 199 || maxX != 759 {
		t.Errorf("Span(2) = %v..%v, want 199..759", minX, maxX)
	}
	minX, maxX = m.Span(OnGround)
	if minX != 0 || maxX != 960 {
		t.Errorf("Span(OnGround) = %v..%v, want 0..960", minX, maxX)
	}
	if y := m.SurfaceY(3); y != 370 {
		t.Errorf("SurfaceY(3) = %v, want 370", y)
	}
	if y := m.SurfaceY(OnGround); y != 465 {
		t.Errorf("SurfaceY(OnGround) = %v, want 465", y)
	}
	if _, ok := m.Platform(Airborne); ok {
		t.Error("Airborne must not resolve to a platform")
	}
	if _, ok := m.Platform(9); ok {
		t.Error("out-of-range index must not resolve")
	}
}

func TestFloatingSkipsGround(t *testing.T) {
	m := testMap()
	refs := m.Floating()
	if len(refs) != 3 || refs[0] != 1 || refs[2] != 3 {
		t.Fatalf("Floating() = %v, want [1 2 3]", refs)
	}
}

func TestFromDefWithoutPlatformsSynthesizesGround(t *testing.T) {
	m := FromDef("empty", Def{GroundY: 400}, 960, 540)
	if len(m.Platforms) != 1 {
		t.Fatalf("expected a synthesized ground plane, got %d platforms", len(m.Platforms))
	}
	if g := m.Ground(); g.Y != 400 || g.W != 960 {
		t.Errorf("unexpected ground %+v", g)
	}
}
