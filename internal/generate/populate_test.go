package generate

import (
	"math/rand"
	"testing"

	"mesoquest/internal/config"
	"mesoquest/internal/gamemap"
)

func makeTown() *gamemap.GameMap {
	return gamemap.FromDef("town", gamemap.Def{
		GroundY: 465,
		Platforms: []gamemap.Rect{
			{X: 0, Y: 465, W: 960, H: 75},
			{X: 238, Y: 215, W: 485, H: 18},
			{X: 199, Y: 293, W: 560, H: 18},
			{X: 160, Y: 370, W: 638, H: 18},
		},
	}, 960, 540)
}

func makeBaseConfig(boss bool) *Config {
	return &Config{
		Spawn:   config.Default().Spawn,
		Species: 100100,
		Boss:    boss,
		Rand:    rand.New(rand.NewSource(42)),
	}
}

func TestInitialBatchNormal(t *testing.T) {
	gmap := makeTown()
	spawns := InitialBatch(gmap, makeBaseConfig(false))
	if len(spawns) != 13 {
		t.Fatalf("expected 13 spawns, got %d", len(spawns))
	}
	perPlatform := map[gamemap.PlatformRef]int{}
	for i, s := range spawns {
		if s.Species != 100100 {
			t.Errorf("spawn %d species %d", i, s.Species)
		}
		perPlatform[s.Footing]++
		minX, maxX := gmap.Span(s.Footing)
		if s.X < minX || s.X > maxX {
			t.Errorf("spawn %d at x=%v outside %v..%v", i, s.X, minX, maxX)
		}
	}
	// 10 dealt round-robin over 3 platforms: 4, 3, 3.
	if perPlatform[1] != 4 || perPlatform[2] != 3 || perPlatform[3] != 3 {
		t.Errorf("round robin split = %v", perPlatform)
	}
	if perPlatform[gamemap.OnGround] != 3 {
		t.Errorf("expected 3 roaming mobs, got %d", perPlatform[gamemap.OnGround])
	}
	for i := 0; i < 10; i++ {
		if want := gamemap.PlatformRef(1 + i%3); spawns[i].Footing != want {
			t.Errorf("spawn %d on %v, want %v", i, spawns[i].Footing, want)
		}
	}
}

func TestInitialBatchBoss(t *testing.T) {
	gmap := makeTown()
	spawns := InitialBatch(gmap, makeBaseConfig(true))
	if len(spawns) != 1 {
		t.Fatalf("boss map should start with one mob, got %d", len(spawns))
	}
	s := spawns[0]
	if s.Footing != 0 || !s.Boss {
		t.Errorf("boss spawn = %+v, want ground plane", s)
	}
	if s.X < 100 || s.X > 860 {
		t.Errorf("boss x = %v, want within 100..860", s.X)
	}
}

func TestInitialBatchWithoutFloatingPlatforms(t *testing.T) {
	gmap := gamemap.FromDef("flat", gamemap.Def{GroundY: 465}, 960, 540)
	for _, s := range InitialBatch(gmap, makeBaseConfig(false)) {
		if s.Footing != gamemap.OnGround {
			t.Fatalf("spawn on %v, expected everything to roam", s.Footing)
		}
	}
}

func TestRespawnRespectsCaps(t *testing.T) {
	gmap := makeTown()
	cfg := makeBaseConfig(false)
	if _, ok := Respawn(gmap, cfg, cfg.Spawn.MaxOnScreen); ok {
		t.Error("normal map at cap must not respawn")
	}
	s, ok := Respawn(gmap, cfg, cfg.Spawn.MaxOnScreen-1)
	if !ok {
		t.Fatal("normal map under cap should respawn")
	}
	if s.Footing < 1 || s.Footing > 3 {
		t.Errorf("respawn footing %v, want a floating platform", s.Footing)
	}
	p := gmap.Platforms[s.Footing]
	if s.X < p.X+10 || s.X > p.X+p.W-70 {
		t.Errorf("respawn x %v outside %v..%v", s.X, p.X+10, p.X+p.W-70)
	}

	boss := makeBaseConfig(true)
	if _, ok := Respawn(gmap, boss, 1); ok {
		t.Error("boss map must keep a single mob")
	}
	if s, ok := Respawn(gmap, boss, 0); !ok || s.Footing != 0 {
		t.Errorf("boss respawn = %+v %v", s, ok)
	}
}
