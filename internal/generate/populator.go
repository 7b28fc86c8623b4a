package generate

import (
	"math/rand"

	"mesoquest/internal/config"
	"mesoquest/internal/gamemap"
)

// Config controls mob placement for one map.
type Config struct {
	Spawn config.Spawn
	// Species is the mob every spawn uses.
	Species int
	// Boss maps host a single mob on the ground plane.
	Boss bool
	Rand *rand.Rand
}

// MobSpawn describes one mob to create.
type MobSpawn struct {
	Species int
	X       float64
	Footing gamemap.PlatformRef
	Boss    bool
}

// InitialBatch places the mobs a map starts with. A boss map gets one mob
// on the ground plane. Other maps get the floating quota dealt round-robin
// across the floating platforms plus the roaming quota on the ground.
func InitialBatch(gmap *gamemap.GameMap, cfg *Config) []MobSpawn {
	if cfg.Boss {
		return []MobSpawn{bossSpawn(gmap, cfg)}
	}
	var out []MobSpawn
	floating := gmap.Floating()
	for i := 0; i < cfg.Spawn.InitialFloating; i++ {
		if len(floating) == 0 {
			out = append(out, roamSpawn(gmap, cfg))
			continue
		}
		ref := floating[i%len(floating)]
		p := gmap.Platforms[ref]
		x := p.X + 30 + cfg.Rand.Float64()*(p.W-90)
		out = append(out, MobSpawn{Species: cfg.Species, X: x, Footing: ref})
	}
	for i := 0; i < cfg.Spawn.InitialRoaming; i++ {
		out = append(out, roamSpawn(gmap, cfg))
	}
	return out
}

// Respawn returns the mob to add when the timer fires with alive mobs on
// the map, or false when the map is full.
func Respawn(gmap *gamemap.GameMap, cfg *Config, alive int) (MobSpawn, bool) {
	if cfg.Boss {
		if alive >= 1 {
			return MobSpawn{}, false
		}
		return bossSpawn(gmap, cfg), true
	}
	if alive >= cfg.Spawn.MaxOnScreen {
		return MobSpawn{}, false
	}
	floating := gmap.Floating()
	if len(floating) == 0 {
		return roamSpawn(gmap, cfg), true
	}
	ref := floating[cfg.Rand.Intn(len(floating))]
	p := gmap.Platforms[ref]
	x := p.X + 10 + cfg.Rand.Float64()*(p.W-80)
	return MobSpawn{Species: cfg.Species, X: x, Footing: ref}, true
}

func bossSpawn(gmap *gamemap.GameMap, cfg *Config) MobSpawn {
	g := gmap.Ground()
	x := g.X + 100 + cfg.Rand.Float64()*(g.W-200)
	return MobSpawn{Species: cfg.Species, X: x, Footing: 0, Boss: true}
}

func roamSpawn(gmap *gamemap.GameMap, cfg *Config) MobSpawn {
	x := 30 + cfg.Rand.Float64()*(gmap.Width-60)
	return MobSpawn{Species: cfg.Species, X: x, Footing: gamemap.OnGround}
}
