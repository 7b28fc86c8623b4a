package factory

import (
	"fmt"
	"math/rand"
	"time"

	"mesoquest/assets"
	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/data"
	"mesoquest/internal/ecs"
	"mesoquest/internal/economy"
	"mesoquest/internal/gamemap"
	"mesoquest/internal/generate"
	"mesoquest/internal/system"
)

// NewPlayer creates the player entity airborne at the configured start,
// with both cooldowns already elapsed so the first swing and first touch
// land immediately.
func NewPlayer(w *ecs.World, cfg config.Config) ecs.EntityID {
	p := cfg.Player
	id := w.CreateEntity()
	w.Add(id, component.Body{
		X:       p.StartX,
		Y:       cfg.World.GroundY - p.Height,
		W:       p.Width,
		H:       p.Height,
		Facing:  1,
		Footing: gamemap.Airborne,
	})
	w.Add(id, component.Health{Current: p.BaseMaxHP, Max: p.BaseMaxHP})
	w.Add(id, component.Fighter{
		BaseDamage:   p.BaseDamage,
		Damage:       p.BaseDamage,
		LastAttackAt: -p.AttackCooldown,
		LastHurtAt:   -p.TouchCooldown,
		Anim:         "stand",
	})
	w.Add(id, component.Progression{
		Level:     1,
		ExpToNext: system.ExpNeededForLevel(1),
		BaseMaxHP: p.BaseMaxHP,
	})
	w.Add(id, component.Wallet{Owned: make(map[string]int, len(assets.Potions))})
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphPlayer,
		FGColor:     assets.ColorPlayer,
		RenderOrder: assets.OrderPlayer,
	})
	w.Add(id, component.TagPlayer{})
	return id
}

// MobSpeed converts a species speed stat into pixels per second.
func MobSpeed(base, raw float64) float64 {
	factor := 1 + raw/200
	if factor < 0.6 {
		factor = 0.6
	}
	if factor > 1.6 {
		factor = 1.6
	}
	return base * factor
}

// NewMob creates a mob from a spawn plan, standing on its footing. It fails
// when the species has no stats entry.
func NewMob(w *ecs.World, cfg config.Mob, rng *rand.Rand, reg data.Registry, gmap *gamemap.GameMap, s generate.MobSpawn, now time.Duration) (ecs.EntityID, error) {
	stats, ok := reg.Lookup(s.Species)
	if !ok {
		return 0, fmt.Errorf("spawn mob %d: %w", s.Species, data.ErrMissingMobStats)
	}
	dir := system.RandomDir(rng)
	id := w.CreateEntity()
	w.Add(id, component.Body{
		X:       s.X,
		Y:       gmap.SurfaceY(s.Footing) - cfg.Height,
		W:       cfg.Width,
		H:       cfg.Height,
		Facing:  dir,
		Footing: s.Footing,
	})
	w.Add(id, component.Health{Current: stats.MaxHP, Max: stats.MaxHP})
	w.Add(id, component.Mob{
		Species:      s.Species,
		State:        component.MobStand,
		Dir:          dir,
		Speed:        MobSpeed(cfg.BaseSpeed, stats.Speed),
		NextWanderAt: now + system.WanderInterval(rng, cfg),
		Exp:          stats.Exp,
		Damage:       stats.Damage,
	})
	glyph := assets.GlyphMob
	if s.Boss {
		glyph = assets.GlyphBoss
	}
	w.Add(id, component.Renderable{Glyph: glyph, FGColor: assets.ColorMob, RenderOrder: assets.OrderMob})
	return id, nil
}

// NewMeso drops a mesos pickup of the given value at (x, y), tossed upward.
func NewMeso(w *ecs.World, rng *rand.Rand, life time.Duration, x, y float64, value int) ecs.EntityID {
	kind := economy.PickMesoType(value)
	vx, vy := economy.DropVelocity(rng)
	id := w.CreateEntity()
	w.Add(id, component.Body{X: x, Y: y, W: kind.W, H: kind.H, VX: vx, VY: vy, Footing: gamemap.Airborne})
	w.Add(id, component.Meso{Value: value, Kind: kind.Name, Life: life})
	w.Add(id, component.Renderable{Glyph: kind.Glyph, FGColor: assets.ColorMesos, RenderOrder: assets.OrderMesos})
	return id
}

// NewDamageText creates a floating damage number anchored at (x, y).
func NewDamageText(w *ecs.World, life time.Duration, x, y float64, value int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Body{X: x, Y: y, Footing: gamemap.Airborne})
	w.Add(id, component.DamageText{Value: value, Life: life})
	w.Add(id, component.Renderable{Glyph: assets.GlyphDamageText, FGColor: assets.ColorDamage, RenderOrder: assets.OrderText})
	return id
}
