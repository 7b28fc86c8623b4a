package system

import (
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

// townMap is the stock layout: ground plus three stacked floating platforms.
func townMap() *gamemap.GameMap {
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

// addPlayer creates a player with the default tuning at the given sprite origin.
func addPlayer(w *ecs.World, cfg config.Config, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Body{X: x, Y: y, W: cfg.Player.Width, H: cfg.Player.Height, Facing: 1, Footing: gamemap.Airborne})
	w.Add(id, component.Health{Current: cfg.Player.BaseMaxHP, Max: cfg.Player.BaseMaxHP})
	w.Add(id, component.Fighter{
		BaseDamage:   cfg.Player.BaseDamage,
		Damage:       cfg.Player.BaseDamage,
		LastAttackAt: -cfg.Player.AttackCooldown,
		LastHurtAt:   -cfg.Player.TouchCooldown,
	})
	w.Add(id, component.Progression{Level: 1, ExpToNext: ExpNeededForLevel(1), BaseMaxHP: cfg.Player.BaseMaxHP})
	w.Add(id, component.TagPlayer{})
	return id
}

// addMob creates a 20x20 mob standing on ref at x.
func addMob(w *ecs.World, gmap *gamemap.GameMap, ref gamemap.PlatformRef, x float64, hp int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Body{X: x, Y: gmap.SurfaceY(ref) - 20, W: 20, H: 20, Facing: 1, Footing: ref})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Mob{
		Species:      100100,
		Dir:          1,
		Speed:        40,
		NextWanderAt: time.Hour,
		Exp:          5,
		Damage:       1,
	})
	return id
}

func bodyOf(w *ecs.World, id ecs.EntityID) component.Body {
	return w.Get(id, component.CBody).(component.Body)
}

func mobOf(w *ecs.World, id ecs.EntityID) component.Mob {
	return w.Get(id, component.CMob).(component.Mob)
}

func healthOf(w *ecs.World, id ecs.EntityID) component.Health {
	return w.Get(id, component.CHealth).(component.Health)
}
