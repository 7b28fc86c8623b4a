package system

import (
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

// Hit describes one mob struck by a swing.
type Hit struct {
	Mob     ecs.EntityID
	Species int
	Damage  int
	// TextX, TextY is where the damage number appears.
	TextX, TextY float64
	Killed       bool
	// DropX, DropY is the mob's center at the moment it died.
	DropX, DropY float64
	Exp          int
}

// AttackResult holds the outcome of one attack intent.
type AttackResult struct {
	Swung bool
	Hits  []Hit
}

// Kills returns the hits that killed their mob, in resolution order.
func (r AttackResult) Kills() []Hit {
	var out []Hit
	for _, h := range r.Hits {
		if h.Killed {
			out = append(out, h)
		}
	}
	return out
}

// MeleeBox returns the attack area in front of a sprite box.
func MeleeBox(b component.Body, reach float64) gamemap.Rect {
	x := b.X + b.W
	if b.Facing < 0 {
		x = b.X - reach
	}
	return gamemap.Rect{X: x, Y: b.Y + 10, W: reach, H: b.H - 20}
}

// Attack swings the player's weapon at now. A swing within the cooldown of
// the previous one does nothing. Every living mob overlapping the melee box
// takes min(damage, hp), gets aggroed and knocked back inside its span, then
// enters the hit or die state.
func Attack(w *ecs.World, gmap *gamemap.GameMap, playerID ecs.EntityID, cfg config.Config, now time.Duration) AttackResult {
	fc := w.Get(playerID, component.CFighter)
	bc := w.Get(playerID, component.CBody)
	if fc == nil || bc == nil {
		return AttackResult{}
	}
	f := fc.(component.Fighter)
	pb := bc.(component.Body)
	if now-f.LastAttackAt < cfg.Player.AttackCooldown {
		return AttackResult{}
	}

	f.LastAttackAt = now
	f.Anim = component.AttackVariants[f.Variant%len(component.AttackVariants)]
	f.AnimUntil = now + cfg.Player.AttackAnim
	f.Variant = (f.Variant + 1) % len(component.AttackVariants)
	w.Add(playerID, f)

	res := AttackResult{Swung: true}
	box := MeleeBox(pb, cfg.Player.AttackReach)
	push := cfg.Mob.Knockback
	if pb.Facing < 0 {
		push = -push
	}

	for _, id := range w.Query(component.CMob, component.CBody, component.CHealth) {
		m := w.Get(id, component.CMob).(component.Mob)
		if m.Dead {
			continue
		}
		b := w.Get(id, component.CBody).(component.Body)
		if !box.Intersects(b.Rect()) {
			continue
		}
		hp := w.Get(id, component.CHealth).(component.Health)
		dealt := hp.Damage(f.Damage)

		m.AggroUntil = now + cfg.Mob.Aggro
		minX, maxX := gmap.Span(b.Footing)
		b.X = clamp(b.X+push, minX, maxX-b.W)

		hit := Hit{
			Mob:     id,
			Species: m.Species,
			Damage:  dealt,
			TextX:   b.CenterX(),
			TextY:   b.Y,
		}
		if hp.Current <= 0 {
			hp.Current = 0
			m.Dead = true
			m.State = component.MobDie
			m.StateUntil = now + cfg.Mob.DieState
			hit.Killed = true
			hit.DropX = b.CenterX()
			hit.DropY = b.Y + b.H/2
			hit.Exp = m.Exp
		} else {
			m.State = component.MobHit
			m.StateUntil = now + cfg.Mob.HitState
		}
		w.Add(id, hp)
		w.Add(id, b)
		w.Add(id, m)
		res.Hits = append(res.Hits, hit)
	}
	return res
}
