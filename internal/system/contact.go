package system

import (
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/ecs"
)

// ContactDamage hurts the player when its sprite box overlaps a living mob,
// at most once per cooldown. Nothing happens once the player is at 0 HP.
// It returns the damage dealt.
func ContactDamage(w *ecs.World, playerID ecs.EntityID, cooldown, now time.Duration) int {
	hc, bc, fc := w.Get(playerID, component.CHealth), w.Get(playerID, component.CBody), w.Get(playerID, component.CFighter)
	if hc == nil || bc == nil || fc == nil {
		return 0
	}
	hp := hc.(component.Health)
	if hp.Current <= 0 {
		return 0
	}
	box := bc.(component.Body).Rect()
	f := fc.(component.Fighter)

	total := 0
	for _, id := range w.Query(component.CMob, component.CBody) {
		m := w.Get(id, component.CMob).(component.Mob)
		if m.Dead || !box.Intersects(w.Get(id, component.CBody).(component.Body).Rect()) {
			continue
		}
		if now-f.LastHurtAt < cooldown {
			continue
		}
		total += hp.Damage(m.Damage)
		f.LastHurtAt = now
	}
	w.Add(playerID, hp)
	w.Add(playerID, f)
	return total
}
