package system

import (
	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

// StepMesos moves every mesos pickup, ages it and collects the ones touching
// the player's hitbox. Expired pickups are removed before the pickup test.
// It returns the total value collected this tick.
func StepMesos(w *ecs.World, gmap *gamemap.GameMap, cfg config.Mesos, gravity float64, player gamemap.Rect, dt float64) int {
	collected := 0
	step := secondsToDuration(dt)
	for _, id := range w.Query(component.CMeso, component.CBody) {
		b := w.Get(id, component.CBody).(component.Body)
		m := w.Get(id, component.CMeso).(component.Meso)

		prevBottom := b.Y + b.H
		b.VY += gravity * cfg.GravityScale * dt
		b.X += b.VX * dt
		b.Y += b.VY * dt

		if b.VY >= 0 {
			nowBottom := b.Y + b.H
			for _, ref := range gmap.Floating() {
				p := gmap.Platforms[ref]
				withinX := b.X+b.W > p.X && b.X < p.Right()
				if withinX && prevBottom <= p.Y && nowBottom >= p.Y {
					b.Y = p.Y - b.H
					b.VY = 0
					b.VX *= cfg.Damping
					break
				}
			}
		}
		if b.Y+b.H >= gmap.GroundY {
			b.Y = gmap.GroundY - b.H
			b.VY = 0
			b.VX *= cfg.Damping
		}

		m.Life -= step
		if m.Life <= 0 {
			w.DestroyEntity(id)
			continue
		}
		if player.Intersects(b.Rect()) {
			collected += m.Value
			w.DestroyEntity(id)
			continue
		}
		w.Add(id, b)
		w.Add(id, m)
	}
	return collected
}
