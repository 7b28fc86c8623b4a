package system

import (
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
)

// TickDamageTexts floats every damage number upwards and removes the ones
// whose life ran out.
func TickDamageTexts(w *ecs.World, cfg config.DamageText, dt float64) {
	step := secondsToDuration(dt)
	for _, id := range w.Query(component.CDamageText, component.CBody) {
		b := w.Get(id, component.CBody).(component.Body)
		d := w.Get(id, component.CDamageText).(component.DamageText)
		b.Y -= cfg.Rise * dt
		d.Life -= step
		if d.Life <= 0 {
			w.DestroyEntity(id)
			continue
		}
		w.Add(id, b)
		w.Add(id, d)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
