package system

import (
	"math/rand"
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

// StepMobs runs one tick of mob behaviour and then prunes mobs whose death
// animation finished. A mob in hit stun does nothing. An aggroed mob with
// exactly the player's footing chases the player's center; every other
// living mob wanders, picking a random direction whenever its wander timer
// fires. Ground platform 0 is not OnGround, so a boss never chases.
// It returns the number of mobs pruned.
func StepMobs(w *ecs.World, gmap *gamemap.GameMap, cfg config.Mob, rng *rand.Rand, player component.Body, now time.Duration, dt float64) int {
	for _, id := range w.Query(component.CMob, component.CBody) {
		m := w.Get(id, component.CMob).(component.Mob)
		if m.Dead || m.Frozen(now) {
			continue
		}
		b := w.Get(id, component.CBody).(component.Body)

		var dx float64
		if now < m.AggroUntil && b.Footing == player.Footing {
			m.Dir = 1
			if player.CenterX()-b.CenterX() < 0 {
				m.Dir = -1
			}
			dx = float64(m.Dir) * m.Speed * cfg.ChaseMultiplier * dt
		} else {
			if now >= m.NextWanderAt {
				m.Dir = RandomDir(rng)
				m.NextWanderAt = now + WanderInterval(rng, cfg)
			}
			dx = float64(m.Dir) * m.Speed * dt
		}
		b.X += dx

		minX, maxX := gmap.Span(b.Footing)
		maxX -= b.W
		if b.X < minX {
			b.X = minX
			m.Dir = 1
		}
		if b.X > maxX {
			b.X = maxX
			m.Dir = -1
		}
		b.Y = gmap.SurfaceY(b.Footing) - b.H
		b.Facing = m.Dir

		m.State = component.MobStand
		if dx > 0.01 || dx < -0.01 {
			m.State = component.MobMove
		}
		w.Add(id, b)
		w.Add(id, m)
	}
	return PruneMobs(w, now)
}

// PruneMobs destroys dead mobs whose die state has expired.
func PruneMobs(w *ecs.World, now time.Duration) int {
	n := 0
	for _, id := range w.Query(component.CMob) {
		if w.Get(id, component.CMob).(component.Mob).Expired(now) {
			w.DestroyEntity(id)
			n++
		}
	}
	return n
}

// LivingMobs counts mobs that are neither dead nor dying.
func LivingMobs(w *ecs.World) int {
	n := 0
	for _, id := range w.Query(component.CMob) {
		m := w.Get(id, component.CMob).(component.Mob)
		if !m.Dead && m.State != component.MobDie {
			n++
		}
	}
	return n
}

// RandomDir returns -1 or +1 with equal probability.
func RandomDir(rng *rand.Rand) int {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// WanderInterval draws the delay until a mob's next direction change.
func WanderInterval(rng *rand.Rand, cfg config.Mob) time.Duration {
	span := cfg.WanderMax - cfg.WanderMin
	return cfg.WanderMin + time.Duration(rng.Float64()*float64(span))
}
