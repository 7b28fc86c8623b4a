package system

import (
	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

// Hitbox returns the player's collision box for a sprite box at b.
func Hitbox(b component.Body, hb config.Hitbox) gamemap.Rect {
	return gamemap.Rect{X: b.X + hb.OffsetX, Y: b.Y + hb.OffsetY, W: hb.W, H: hb.H}
}

// StepPlayer integrates one tick of player motion and resolves landing.
// Floating platforms are tried in list order and the first landing wins;
// the ground line is only checked when no platform caught the player.
func StepPlayer(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, phys config.Physics, hb config.Hitbox, dt float64) {
	c := w.Get(id, component.CBody)
	if c == nil {
		return
	}
	b := c.(component.Body)
	prevFeet := Hitbox(b, hb).Bottom()

	b.X += b.VX * dt
	b.VY += phys.Gravity * dt
	b.Y += b.VY * dt
	b.X = clamp(b.X, 0, gmap.Width-b.W)

	b.Footing = gamemap.Airborne
	box := Hitbox(b, hb)
	nowFeet := box.Bottom()
	for _, ref := range gmap.Floating() {
		p := gmap.Platforms[ref]
		withinX := box.Right() > p.X && box.X < p.Right()
		if !withinX {
			continue
		}
		crossed := b.VY > 0 && prevFeet <= p.Y && nowFeet >= p.Y
		resting := nowFeet >= p.Y && nowFeet <= p.Y+phys.SnapBand && b.VY >= phys.GlueMinVY
		if crossed || resting {
			b.Y = p.Y - hb.H - hb.OffsetY + hb.FootPad
			b.VY = 0
			b.Footing = ref
			break
		}
	}

	if b.Footing == gamemap.Airborne && nowFeet >= gmap.GroundY {
		b.Y = gmap.GroundY - hb.H - hb.OffsetY
		b.VY = 0
		b.Footing = gamemap.OnGround
	}
	w.Add(id, b)
}

// Steer sets the player's horizontal speed from the held direction keys.
// Right wins when both are held. Facing only changes while a key is held.
func Steer(w *ecs.World, id ecs.EntityID, left, right bool, speed float64) {
	c := w.Get(id, component.CBody)
	if c == nil {
		return
	}
	b := c.(component.Body)
	b.VX = 0
	if left {
		b.VX = -speed
		b.Facing = -1
	}
	if right {
		b.VX = speed
		b.Facing = 1
	}
	w.Add(id, b)
}

// Jump launches the player if it is standing on something. It reports
// whether the jump happened.
func Jump(w *ecs.World, id ecs.EntityID, phys config.Physics) bool {
	c := w.Get(id, component.CBody)
	if c == nil {
		return false
	}
	b := c.(component.Body)
	if !b.OnGround() {
		return false
	}
	b.VY = -phys.JumpVelocity
	b.Footing = gamemap.Airborne
	w.Add(id, b)
	return true
}

// PlaceOn stands the player on ref, keeping its x.
func PlaceOn(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, ref gamemap.PlatformRef, hb config.Hitbox) {
	c := w.Get(id, component.CBody)
	if c == nil {
		return
	}
	b := c.(component.Body)
	b.Y = gmap.SurfaceY(ref) - hb.OffsetY - hb.H
	b.VY = 0
	b.Footing = ref
	if ref == 0 {
		b.Footing = gamemap.OnGround
	}
	w.Add(id, b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
