package system

import (
	"testing"
	"time"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
	"mesoquest/internal/gamemap"
)

func addMeso(w *ecs.World, x, y, vx, vy float64, value int, life time.Duration) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Body{X: x, Y: y, W: 22, H: 22, VX: vx, VY: vy})
	w.Add(id, component.Meso{Value: value, Kind: "mesos1", Life: life})
	return id
}

// farAway is a player hitbox that touches nothing.
var farAway = gamemap.Rect{X: -1000, Y: -1000, W: 1, H: 1}

func TestStepMesosSettlesOnGroundWithDamping(t *testing.T) {
	cfg := config.Default()
	gmap := townMap()
	w := ecs.NewWorld()
	id := addMeso(w, 20, 400, 50, 0, 10, time.Minute)

	landed := false
	for i := 0; i < 120; i++ {
		StepMesos(w, gmap, cfg.Mesos, cfg.Physics.Gravity, farAway, 0.033)
		b := bodyOf(w, id)
		if b.Y+b.H == gmap.GroundY {
			landed = true
			if b.VY != 0 {
				t.Fatalf("resting meso has vy=%v", b.VY)
			}
		}
	}
	if !landed {
		t.Fatal("meso never reached the ground")
	}
	if vx := bodyOf(w, id).VX; vx >= 50*cfg.Mesos.Damping {
		t.Errorf("vx = %v, expected damping below %v", vx, 50*cfg.Mesos.Damping)
	}
}

func TestStepMesosLandsOnPlatformOnlyWhileFalling(t *testing.T) {
	cfg := config.Default()
	gmap := townMap()
	w := ecs.NewWorld()
	// Bottom 2px above platform 3, falling.
	down := addMeso(w, 400, 370-22-2, 0, 100, 10, time.Minute)
	// Bottom 2px below platform 3, rising.
	up := addMeso(w, 450, 370-22+2, 0, -200, 10, time.Minute)

	StepMesos(w, gmap, cfg.Mesos, cfg.Physics.Gravity, farAway, 0.033)

	if b := bodyOf(w, down); b.Y != 370-22 || b.VY != 0 {
		t.Errorf("falling meso: y=%v vy=%v, want y=%v vy=0", b.Y, b.VY, 370-22.0)
	}
	if b := bodyOf(w, up); b.VY >= 0 {
		t.Errorf("rising meso was caught by the platform: vy=%v", b.VY)
	}
}

func TestStepMesosExpiresAndCollects(t *testing.T) {
	cfg := config.Default()
	gmap := townMap()
	w := ecs.NewWorld()
	player := gamemap.Rect{X: 100, Y: 400, W: 22, H: 58}

	expired := addMeso(w, 600, 443, 0, 0, 99, 10*time.Millisecond)
	touching := addMeso(w, 105, 443, 0, 0, 40, time.Minute)
	kept := addMeso(w, 800, 443, 0, 0, 7, time.Minute)
	alsoTouching := addMeso(w, 110, 443, 0, 0, 15, time.Minute)

	got := StepMesos(w, gmap, cfg.Mesos, cfg.Physics.Gravity, player, 0.033)
	if got != 55 {
		t.Errorf("collected %d, want 55", got)
	}
	if w.Alive(expired) || w.Alive(touching) || w.Alive(alsoTouching) {
		t.Error("expired and collected pickups must be removed")
	}
	if !w.Alive(kept) {
		t.Error("untouched pickup was removed")
	}
	if n := w.Count(component.CMeso); n != 1 {
		t.Errorf("remaining pickups = %d, want 1", n)
	}
}

func TestStepMesosExpiredPickupIsNotCollected(t *testing.T) {
	cfg := config.Default()
	gmap := townMap()
	w := ecs.NewWorld()
	player := gamemap.Rect{X: 100, Y: 400, W: 22, H: 58}
	addMeso(w, 105, 443, 0, 0, 40, time.Millisecond)

	if got := StepMesos(w, gmap, cfg.Mesos, cfg.Physics.Gravity, player, 0.033); got != 0 {
		t.Fatalf("collected %d from an expired pickup", got)
	}
}
