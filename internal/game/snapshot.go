package game

import (
	"maps"
	"slices"
	"time"

	"mesoquest/internal/anim"
	"mesoquest/internal/component"
	"mesoquest/internal/gamemap"
	"mesoquest/internal/quest"
)

// PlayerView is the player as the presentation layer sees it.
type PlayerView struct {
	Body       component.Body
	HP, MaxHP  int
	Level      int
	Exp        float64
	ExpToNext  int
	Damage     int
	StatPoints int
	STR, VIT   int
	// Anim is the animation tag shown this frame.
	Anim  string
	Frame anim.Frame
}

// MobView is one mob.
type MobView struct {
	Species   int
	Name      string
	Body      component.Body
	HP, MaxHP int
	State     component.MobState
	Boss      bool
	Frame     anim.Frame
}

// MesoView is one mesos pickup.
type MesoView struct {
	Body  component.Body
	Value int
	Kind  string
	Glyph string
	Frame anim.Frame
}

// TextView is one floating damage number.
type TextView struct {
	X, Y  float64
	Value int
	// Fade runs from 1 when spawned to 0 at expiry.
	Fade float64
}

// MapView is the loaded map.
type MapView struct {
	Key        string
	Background string
	Width      float64
	Height     float64
	GroundY    float64
	Platforms  []gamemap.Rect
	Boss       bool
}

// ShopView is the shop window state.
type ShopView struct {
	Open bool
	Tab  int
	NPC  gamemap.Rect
	Near bool
}

// Snapshot is everything a renderer needs after a tick. It shares no
// mutable state with the Game.
type Snapshot struct {
	Now         time.Duration
	Map         MapView
	Player      PlayerView
	Mobs        []MobView
	Mesos       []MesoView
	Texts       []TextView
	Quest       quest.Text
	Wallet      int
	Owned       map[string]int
	Inventory   bool
	Stats       bool
	Shop        ShopView
	Messages    []string
	Diagnostics []string
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	pb := g.playerBody()
	hp := w.Get(g.playerID, component.CHealth).(component.Health)
	f := w.Get(g.playerID, component.CFighter).(component.Fighter)
	p := w.Get(g.playerID, component.CProgression).(component.Progression)
	wallet := g.wallet()

	tag := anim.PlayerTag(f, pb, g.now)
	s := Snapshot{
		Now: g.now,
		Map: MapView{
			Key:        g.gmap.Key,
			Background: g.gmap.Background,
			Width:      g.gmap.Width,
			Height:     g.gmap.Height,
			GroundY:    g.gmap.GroundY,
			Platforms:  slices.Clone(g.gmap.Platforms),
			Boss:       g.gmap.Boss,
		},
		Player: PlayerView{
			Body:       pb,
			HP:         hp.Current,
			MaxHP:      hp.Max,
			Level:      p.Level,
			Exp:        p.Exp,
			ExpToNext:  p.ExpToNext,
			Damage:     f.Damage,
			StatPoints: p.StatPoints,
			STR:        p.STR,
			VIT:        p.VIT,
			Anim:       tag,
		},
		Quest:       g.questText(),
		Wallet:      wallet.Mesos,
		Owned:       maps.Clone(wallet.Owned),
		Inventory:   g.invOpen,
		Stats:       g.statsOpen,
		Shop:        ShopView{Open: g.shopOpen, Tab: g.shopTab, NPC: g.shopNPC, Near: g.NearShop()},
		Messages:    slices.Clone(g.messages),
		Diagnostics: slices.Clone(g.diagnostics),
	}
	if g.frames != nil {
		s.Player.Frame, _ = g.frames.PlayerFrame(tag, g.now)
	}

	for _, id := range w.Query(component.CMob, component.CBody, component.CHealth) {
		m := w.Get(id, component.CMob).(component.Mob)
		h := w.Get(id, component.CHealth).(component.Health)
		v := MobView{
			Species: m.Species,
			Name:    g.speciesName(m.Species),
			Body:    w.Get(id, component.CBody).(component.Body),
			HP:      h.Current,
			MaxHP:   h.Max,
			State:   m.State,
			Boss:    g.gmap.Boss,
		}
		if g.frames != nil {
			v.Frame, _ = g.frames.MobFrame(m.Species, m.State, g.now)
		}
		s.Mobs = append(s.Mobs, v)
	}

	for _, id := range w.Query(component.CMeso, component.CBody) {
		m := w.Get(id, component.CMeso).(component.Meso)
		v := MesoView{Body: w.Get(id, component.CBody).(component.Body), Value: m.Value, Kind: m.Kind}
		if r, ok := w.Get(id, component.CRenderable).(component.Renderable); ok {
			v.Glyph = r.Glyph
		}
		if g.frames != nil {
			v.Frame, _ = g.frames.MesoFrame(m.Kind, g.now)
		}
		s.Mesos = append(s.Mesos, v)
	}

	life := g.cfg.DamageText.Life
	for _, id := range w.Query(component.CDamageText, component.CBody) {
		d := w.Get(id, component.CDamageText).(component.DamageText)
		b := w.Get(id, component.CBody).(component.Body)
		fade := 0.0
		if life > 0 {
			fade = min(1, float64(d.Life)/float64(life))
		}
		s.Texts = append(s.Texts, TextView{X: b.X, Y: b.Y, Value: d.Value, Fade: fade})
	}
	return s
}
