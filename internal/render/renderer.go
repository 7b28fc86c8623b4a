package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mesoquest/assets"
	"mesoquest/internal/component"
	"mesoquest/internal/game"
)

// HUDRows is the number of rows reserved at the bottom for the HUD, and
// TopRows the rows above the playfield for the quest panel.
const (
	HUDRows = 5
	TopRows = 3
)

// Renderer draws a game snapshot onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	printer *message.Printer
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, 0, 0, TopRows),
		printer: message.NewPrinter(language.English),
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders terrain, entities, panels and the HUD, then shows the
// screen.
func (r *Renderer) DrawFrame(s game.Snapshot) {
	w, h := r.screen.Size()
	r.camera.Fit(s.Map.Width, s.Map.Height, w, max(h-HUDRows-TopRows, 1))
	r.screen.Clear()

	theme := ThemeFor(s.Map.Background)
	r.drawMap(s.Map, theme)
	r.drawEntities(s)
	r.drawQuest(s)
	r.drawPanels(s)
	r.DrawHUD(s)
	r.screen.Show()
}

// drawMap renders the ground line and every floating platform.
func (r *Renderer) drawMap(m game.MapView, theme MapTheme) {
	ground := tcell.StyleDefault.Foreground(theme.GroundColor).Background(theme.Sky)
	if _, sy, ok := r.camera.WorldToScreen(0, m.GroundY); ok {
		for x := 0; x < r.camera.ViewWidth; x++ {
			r.screen.SetContent(x, sy, theme.Ground, nil, ground)
		}
	}
	plat := tcell.StyleDefault.Foreground(theme.PlatformColor).Background(theme.Sky)
	for _, p := range m.Platforms[min(1, len(m.Platforms)):] {
		x0, sy, ok := r.camera.WorldToScreen(p.X, p.Y)
		if !ok {
			continue
		}
		x1, _, _ := r.camera.WorldToScreen(p.Right(), p.Y)
		for x := max(x0, 0); x < min(x1, r.camera.ViewWidth); x++ {
			r.screen.SetContent(x, sy, theme.Platform, nil, plat)
		}
	}
}

// sprite is one glyph to draw, anchored at the bottom center of a box.
type sprite struct {
	order int
	x, y  float64
	glyph string
	style tcell.Style
	// text sprites are drawn rune by rune instead of as one glyph.
	text bool
}

// drawEntities renders the shopkeeper, pickups, mobs, the player and
// damage numbers, ordered by render order.
func (r *Renderer) drawEntities(s game.Snapshot) {
	base := tcell.StyleDefault.Background(ThemeFor(s.Map.Background).Sky)
	sprites := []sprite{{
		order: assets.OrderMob - 1,
		x:     s.Shop.NPC.CenterX(),
		y:     s.Shop.NPC.Bottom() - 1,
		glyph: assets.GlyphShopNPC,
		style: base.Foreground(assets.ColorPanel),
	}}

	for _, m := range s.Mesos {
		g := string(m.Frame)
		if g == "" {
			g = m.Glyph
		}
		sprites = append(sprites, sprite{assets.OrderMesos, m.Body.CenterX(), m.Body.Y + m.Body.H - 1, g, base.Foreground(assets.ColorMesos), false})
	}
	for _, m := range s.Mobs {
		g := string(m.Frame)
		if g == "" {
			g = assets.GlyphMob
			if m.Boss {
				g = assets.GlyphBoss
			}
		}
		st := base.Foreground(assets.ColorMob)
		if m.State == component.MobDie {
			st = st.Dim(true)
		}
		sprites = append(sprites, sprite{assets.OrderMob, m.Body.CenterX(), m.Body.Y + m.Body.H - 1, g, st, false})
	}
	p := s.Player
	pg := string(p.Frame)
	if pg == "" {
		pg = assets.GlyphPlayer
	}
	sprites = append(sprites, sprite{assets.OrderPlayer, p.Body.CenterX(), p.Body.Y + p.Body.H - 1, pg, base.Foreground(assets.ColorPlayer), false})

	for _, t := range s.Texts {
		st := base.Foreground(assets.ColorDamage).Bold(true)
		if t.Fade < 0.5 {
			st = st.Bold(false).Dim(true)
		}
		sprites = append(sprites, sprite{assets.OrderText, t.X, t.Y, r.printer.Sprintf("%d", t.Value), st, true})
	}

	// Sort ascending by render order (lower = drawn first / behind).
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].order < sprites[j].order
	})
	for _, sp := range sprites {
		sx, sy, onScreen := r.camera.WorldToScreen(sp.x, sp.y)
		if !onScreen {
			continue
		}
		sx -= runewidth.StringWidth(sp.glyph) / 2
		if sp.text {
			r.drawText(sx, sy, sp.glyph, sp.style)
			continue
		}
		r.putGlyph(sx, sy, sp.glyph, sp.style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
