package render

import (
	"strconv"

	"mesoquest/assets"
	"mesoquest/internal/anim"
	"mesoquest/internal/data"
)

// GlyphFrames serves terminal glyphs as animation frames. Mob frame counts
// come from each species' framebooks; a species without framebooks only
// has a stand animation.
type GlyphFrames struct {
	stats data.Registry
}

// NewGlyphFrames returns a provider backed by the species registry.
func NewGlyphFrames(stats data.Registry) *GlyphFrames {
	return &GlyphFrames{stats: stats}
}

func (p *GlyphFrames) Count(kind anim.Kind, key, name string) int {
	switch kind {
	case anim.KindPlayer:
		return len(assets.PlayerFrames[name])
	case anim.KindMob:
		id, err := strconv.Atoi(key)
		if err != nil {
			return 0
		}
		st, ok := p.stats.Lookup(id)
		if !ok {
			return 0
		}
		if st.Framebooks == nil {
			if name == "stand" {
				return 1
			}
			return 0
		}
		return st.Framebooks[name]
	case anim.KindMeso:
		if name != "spin" {
			return 0
		}
		for _, t := range assets.MesoTypes {
			if t.Name == key {
				return t.Frames
			}
		}
	}
	return 0
}

func (p *GlyphFrames) Frame(kind anim.Kind, key, name string, index int) (anim.Frame, bool) {
	if index < 0 || index >= p.Count(kind, key, name) {
		return "", false
	}
	switch kind {
	case anim.KindPlayer:
		return anim.Frame(assets.PlayerFrames[name][index]), true
	case anim.KindMob:
		switch {
		case len(name) >= 3 && name[:3] == "hit":
			return assets.GlyphMobHit, true
		case len(name) >= 3 && name[:3] == "die":
			return assets.GlyphMobDie, true
		}
		id, _ := strconv.Atoi(key)
		if g, ok := assets.MobGlyphs[id]; ok {
			return anim.Frame(g), true
		}
		return assets.GlyphMob, true
	}
	for _, t := range assets.MesoTypes {
		if t.Name == key {
			return anim.Frame(t.Glyph), true
		}
	}
	return "", false
}
