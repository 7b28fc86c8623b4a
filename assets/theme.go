package assets

import "github.com/gdamore/tcell/v2"

// Placeholder glyphs drawn when no animation frame is available.
const (
	GlyphPlayer     = "🧙"
	GlyphMob        = "👾"
	GlyphBoss       = "🐲"
	GlyphShopNPC    = "🧑"
	GlyphDamageText = "✸"
	GlyphPlatform   = '═'
	GlyphGround     = '▀'
)

// Palette used by the terminal renderer.
var (
	ColorPlayer   = tcell.ColorYellow
	ColorMob      = tcell.ColorRed
	ColorMesos    = tcell.ColorGold
	ColorDamage   = tcell.ColorOrange
	ColorPlatform = tcell.ColorSaddleBrown
	ColorGround   = tcell.ColorDarkGreen
	ColorPanel    = tcell.ColorLightSkyBlue
	ColorMessage  = tcell.ColorLightGray
)

// Render orders; higher draws on top.
const (
	OrderMesos  = 2
	OrderMob    = 5
	OrderPlayer = 10
	OrderText   = 20
)

// PlayerFrames are the terminal frames of each player animation.
var PlayerFrames = map[string][]string{
	"stand":       {"🧙"},
	"walk":        {"🚶", "🏃"},
	"jump":        {"🤸"},
	"attack1":     {"🗡"},
	"attack2":     {"⚔"},
	"attackF":     {"💥"},
	"climbRope":   {"🧗"},
	"climbLadder": {"🧗"},
}

// MobGlyphs are per-species glyphs; other species use GlyphMob.
var MobGlyphs = map[int]string{
	100100:  "🐌",
	1210102: "🍄",
	6130101: "🍄",
	9999999: "🪆",
}

// Glyphs for the hit and die animations of every species.
const (
	GlyphMobHit = "💢"
	GlyphMobDie = "💀"
)
