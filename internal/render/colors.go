package render

import (
	"github.com/gdamore/tcell/v2"

	"mesoquest/assets"
)

// MapTheme holds the glyphs and colours used to draw one map's terrain.
// Terminals cannot show the background image, so each background
// reference picks a theme instead.
type MapTheme struct {
	Sky           tcell.Color
	Ground        rune
	GroundColor   tcell.Color
	Platform      rune
	PlatformColor tcell.Color
}

// DefaultTheme is used for backgrounds without a theme of their own.
var DefaultTheme = MapTheme{
	Sky:           tcell.ColorBlack,
	Ground:        assets.GlyphGround,
	GroundColor:   assets.ColorGround,
	Platform:      assets.GlyphPlatform,
	PlatformColor: assets.ColorPlatform,
}

// Themes maps a background reference to its theme.
var Themes = map[string]MapTheme{
	// Farm: wheat fields on brown boards.
	"maps/farm.png": {
		Sky:           tcell.ColorBlack,
		Ground:        '▀',
		GroundColor:   tcell.ColorOlive,
		Platform:      '═',
		PlatformColor: tcell.ColorSaddleBrown,
	},
	// Forest: mossy logs.
	"maps/forest.png": {
		Sky:           tcell.ColorBlack,
		Ground:        '▀',
		GroundColor:   tcell.ColorDarkGreen,
		Platform:      '▬',
		PlatformColor: tcell.ColorForestGreen,
	},
	// Boss clearing: scorched earth.
	"maps/clearing.png": {
		Sky:           tcell.ColorBlack,
		Ground:        '▓',
		GroundColor:   tcell.ColorMaroon,
		Platform:      '═',
		PlatformColor: tcell.ColorDarkRed,
	},
}

// ThemeFor returns the theme of a background reference.
func ThemeFor(bg string) MapTheme {
	if t, ok := Themes[bg]; ok {
		return t
	}
	return DefaultTheme
}
