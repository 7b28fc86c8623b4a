package assets

// MesoType is a visual bucket for a mesos pickup.
type MesoType struct {
	Name     string
	Min, Max int
	Frames   int
	W, H     float64
	Glyph    string
}

// MesoTypes are ordered by value. Values outside every range use the last one.
var MesoTypes = []MesoType{
	{Name: "mesos1", Min: 1, Max: 49, Frames: 4, W: 22, H: 22, Glyph: "🪙"},
	{Name: "mesos2", Min: 50, Max: 199, Frames: 4, W: 22, H: 22, Glyph: "💰"},
	{Name: "mesos3", Min: 200, Max: 600, Frames: 4, W: 24, H: 24, Glyph: "💎"},
	{Name: "mesos4", Min: 601, Max: 2000, Frames: 4, W: 30, H: 28, Glyph: "👜"},
}
