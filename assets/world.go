package assets

import (
	"embed"
	"io/fs"

	"mesoquest/internal/gamemap"
)

//go:embed data
var embedded embed.FS

// DefaultData is the bundled campaign: data/quests.json and
// data/mobs_stats.json.
func DefaultData() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Data file names inside a data directory.
const (
	QuestsFile    = "quests.json"
	MobStatsFile  = "mobs_stats.json"
	StatsFallback = "stats/mobs_stats.json"
)

// Quest panel text shown once the chain is finished.
const (
	CampaignDoneTitle = "All quests completed!"
	CampaignDoneDesc  = "You finished the quest chain."
)

// FallbackMapKey names FallbackMap.
const FallbackMapKey = "town"

// FallbackMap is the world used until a quest names a map of its own.
var FallbackMap = gamemap.Def{
	GroundY: 465,
	Platforms: []gamemap.Rect{
		{X: 0, Y: 465, W: 960, H: 75},
		{X: 238, Y: 215, W: 485, H: 18},
		{X: 199, Y: 293, W: 560, H: 18},
		{X: 160, Y: 370, W: 638, H: 18},
	},
}
