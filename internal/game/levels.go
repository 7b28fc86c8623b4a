package game

import (
	"fmt"

	"mesoquest/assets"
	"mesoquest/internal/component"
	"mesoquest/internal/factory"
	"mesoquest/internal/gamemap"
	"mesoquest/internal/generate"
	"mesoquest/internal/quest"
	"mesoquest/internal/system"
)

// StartPlatform is the platform index the player lands on when a normal
// quest's map loads.
const StartPlatform gamemap.PlatformRef = 3

// loadQuestMap swaps in the map of q. A quest without a map, or naming one
// the database lacks, keeps the current map; before any map is loaded that
// is the fallback town.
func (g *Game) loadQuestMap(q *quest.Quest) {
	if g.gmap == nil {
		g.gmap = gamemap.FromDef(assets.FallbackMapKey, assets.FallbackMap, g.cfg.World.Width, g.cfg.World.Height)
	}
	if q != nil && q.Map != "" {
		def, ok := g.db.Maps[q.Map]
		if ok {
			g.gmap = gamemap.FromDef(q.Map, def, g.cfg.World.Width, g.cfg.World.Height)
		} else {
			g.addDiagnostic(fmt.Sprintf("Map not found: %s", q.Map))
		}
	}
	npc := assets.ShopNPCBox(g.cfg.Shop, g.gmap.GroundY)
	g.shopNPC = gamemap.Rect{X: npc.X, Y: npc.Y, W: npc.W, H: npc.H}
	g.log.Debug().Str("map", g.gmap.Key).Bool("boss", g.gmap.Boss).Int("platforms", len(g.gmap.Platforms)).Msg("map loaded")
}

// startRef is where the player stands after a map swap: the ground plane
// on boss maps, the fourth platform otherwise, or the ground when the map
// has fewer platforms than that.
func (g *Game) startRef() gamemap.PlatformRef {
	if g.gmap.Boss || int(StartPlatform) >= len(g.gmap.Platforms) {
		return 0
	}
	return StartPlatform
}

func (g *Game) spawnConfig() *generate.Config {
	cfg := &generate.Config{
		Spawn: g.cfg.Spawn,
		Boss:  g.gmap.Boss,
		Rand:  g.rng,
	}
	if targets := g.quests.TargetMobIDs(); len(targets) > 0 {
		cfg.Species = targets[0]
	}
	return cfg
}

// refreshMobs prepares frames for the active quest's targets, clears every
// mob and spawns the quest's initial batch. It fails when a target species
// has no stats.
func (g *Game) refreshMobs() error {
	g.diagnostics = g.diagnostics[:0]
	targets := g.quests.TargetMobIDs()
	for _, id := range targets {
		st, ok := g.stats.Lookup(id)
		if !ok {
			g.addDiagnostic(fmt.Sprintf("Missing stats for mob %d.", id))
			continue
		}
		if g.frames != nil && !g.frames.Loaded(id) {
			for _, miss := range g.frames.LoadMob(id, st.Framebooks) {
				g.addDiagnostic("MOB FRAMES MISSING: " + miss)
			}
		}
	}

	g.world.Reset(component.CMob)
	// The first spawn check after a refresh fires on the next tick.
	g.lastSpawnAt = g.now - g.cfg.Spawn.Interval
	if len(targets) == 0 {
		return nil
	}
	for _, s := range generate.InitialBatch(g.gmap, g.spawnConfig()) {
		if _, err := factory.NewMob(g.world, g.cfg.Mob, g.rng, g.stats, g.gmap, s, g.now); err != nil {
			return err
		}
	}
	return nil
}

// completeQuest finishes the active quest, grants its reward and advances
// the campaign. The world swap is left to enterActiveQuest so a swing that
// completes a quest finishes resolving against the old mob set first.
func (g *Game) completeQuest() {
	t := g.quests.Complete()
	if t.Completed == nil {
		return
	}
	g.summary.QuestsCompleted++
	g.addMessage(fmt.Sprintf("Quest complete: %s", t.Completed.Title))
	g.grantExp(t.RewardExp)

	ev := g.log.Info().Str("quest", t.Completed.ID).Float64("reward_exp", t.RewardExp)
	if t.Next == nil {
		ev.Msg("campaign finished")
		g.addMessage(assets.CampaignDoneTitle)
		return
	}
	ev.Str("next", t.Next.ID).Msg("quest completed")
}

// enterActiveQuest swaps in the active quest's map, places the player and
// replaces the mob set. With the campaign finished it only clears the mobs.
func (g *Game) enterActiveQuest() {
	if q := g.quests.Active; q != nil {
		g.loadQuestMap(q)
		system.PlaceOn(g.world, g.gmap, g.playerID, g.startRef(), g.cfg.Player.Hitbox)
	}
	if err := g.refreshMobs(); err != nil {
		g.log.Error().Err(err).Msg("mob refresh failed")
		g.addDiagnostic(err.Error())
	}
}
