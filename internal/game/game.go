package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"mesoquest/assets"
	"mesoquest/internal/anim"
	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/data"
	"mesoquest/internal/ecs"
	"mesoquest/internal/economy"
	"mesoquest/internal/factory"
	"mesoquest/internal/gamemap"
	"mesoquest/internal/generate"
	"mesoquest/internal/quest"
	"mesoquest/internal/system"
)

// ErrNoQuests is returned when booting without a quest database.
var ErrNoQuests = errors.New("no quest database")

// MaxMessages caps the message log.
const MaxMessages = 50

// Game owns the whole simulation state and is driven by one caller: Tick
// once per frame, intents in between.
type Game struct {
	cfg      config.Config
	log      zerolog.Logger
	rng      *rand.Rand
	stats    data.Registry
	db       *quest.Database
	quests   *quest.State
	world    *ecs.World
	gmap     *gamemap.GameMap
	playerID ecs.EntityID
	frames   *anim.Library

	now         time.Duration
	lastSpawnAt time.Duration
	holdLeft    bool
	holdRight   bool

	invOpen   bool
	statsOpen bool
	shopOpen  bool
	shopTab   int
	shopNPC   gamemap.Rect

	messages    []string
	diagnostics []string
	summary     Summary
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRand sets the random source used for spawns, wander and drops.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithFrames sets the animation frame provider.
func WithFrames(p anim.Provider) Option {
	return func(g *Game) { g.frames = anim.NewLibrary(p, g.cfg.FPS) }
}

// New boots a simulation: it starts the campaign at the database's start
// quest, loads that quest's map, places the player and spawns the first
// batch of mobs. Any failure here is a configuration error.
func New(cfg config.Config, b *data.Bundle, opts ...Option) (*Game, error) {
	if b == nil || b.Quests == nil {
		return nil, fmt.Errorf("boot: %w", ErrNoQuests)
	}
	g := &Game{
		cfg:   cfg,
		log:   zerolog.Nop(),
		stats: b.Stats,
		db:    b.Quests,
	}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	qs, err := quest.NewState(b.Quests)
	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	g.quests = qs
	g.summary = newSummary()

	g.world = ecs.NewWorld()
	g.playerID = factory.NewPlayer(g.world, cfg)
	system.ApplyLevelStats(g.world, g.playerID, cfg.Progression)

	g.loadQuestMap(qs.Active)
	system.PlaceOn(g.world, g.gmap, g.playerID, g.startRef(), cfg.Player.Hitbox)
	if err := g.refreshMobs(); err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}
	g.checkPlayerFrames()

	g.log.Info().
		Str("quest", qs.Active.ID).
		Str("map", g.gmap.Key).
		Int("mobs", system.LivingMobs(g.world)).
		Msg("simulation booted")
	g.addMessage("Arrow keys move, Up jumps, Space attacks. E talks to the shopkeeper.")
	return g, nil
}

// Now returns the simulation clock.
func (g *Game) Now() time.Duration { return g.now }

// Tick advances the simulation by elapsed, capped at the configured max
// step. Sub-phases run in a fixed order: player physics, mob AI, damage
// text aging, pickup physics, touch damage, spawn timer.
func (g *Game) Tick(elapsed time.Duration) {
	step := min(max(elapsed, 0), g.cfg.World.MaxStep)
	g.now += step
	dt := step.Seconds()
	w, cfg := g.world, g.cfg

	system.Steer(w, g.playerID, g.holdLeft, g.holdRight, cfg.Player.Speed)
	system.StepPlayer(w, g.gmap, g.playerID, cfg.Physics, cfg.Player.Hitbox, dt)

	player := g.playerBody()
	system.StepMobs(w, g.gmap, cfg.Mob, g.rng, player, g.now, dt)
	system.TickDamageTexts(w, cfg.DamageText, dt)

	got := system.StepMesos(w, g.gmap, cfg.Mesos, cfg.Physics.Gravity, system.Hitbox(player, cfg.Player.Hitbox), dt)
	if got > 0 {
		wallet := g.wallet()
		economy.Deposit(&wallet, got)
		w.Add(g.playerID, wallet)
		g.summary.MesosEarned += got
	}

	if dmg := system.ContactDamage(w, g.playerID, cfg.Player.TouchCooldown, g.now); dmg > 0 {
		g.summary.DamageTaken += dmg
	}

	g.spawnTick()
}

// spawnTick adds one mob when the spawn interval elapsed and the map has
// room for it.
func (g *Game) spawnTick() {
	if g.quests.Done() || len(g.quests.TargetMobIDs()) == 0 {
		return
	}
	if g.now-g.lastSpawnAt < g.cfg.Spawn.Interval {
		return
	}
	g.lastSpawnAt = g.now
	s, ok := generate.Respawn(g.gmap, g.spawnConfig(), system.LivingMobs(g.world))
	if !ok {
		return
	}
	if _, err := factory.NewMob(g.world, g.cfg.Mob, g.rng, g.stats, g.gmap, s, g.now); err != nil {
		g.log.Warn().Err(err).Msg("respawn failed")
	}
}

func (g *Game) playerBody() component.Body {
	return g.world.Get(g.playerID, component.CBody).(component.Body)
}

func (g *Game) wallet() component.Wallet {
	return g.world.Get(g.playerID, component.CWallet).(component.Wallet)
}

// addMessage appends a line to the message log, dropping the oldest once
// the log is full.
func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > MaxMessages {
		g.messages = g.messages[len(g.messages)-MaxMessages:]
	}
}

// addDiagnostic records a degraded-asset notice.
func (g *Game) addDiagnostic(msg string) {
	g.diagnostics = append(g.diagnostics, msg)
	g.log.Warn().Str("asset", msg).Msg("frames missing")
}

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

func (g *Game) checkPlayerFrames() {
	if g.frames == nil {
		return
	}
	for _, a := range g.frames.CheckPlayer() {
		g.addDiagnostic("PLAYER FRAMES MISSING: " + a)
	}
}

// speciesName resolves a species name for quest text and messages.
func (g *Game) speciesName(id int) string {
	return g.stats.Name(id)
}

func (g *Game) questText() quest.Text {
	return g.quests.Describe(g.speciesName, assets.CampaignDoneTitle, assets.CampaignDoneDesc)
}
