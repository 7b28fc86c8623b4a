// Package config holds the simulation's tuning constants and loads YAML
// overrides for them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// World describes the fixed playfield.
type World struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
	// MaxStep caps the elapsed time integrated by one tick.
	MaxStep time.Duration `yaml:"max_step"`
}

// Hitbox is the collision box relative to the player's sprite origin.
type Hitbox struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	FootPad float64 `yaml:"foot_pad"`
}

type Player struct {
	StartX         float64       `yaml:"start_x"`
	Width          float64       `yaml:"width"`
	Height         float64       `yaml:"height"`
	Speed          float64       `yaml:"speed"`
	BaseDamage     int           `yaml:"base_damage"`
	BaseMaxHP      int           `yaml:"base_max_hp"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	AttackAnim     time.Duration `yaml:"attack_anim"`
	AttackReach    float64       `yaml:"attack_reach"`
	TouchCooldown  time.Duration `yaml:"touch_cooldown"`
	Hitbox         Hitbox        `yaml:"hitbox"`
}

type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	// SnapBand is how far below a platform top the feet may rest and still
	// count as standing on it.
	SnapBand float64 `yaml:"snap_band"`
	// GlueMinVY is the most negative vertical speed that still keeps the
	// player glued to the platform under its feet.
	GlueMinVY float64 `yaml:"glue_min_vy"`
}

type Mob struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	BaseSpeed       float64       `yaml:"base_speed"`
	WanderMin       time.Duration `yaml:"wander_min"`
	WanderMax       time.Duration `yaml:"wander_max"`
	HitState        time.Duration `yaml:"hit_state"`
	DieState        time.Duration `yaml:"die_state"`
	Aggro           time.Duration `yaml:"aggro"`
	ChaseMultiplier float64       `yaml:"chase_multiplier"`
	Knockback       float64       `yaml:"knockback"`
}

type Spawn struct {
	Interval        time.Duration `yaml:"interval"`
	MaxOnScreen     int           `yaml:"max_on_screen"`
	InitialFloating int           `yaml:"initial_floating"`
	InitialRoaming  int           `yaml:"initial_roaming"`
}

// DropRange is an inclusive mesos value range.
type DropRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type Mesos struct {
	GravityScale float64       `yaml:"gravity_scale"`
	Damping      float64       `yaml:"damping"`
	Life         time.Duration `yaml:"life"`
	Normal       DropRange     `yaml:"normal"`
	Boss         DropRange     `yaml:"boss"`
}

type DamageText struct {
	Rise float64       `yaml:"rise"`
	Life time.Duration `yaml:"life"`
}

type Progression struct {
	StatPointsPerLevel int `yaml:"stat_points_per_level"`
	HPPerVIT           int `yaml:"hp_per_vit"`
	DamagePerSTR       int `yaml:"damage_per_str"`
}

// Rect mirrors gamemap.Rect without importing it.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type Shop struct {
	NPC Rect `yaml:"npc"`
	// Lift is the gap between the NPC's feet and the ground line.
	Lift float64 `yaml:"lift"`
}

// Config is the full set of tuning constants.
type Config struct {
	World       World       `yaml:"world"`
	Player      Player      `yaml:"player"`
	Physics     Physics     `yaml:"physics"`
	Mob         Mob         `yaml:"mob"`
	Spawn       Spawn       `yaml:"spawn"`
	Mesos       Mesos       `yaml:"mesos"`
	DamageText  DamageText  `yaml:"damage_text"`
	Progression Progression `yaml:"progression"`
	Shop        Shop        `yaml:"shop"`
	FPS         float64     `yaml:"fps"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		World: World{
			Width:   960,
			Height:  540,
			GroundY: 465,
			MaxStep: 33 * time.Millisecond,
		},
		Player: Player{
			StartX:         120,
			Width:          50,
			Height:         70,
			Speed:          240,
			BaseDamage:     2,
			BaseMaxHP:      30,
			AttackCooldown: 220 * time.Millisecond,
			AttackAnim:     220 * time.Millisecond,
			AttackReach:    34,
			TouchCooldown:  500 * time.Millisecond,
			Hitbox:         Hitbox{OffsetX: 16, OffsetY: 10, W: 22, H: 58, FootPad: 2},
		},
		Physics: Physics{
			Gravity:      1600,
			JumpVelocity: 620,
			SnapBand:     5,
			GlueMinVY:    -10,
		},
		Mob: Mob{
			Width:           20,
			Height:          20,
			BaseSpeed:       40,
			WanderMin:       800 * time.Millisecond,
			WanderMax:       2200 * time.Millisecond,
			HitState:        250 * time.Millisecond,
			DieState:        900 * time.Millisecond,
			Aggro:           2500 * time.Millisecond,
			ChaseMultiplier: 1.25,
			Knockback:       5,
		},
		Spawn: Spawn{
			Interval:        900 * time.Millisecond,
			MaxOnScreen:     6,
			InitialFloating: 10,
			InitialRoaming:  3,
		},
		Mesos: Mesos{
			GravityScale: 0.6,
			Damping:      0.85,
			Life:         20 * time.Second,
			Normal:       DropRange{Min: 10, Max: 600},
			Boss:         DropRange{Min: 800, Max: 2000},
		},
		DamageText: DamageText{Rise: 40, Life: 600 * time.Millisecond},
		Progression: Progression{
			StatPointsPerLevel: 3,
			HPPerVIT:           6,
			DamagePerSTR:       1,
		},
		Shop: Shop{
			NPC:  Rect{X: 745, W: 50, H: 70},
			Lift: 20,
		},
		FPS: 10,
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.MaxStep <= 0:
		return fmt.Errorf("%w: world.max_step must be positive", ErrInvalid)
	case c.Player.Hitbox.W <= 0 || c.Player.Hitbox.H <= 0:
		return fmt.Errorf("%w: player hitbox must have a positive size", ErrInvalid)
	case c.Player.AttackCooldown < 0 || c.Player.TouchCooldown < 0:
		return fmt.Errorf("%w: cooldowns must not be negative", ErrInvalid)
	case c.Mob.WanderMin > c.Mob.WanderMax:
		return fmt.Errorf("%w: mob.wander_min %v exceeds wander_max %v", ErrInvalid, c.Mob.WanderMin, c.Mob.WanderMax)
	case c.Mesos.Normal.Min > c.Mesos.Normal.Max || c.Mesos.Boss.Min > c.Mesos.Boss.Max:
		return fmt.Errorf("%w: mesos drop range min exceeds max", ErrInvalid)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn.interval must be positive", ErrInvalid)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalid)
	}
	return nil
}
