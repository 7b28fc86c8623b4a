// Package anim picks animation frames for simulated entities.
package anim

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"time"

	"mesoquest/internal/component"
)

// Kind is the class of entity a frame belongs to.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindMob
	KindMeso
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMob:
		return "mob"
	}
	return "meso"
}

// Frame is a displayable frame handle.
type Frame string

// Provider serves frames. Key identifies the entity within its kind (a
// species id for mobs, a bucket name for mesos, "" for the player).
type Provider interface {
	// Count returns how many frames an animation has; 0 means missing.
	Count(kind Kind, key, anim string) int
	Frame(kind Kind, key, anim string, index int) (Frame, bool)
}

// PlayerAnims are the animations the player may show.
var PlayerAnims = []string{"stand", "walk", "jump", "attack1", "attack2", "attackF", "climbRope", "climbLadder"}

// FrameIndex is floor(t·fps) mod n.
func FrameIndex(t time.Duration, fps float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(t.Seconds()*fps)) % n
	if i < 0 {
		i += n
	}
	return i
}

// PlayerTag returns the animation the player shows at now.
func PlayerTag(f component.Fighter, b component.Body, now time.Duration) string {
	switch {
	case now < f.AnimUntil && f.Anim != "":
		return f.Anim
	case !b.OnGround():
		return "jump"
	case math.Abs(b.VX) > 1:
		return "walk"
	}
	return "stand"
}

// MobNames maps mob states to animation names.
type MobNames struct {
	Stand, Move, Hit, Die string
}

// For returns the animation name for a state.
func (n MobNames) For(s component.MobState) string {
	switch s {
	case component.MobMove:
		return n.Move
	case component.MobHit:
		return n.Hit
	case component.MobDie:
		return n.Die
	}
	return n.Stand
}

// NamesFromFramebooks picks the lowest numbered hitN/dieN variant a species
// declares, falling back to hit1/die1.
func NamesFromFramebooks(fb map[string]int) MobNames {
	return MobNames{
		Stand: "stand",
		Move:  "move",
		Hit:   firstVariant(fb, "hit", "hit1"),
		Die:   firstVariant(fb, "die", "die1"),
	}
}

var variantRe = map[string]*regexp.Regexp{
	"hit": regexp.MustCompile(`^hit(\d+)$`),
	"die": regexp.MustCompile(`^die(\d+)$`),
}

func firstVariant(fb map[string]int, prefix, fallback string) string {
	re := variantRe[prefix]
	best, bestN := "", math.MaxInt
	for k := range fb {
		m := re.FindStringSubmatch(k)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if n < bestN {
			best, bestN = k, n
		}
	}
	if best != "" {
		return best
	}
	if _, ok := fb[prefix]; ok {
		return prefix
	}
	return fallback
}

// Library resolves frames through a Provider, substituting the stand
// animation for missing move, hit and die animations.
type Library struct {
	provider Provider
	fps      float64
	mobs     map[int]mobSet
}

type mobSet struct {
	key   string
	names MobNames
	// anims maps a state's animation name to the animation actually drawn.
	anims map[string]string
}

// NewLibrary returns a Library playing frames at fps.
func NewLibrary(p Provider, fps float64) *Library {
	return &Library{provider: p, fps: fps, mobs: make(map[int]mobSet)}
}

// Loaded reports whether a species was prepared.
func (l *Library) Loaded(id int) bool {
	_, ok := l.mobs[id]
	return ok
}

// LoadMob prepares a species and returns diagnostics for missing frames.
func (l *Library) LoadMob(id int, framebooks map[string]int) []string {
	key := strconv.Itoa(id)
	set := mobSet{key: key, names: NamesFromFramebooks(framebooks), anims: make(map[string]string)}
	var missing []string

	stand := set.names.Stand
	if l.provider.Count(KindMob, key, stand) == 0 {
		missing = append(missing, fmt.Sprintf("%d/%s", id, stand))
	}
	set.anims[stand] = stand
	for _, name := range []string{set.names.Move, set.names.Hit, set.names.Die} {
		if l.provider.Count(KindMob, key, name) > 0 {
			set.anims[name] = name
			continue
		}
		set.anims[name] = stand
		if name != set.names.Move {
			missing = append(missing, fmt.Sprintf("%d/%s", id, name))
		}
	}
	l.mobs[id] = set
	return missing
}

// CheckPlayer returns the player animations the provider lacks.
func (l *Library) CheckPlayer() []string {
	var missing []string
	for _, a := range PlayerAnims {
		if l.provider.Count(KindPlayer, "", a) == 0 {
			missing = append(missing, a)
		}
	}
	return missing
}

// MobFrame returns the frame a mob of species id in state s shows at t.
func (l *Library) MobFrame(id int, s component.MobState, t time.Duration) (Frame, bool) {
	set, ok := l.mobs[id]
	if !ok {
		return "", false
	}
	name := set.anims[set.names.For(s)]
	return l.frame(KindMob, set.key, name, t)
}

// PlayerFrame returns the frame of a player animation at t.
func (l *Library) PlayerFrame(anim string, t time.Duration) (Frame, bool) {
	if !slices.Contains(PlayerAnims, anim) {
		anim = "stand"
	}
	return l.frame(KindPlayer, "", anim, t)
}

// MesoFrame returns the frame of a mesos bucket at t.
func (l *Library) MesoFrame(kind string, t time.Duration) (Frame, bool) {
	return l.frame(KindMeso, kind, "spin", t)
}

func (l *Library) frame(kind Kind, key, anim string, t time.Duration) (Frame, bool) {
	n := l.provider.Count(kind, key, anim)
	if n == 0 {
		return "", false
	}
	return l.provider.Frame(kind, key, anim, FrameIndex(t, l.fps, n))
}
