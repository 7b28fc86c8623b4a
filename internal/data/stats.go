// Package data loads the campaign and mob stats authoring files.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"mesoquest/internal/quest"
)

var (
	// ErrNoSource is returned when none of the mob stats paths can be read.
	ErrNoSource = errors.New("no readable mob stats source")
	// ErrMissingMobStats is returned when a quest targets an unknown species.
	ErrMissingMobStats = errors.New("missing mob stats")
)

// Defaults for fields a stats entry leaves out or fills with a non-number.
const (
	DefaultMaxHP  = 10
	DefaultExp    = 0
	DefaultDamage = 1
	DefaultSpeed  = 0
)

// Number is an optional stat value. Finite numbers and numeric strings
// decode to their value; anything else decodes as unset.
type Number struct {
	Value float64
	Set   bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*n = Number{}
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		v = f
	default:
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value, n.Set = v, true
	return nil
}

func (Number) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "number"}, {Type: "string"}, {Type: "null"}}}
}

// MobStatsDoc is one entry of a mob stats file.
type MobStatsDoc struct {
	ID         quest.MobID    `json:"id" jsonschema:"oneof_type=integer;string"`
	Name       string         `json:"name,omitempty"`
	MaxHP      Number         `json:"maxHP,omitempty"`
	Damage     Number         `json:"damage,omitempty"`
	Exp        Number         `json:"exp,omitempty"`
	Speed      Number         `json:"speed,omitempty"`
	Framebooks map[string]int `json:"framebooks,omitempty" jsonschema:"description=Animation name to frame count"`
}

// MobStats is a species record with every default applied.
type MobStats struct {
	ID         int
	Name       string
	MaxHP      int
	Damage     int
	Exp        int
	Speed      float64
	Framebooks map[string]int
}

// Resolve applies the defaults.
func (d MobStatsDoc) Resolve() MobStats {
	return MobStats{
		ID:         int(d.ID),
		Name:       d.Name,
		MaxHP:      int(number(d.MaxHP, DefaultMaxHP)),
		Damage:     int(number(d.Damage, DefaultDamage)),
		Exp:        int(number(d.Exp, DefaultExp)),
		Speed:      number(d.Speed, DefaultSpeed),
		Framebooks: d.Framebooks,
	}
}

func number(n Number, fallback float64) float64 {
	if !n.Set {
		return fallback
	}
	return n.Value
}

// Registry maps species ids to stats.
type Registry map[int]MobStats

// Lookup returns the stats of a species.
func (r Registry) Lookup(id int) (MobStats, bool) {
	s, ok := r[id]
	return s, ok
}

// Name returns the species name, or "" when unknown.
func (r Registry) Name(id int) string {
	return r[id].Name
}

// NewRegistry resolves a list of stats entries. Later duplicates win.
func NewRegistry(docs []MobStatsDoc) Registry {
	r := make(Registry, len(docs))
	for _, d := range docs {
		r[int(d.ID)] = d.Resolve()
	}
	return r
}

// LoadMobStats reads the first of paths that can be read and decoded. It
// returns the registry and the path that served it.
func LoadMobStats(fsys fs.FS, paths ...string) (Registry, string, error) {
	var errs []error
	for _, p := range paths {
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		var docs []MobStatsDoc
		if err := json.Unmarshal(raw, &docs); err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", p, err))
			continue
		}
		return NewRegistry(docs), p, nil
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}
