package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mesoquest/internal/quest"
)

// Bundle is everything the simulation needs from disk.
type Bundle struct {
	Stats       Registry
	StatsSource string
	Quests      *quest.Database
}

// Paths names the files Load reads.
type Paths struct {
	Quests string
	// Stats are tried in order; the first readable one wins.
	Stats []string
}

// LoadQuests decodes a quest database.
func LoadQuests(fsys fs.FS, path string) (*quest.Database, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read quests: %w", err)
	}
	var db quest.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &db, nil
}

// Load reads the quest database and mob stats concurrently and validates
// the result.
func Load(ctx context.Context, fsys fs.FS, paths Paths, log zerolog.Logger) (*Bundle, error) {
	var b Bundle
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		db, err := LoadQuests(fsys, paths.Quests)
		if err != nil {
			return err
		}
		b.Quests = db
		return ctx.Err()
	})
	g.Go(func() error {
		reg, src, err := LoadMobStats(fsys, paths.Stats...)
		if err != nil {
			return err
		}
		b.Stats, b.StatsSource = reg, src
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := Validate(&b); err != nil {
		return nil, err
	}
	log.Info().
		Int("quests", len(b.Quests.Quests)).
		Int("maps", len(b.Quests.Maps)).
		Int("species", len(b.Stats)).
		Str("stats_source", b.StatsSource).
		Msg("data loaded")
	return &b, nil
}

// Validate checks that every kill target of every quest has stats.
func Validate(b *Bundle) error {
	var missing []int
	for _, q := range b.Quests.Quests {
		for _, id := range q.KillTargets() {
			if _, ok := b.Stats.Lookup(id); !ok && !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingMobStats, missing)
	}
	return nil
}
