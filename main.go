// mesoquest is a terminal side-scroller: walk, jump and swing at mobs to
// finish a quest chain, collecting mesos for the potion shop on the way.
//
// Usage:
//
//	mesoquest [-config tuning.yaml] [-data dir] [-seed n] [-log file]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"mesoquest/assets"
	"mesoquest/internal/config"
	"mesoquest/internal/data"
	"mesoquest/internal/game"
	"mesoquest/internal/render"
	"mesoquest/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "YAML file overriding the tuning defaults")
	dataDir := flag.String("data", "", "directory holding quests.json and mobs_stats.json (bundled campaign if empty)")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "write a JSON log to this file")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	log, closeLog, err := newLogger(*logPath, *level)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	var fsys fs.FS = assets.DefaultData()
	if *dataDir != "" {
		fsys = os.DirFS(*dataDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bundle, err := data.Load(ctx, fsys, data.Paths{
		Quests: assets.QuestsFile,
		Stats:  []string{assets.MobStatsFile, assets.StatsFallback},
	}, log)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", *seed).Msg("starting")

	g, err := game.New(cfg, bundle,
		game.WithLogger(log),
		game.WithRand(rand.New(rand.NewSource(*seed))),
		game.WithFrames(render.NewGlyphFrames(bundle.Stats)),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	runErr := session.New(screen, g, log).Run(ctx)
	screen.Fini()

	if err := game.SaveSummary(g.Summary()); err != nil {
		log.Warn().Err(err).Msg("save session summary")
	}
	return runErr
}

// newLogger writes JSON lines to path, or discards everything when path
// is empty. The terminal belongs to the game.
func newLogger(path, level string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	var w io.Writer = io.Discard
	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, func() { _ = f.Close() }
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), closer, nil
}
