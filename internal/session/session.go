// Package session runs one game in a terminal. An input goroutine feeds
// key events to the session loop, which turns them into game input,
// advances the simulation every TickInterval and redraws after each tick.
package session

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"mesoquest/assets"
	"mesoquest/internal/game"
	"mesoquest/internal/render"
)

// TickInterval is the wall-clock period between simulation ticks.
const TickInterval = 16 * time.Millisecond

// HoldWindow is how long one arrow press keeps the player walking.
// Terminals report key repeats but never key releases, so a direction
// stays held until its repeats stop arriving.
const HoldWindow = 200 * time.Millisecond

// Session holds the state of one terminal game.
type Session struct {
	Screen   tcell.Screen
	Game     *game.Game
	Renderer *render.Renderer

	log zerolog.Logger

	// Walking stays on until these deadlines pass.
	leftUntil  time.Time
	rightUntil time.Time
}

// New creates a Session drawing g onto screen.
func New(screen tcell.Screen, g *game.Game, log zerolog.Logger) *Session {
	return &Session{
		Screen:   screen,
		Game:     g,
		Renderer: render.NewRenderer(screen),
		log:      log,
	}
}

// Run blocks until the player quits, the screen closes or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	// Start an async input reader goroutine.
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.Screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	last := time.Now()
	s.draw()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("session cancelled")
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil // screen closed
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Screen.Sync()
				s.draw()
			case *tcell.EventKey:
				switch s.HandleKey(ev, time.Now()) {
				case CommandQuit:
					if s.confirmQuit(eventCh) {
						s.log.Info().Msg("player quit")
						return nil
					}
					last = time.Now()
				case CommandHelp:
					s.runHelp(eventCh)
					last = time.Now()
				}
			}
		case now := <-ticker.C:
			s.updateHolds(now)
			s.Game.Tick(now.Sub(last))
			last = now
			s.draw()
		}
	}
}

// HandleKey applies a key press at wall-clock time now and returns the
// command it mapped to. Quit and help are left to the caller.
func (s *Session) HandleKey(ev *tcell.EventKey, now time.Time) Command {
	cmd, slot := keyToCommand(ev)
	switch cmd {
	case CommandLeft:
		s.leftUntil, s.rightUntil = now.Add(HoldWindow), time.Time{}
		s.updateHolds(now)
	case CommandRight:
		s.rightUntil, s.leftUntil = now.Add(HoldWindow), time.Time{}
		s.updateHolds(now)
	case CommandNextTab:
		if open, tab := s.Game.ShopState(); open {
			s.Game.SelectShopTab(tab%len(assets.ShopTabs) + 1)
		}
	case CommandBuy:
		if open, tab := s.Game.ShopState(); open && tab == assets.PotionTab && slot < len(assets.Potions) {
			s.Game.BuyPotion(assets.Potions[slot].ID)
		}
	default:
		s.Game.Apply(commandToAction(cmd))
	}
	return cmd
}

// updateHolds releases any direction whose hold window has passed.
func (s *Session) updateHolds(now time.Time) {
	s.Game.MoveLeft(now.Before(s.leftUntil))
	s.Game.MoveRight(now.Before(s.rightUntil))
}

func (s *Session) draw() {
	s.Renderer.DrawFrame(s.Game.Snapshot())
}
