package session

import (
	"context"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"mesoquest/assets"
	"mesoquest/internal/config"
	"mesoquest/internal/data"
	"mesoquest/internal/game"
)

func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(100, 30)
	_ = ss.Init()
	return ss
}

func newTestSession(t *testing.T, screen tcell.Screen) *Session {
	t.Helper()
	b, err := data.Load(context.Background(), assets.DefaultData(), data.Paths{
		Quests: assets.QuestsFile,
		Stats:  []string{assets.MobStatsFile, assets.StatsFallback},
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("data.Load: %v", err)
	}
	g, err := game.New(config.Default(), b, game.WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return New(screen, g, zerolog.Nop())
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestKeyToCommand(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
		slot int
	}{
		{key(tcell.KeyLeft), CommandLeft, 0},
		{key(tcell.KeyRight), CommandRight, 0},
		{key(tcell.KeyUp), CommandJump, 0},
		{key(tcell.KeyEscape), CommandCloseShop, 0},
		{runeKey(' '), CommandAttack, 0},
		{runeKey('i'), CommandInventory, 0},
		{runeKey('k'), CommandStats, 0},
		{runeKey('C'), CommandStats, 0},
		{runeKey('e'), CommandShop, 0},
		{runeKey('s'), CommandAddSTR, 0},
		{runeKey('v'), CommandAddVIT, 0},
		{runeKey('1'), CommandBuy, 0},
		{runeKey('6'), CommandBuy, 5},
		{runeKey('?'), CommandHelp, 0},
		{runeKey('q'), CommandQuit, 0},
		{runeKey('x'), CommandNone, 0},
	}
	for _, tt := range tests {
		got, slot := keyToCommand(tt.ev)
		if got != tt.want || slot != tt.slot {
			t.Errorf("keyToCommand(%v) = %d, %d; want %d, %d", tt.ev.Name(), got, slot, tt.want, tt.slot)
		}
	}
}

func TestArrowHoldExpires(t *testing.T) {
	s := newTestSession(t, newSimScreen())
	now := time.Unix(100, 0)

	s.HandleKey(key(tcell.KeyRight), now)
	s.Game.Tick(TickInterval)
	p := s.Game.Snapshot().Player
	if p.Body.VX <= 0 || p.Body.Facing != 1 {
		t.Fatalf("after right: vx = %v facing = %d; want walking right", p.Body.VX, p.Body.Facing)
	}

	s.updateHolds(now.Add(HoldWindow / 2))
	s.Game.Tick(TickInterval)
	if vx := s.Game.Snapshot().Player.Body.VX; vx <= 0 {
		t.Fatalf("inside hold window: vx = %v; want still walking", vx)
	}

	s.updateHolds(now.Add(HoldWindow))
	s.Game.Tick(TickInterval)
	p = s.Game.Snapshot().Player
	if p.Body.VX != 0 {
		t.Errorf("after hold window: vx = %v; want 0", p.Body.VX)
	}
	if p.Body.Facing != 1 {
		t.Errorf("facing = %d after release; want 1", p.Body.Facing)
	}
}

func TestOppositeArrowCancelsHold(t *testing.T) {
	s := newTestSession(t, newSimScreen())
	now := time.Unix(100, 0)

	s.HandleKey(key(tcell.KeyRight), now)
	s.HandleKey(key(tcell.KeyLeft), now.Add(10*time.Millisecond))
	s.Game.Tick(TickInterval)
	if p := s.Game.Snapshot().Player; p.Body.VX >= 0 || p.Body.Facing != -1 {
		t.Errorf("vx = %v facing = %d; want walking left", p.Body.VX, p.Body.Facing)
	}
}

func TestShopKeysIgnoredWhileClosed(t *testing.T) {
	s := newTestSession(t, newSimScreen())
	now := time.Unix(100, 0)

	s.HandleKey(key(tcell.KeyTab), now)
	s.HandleKey(runeKey('1'), now)

	if open, tab := s.Game.ShopState(); open || tab != 0 {
		t.Errorf("shop = %v tab %d; want closed", open, tab)
	}
	if slices.Contains(s.Game.Messages(), "Not enough Mesos!") {
		t.Error("buy attempted with the shop closed")
	}
}

func TestPanelKeysToggle(t *testing.T) {
	s := newTestSession(t, newSimScreen())
	now := time.Unix(100, 0)

	s.HandleKey(runeKey('i'), now)
	s.HandleKey(runeKey('c'), now)
	snap := s.Game.Snapshot()
	if !snap.Inventory || !snap.Stats {
		t.Fatalf("inventory = %v stats = %v; want both open", snap.Inventory, snap.Stats)
	}
	s.HandleKey(runeKey('k'), now)
	if s.Game.Snapshot().Stats {
		t.Error("stats still open after second toggle")
	}
}

func TestRunQuitsAfterConfirm(t *testing.T) {
	ss := newSimScreen()
	s := newTestSession(t, ss)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit was confirmed")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ss := newSimScreen()
	s := newTestSession(t, ss)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(5 * TickInterval)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if s.Game.Now() <= 0 {
		t.Error("simulation clock did not advance while running")
	}
}
