package game

import (
	"errors"
	"fmt"

	"mesoquest/assets"
	"mesoquest/internal/component"
	"mesoquest/internal/economy"
	"mesoquest/internal/factory"
	"mesoquest/internal/system"
)

// Action is a one-shot input intent. Held movement goes through MoveLeft
// and MoveRight instead.
type Action uint8

const (
	ActionNone Action = iota
	ActionJump
	ActionAttack
	ActionInventory
	ActionStats
	ActionShop
	ActionCloseShop
	ActionAddSTR
	ActionAddVIT
)

// Apply dispatches a one-shot action.
func (g *Game) Apply(a Action) {
	switch a {
	case ActionJump:
		g.Jump()
	case ActionAttack:
		g.Attack()
	case ActionInventory:
		g.ToggleInventory()
	case ActionStats:
		g.ToggleStats()
	case ActionShop:
		g.ToggleShop()
	case ActionCloseShop:
		g.shopOpen = false
	case ActionAddSTR:
		g.AllocateStat(component.StatSTR)
	case ActionAddVIT:
		g.AllocateStat(component.StatVIT)
	}
}

// MoveLeft holds or releases the left direction.
func (g *Game) MoveLeft(active bool) { g.holdLeft = active }

// MoveRight holds or releases the right direction.
func (g *Game) MoveRight(active bool) { g.holdRight = active }

// Jump launches the player when standing on something.
func (g *Game) Jump() {
	system.Jump(g.world, g.playerID, g.cfg.Physics)
}

// Attack swings at the mobs in front of the player and applies what the
// swing caused: damage numbers, drops, experience and quest kills. A quest
// completed by the swing swaps the world only after every hit resolved.
func (g *Game) Attack() {
	res := system.Attack(g.world, g.gmap, g.playerID, g.cfg, g.now)
	if !res.Swung {
		return
	}
	swap := false
	for _, h := range res.Hits {
		factory.NewDamageText(g.world, g.cfg.DamageText.Life, h.TextX, h.TextY, h.Damage)
		g.summary.DamageDealt += h.Damage
		if !h.Killed {
			continue
		}
		r := economy.DropRangeFor(g.cfg.Mesos, g.gmap.Boss)
		factory.NewMeso(g.world, g.rng, g.cfg.Mesos.Life, h.DropX, h.DropY, economy.RollValue(g.rng, r))
		g.summary.recordKill(h.Species)
		g.grantExp(float64(h.Exp))
		if g.quests.RecordKill(h.Species) {
			g.completeQuest()
			swap = true
		}
	}
	if swap {
		g.enterActiveQuest()
	}
}

// grantExp adds experience and announces every level reached.
func (g *Game) grantExp(amount float64) {
	for _, lv := range system.GainExp(g.world, g.playerID, amount, g.cfg.Progression) {
		g.addMessage(fmt.Sprintf("LEVEL UP! You are now level %d (+%d SP)", lv, g.cfg.Progression.StatPointsPerLevel))
		g.log.Info().Int("level", lv).Msg("level up")
		g.summary.Level = lv
	}
}

// AllocateStat spends one stat point. Without points nothing happens.
func (g *Game) AllocateStat(s component.Stat) {
	system.AllocateStat(g.world, g.playerID, s, g.cfg.Progression)
}

// ToggleInventory shows or hides the inventory panel.
func (g *Game) ToggleInventory() { g.invOpen = !g.invOpen }

// ToggleStats shows or hides the stats panel.
func (g *Game) ToggleStats() { g.statsOpen = !g.statsOpen }

// NearShop reports whether the player touches the shopkeeper.
func (g *Game) NearShop() bool {
	return g.playerBody().Rect().Intersects(g.shopNPC)
}

// ToggleShop opens or closes the shop. It only works next to the
// shopkeeper; opening always starts on the first tab.
func (g *Game) ToggleShop() {
	if !g.NearShop() {
		return
	}
	g.shopOpen = !g.shopOpen
	if g.shopOpen {
		g.shopTab = 1
	}
}

// SelectShopTab switches the open shop to tab n, counted from 1.
func (g *Game) SelectShopTab(n int) {
	if !g.shopOpen || n < 1 || n > len(assets.ShopTabs) {
		return
	}
	g.shopTab = n
}

// BuyPotion buys one potion from the open shop. A rejected purchase leaves
// the wallet untouched and says why.
func (g *Game) BuyPotion(id string) {
	if !g.shopOpen {
		return
	}
	wallet := g.wallet()
	p, err := economy.Buy(&wallet, id)
	switch {
	case errors.Is(err, economy.ErrInsufficientMesos):
		g.addMessage("Not enough Mesos!")
		g.log.Debug().Err(err).Msg("purchase rejected")
		return
	case err != nil:
		g.log.Debug().Err(err).Msg("purchase rejected")
		return
	}
	g.world.Add(g.playerID, wallet)
	g.addMessage("Bought " + p.Name)
}

// ShopState reports whether the shop is open and which tab is showing.
func (g *Game) ShopState() (open bool, tab int) { return g.shopOpen, g.shopTab }
