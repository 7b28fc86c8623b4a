// Package economy implements mesos drops and the potion shop transaction.
package economy

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"mesoquest/assets"
	"mesoquest/internal/component"
	"mesoquest/internal/config"
)

var (
	ErrUnknownPotion     = errors.New("unknown potion")
	ErrInsufficientMesos = errors.New("not enough mesos")
)

// Buy charges the wallet for one potion and credits it. On error the wallet
// is left untouched.
func Buy(w *component.Wallet, id string) (assets.PotionDef, error) {
	p, ok := assets.PotionByID(id)
	if !ok {
		return assets.PotionDef{}, fmt.Errorf("buy %q: %w", id, ErrUnknownPotion)
	}
	if w.Mesos < p.Price {
		return p, fmt.Errorf("buy %s for %d with %d: %w", p.Name, p.Price, w.Mesos, ErrInsufficientMesos)
	}
	if w.Owned == nil {
		w.Owned = make(map[string]int, len(assets.Potions))
	}
	w.Mesos -= p.Price
	w.Owned[id]++
	return p, nil
}

// Deposit adds collected mesos to the wallet.
func Deposit(w *component.Wallet, amount int) {
	if amount <= 0 {
		return
	}
	w.Mesos += amount
}

// PickMesoType returns the visual bucket for a value.
func PickMesoType(value int) assets.MesoType {
	for _, t := range assets.MesoTypes {
		if value >= t.Min && value <= t.Max {
			return t
		}
	}
	return assets.MesoTypes[len(assets.MesoTypes)-1]
}

// DropRangeFor returns the mesos range a kill drops on a normal or boss map.
func DropRangeFor(cfg config.Mesos, boss bool) config.DropRange {
	if boss {
		return cfg.Boss
	}
	return cfg.Normal
}

// RollValue draws an integer uniformly from the inclusive range.
func RollValue(rng *rand.Rand, r config.DropRange) int {
	v := float64(r.Min) + rng.Float64()*float64(r.Max+1-r.Min)
	return int(math.Floor(v))
}

// DropVelocity draws the initial toss of a dropped pickup.
func DropVelocity(rng *rand.Rand) (vx, vy float64) {
	vx = -60 + rng.Float64()*120
	vy = -240 + rng.Float64()*100
	return vx, vy
}
