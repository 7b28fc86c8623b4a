package system

import (
	"math"

	"mesoquest/internal/component"
	"mesoquest/internal/config"
	"mesoquest/internal/ecs"
)

// ExpNeededForLevel is the experience required to advance past level lv.
func ExpNeededForLevel(lv int) int {
	n := float64(lv - 1)
	return int(math.Floor(30 + 18*n + 6*n*n))
}

// GainExp adds experience to the player and applies every level-up it
// pays for. Non-positive and non-finite amounts are ignored. It returns the
// levels reached, in order.
func GainExp(w *ecs.World, id ecs.EntityID, amount float64, cfg config.Progression) []int {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil
	}
	pc := w.Get(id, component.CProgression)
	if pc == nil {
		return nil
	}
	p := pc.(component.Progression)
	if p.ExpToNext <= 0 {
		p.ExpToNext = ExpNeededForLevel(max(p.Level, 1))
	}
	p.Exp += amount

	var reached []int
	for p.Exp >= float64(p.ExpToNext) {
		p.Exp -= float64(p.ExpToNext)
		p.Level++
		p.StatPoints += cfg.StatPointsPerLevel
		p.ExpToNext = ExpNeededForLevel(p.Level)
		reached = append(reached, p.Level)
		w.Add(id, p)
		ApplyLevelStats(w, id, cfg)
	}
	w.Add(id, p)
	return reached
}

// ApplyLevelStats recomputes damage and max HP from STR and VIT. A higher max
// heals by exactly the increase; a lower one only clamps current HP.
func ApplyLevelStats(w *ecs.World, id ecs.EntityID, cfg config.Progression) {
	pc, fc, hc := w.Get(id, component.CProgression), w.Get(id, component.CFighter), w.Get(id, component.CHealth)
	if pc == nil || fc == nil || hc == nil {
		return
	}
	p := pc.(component.Progression)
	f := fc.(component.Fighter)
	hp := hc.(component.Health)

	f.Damage = f.BaseDamage + p.STR*cfg.DamagePerSTR
	oldMax := hp.Max
	hp.Max = p.BaseMaxHP + p.VIT*cfg.HPPerVIT
	if hp.Max > oldMax {
		hp.Current = min(hp.Current+hp.Max-oldMax, hp.Max)
	} else {
		hp.Current = min(hp.Current, hp.Max)
	}
	w.Add(id, f)
	w.Add(id, hp)
}

// AllocateStat spends one stat point on s. It reports false, changing
// nothing, when no points are left.
func AllocateStat(w *ecs.World, id ecs.EntityID, s component.Stat, cfg config.Progression) bool {
	pc := w.Get(id, component.CProgression)
	if pc == nil {
		return false
	}
	p := pc.(component.Progression)
	if p.StatPoints <= 0 {
		return false
	}
	p.StatPoints--
	switch s {
	case component.StatVIT:
		p.VIT++
	default:
		p.STR++
	}
	w.Add(id, p)
	ApplyLevelStats(w, id, cfg)
	return true
}
