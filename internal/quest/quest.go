// Package quest holds the quest graph and tracks campaign progress through it.
package quest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"mesoquest/internal/gamemap"
)

// KillType is the only requirement type that counts toward completion.
const KillType = "kill"

// MobID is a species id. Authoring files write it as a number or a string.
type MobID int

func (m *MobID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("mob id %q: %w", s, err)
		}
		*m = MobID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("mob id %s: %w", b, err)
	}
	*m = MobID(n)
	return nil
}

type Requirement struct {
	Type  string `json:"type" jsonschema:"enum=kill"`
	MobID MobID  `json:"mobId,omitempty" jsonschema:"oneof_type=integer;string"`
	Count int    `json:"count,omitempty" jsonschema:"minimum=1"`
}

type Rewards struct {
	Exp float64 `json:"exp"`
}

type Quest struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Requirements []Requirement `json:"requirements"`
	Rewards      *Rewards      `json:"rewards,omitempty"`
	// Unlocks lists follow-up quests. Only the first one is ever taken.
	Unlocks []string `json:"unlocks"`
	// Map is the key of the map this quest plays on, if any.
	Map string `json:"map,omitempty"`
}

// RewardExp returns the experience granted on completion.
func (q *Quest) RewardExp() float64 {
	if q.Rewards == nil {
		return 0
	}
	return q.Rewards.Exp
}

// KillTargets returns the species of every kill requirement, in order.
func (q *Quest) KillTargets() []int {
	var ids []int
	for _, r := range q.Requirements {
		if r.Type == KillType {
			ids = append(ids, int(r.MobID))
		}
	}
	return ids
}

// Database is the authoring format of a campaign.
type Database struct {
	StartQuestID string                 `json:"startQuestId"`
	Quests       []Quest                `json:"quests"`
	Maps         map[string]gamemap.Def `json:"maps,omitempty"`
}

// Index maps quest ids to quests. Later duplicates win.
func (db *Database) Index() map[string]*Quest {
	idx := make(map[string]*Quest, len(db.Quests))
	for i := range db.Quests {
		idx[db.Quests[i].ID] = &db.Quests[i]
	}
	return idx
}

// ProgressKey is the progress map key of a kill requirement.
func ProgressKey(mob int) string {
	return fmt.Sprintf("%s:%d", KillType, mob)
}

// IsCompleted reports whether progress meets every kill requirement of q.
// Other requirement types never block completion.
func IsCompleted(q *Quest, progress map[string]int) bool {
	for _, r := range q.Requirements {
		if r.Type != KillType {
			continue
		}
		if progress[ProgressKey(int(r.MobID))] < r.Count {
			return false
		}
	}
	return true
}
