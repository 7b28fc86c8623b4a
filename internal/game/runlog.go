package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Summary records statistics gathered during one play session. It is
// written once at exit and never read back by the game.
type Summary struct {
	ID              string         `json:"id"`
	StartedAt       time.Time      `json:"started_at"`
	PlayTime        time.Duration  `json:"play_time"`
	Level           int            `json:"level"`
	Kills           map[string]int `json:"kills"` // species id → kill count
	MesosEarned     int            `json:"mesos_earned"`
	DamageDealt     int            `json:"damage_dealt"`
	DamageTaken     int            `json:"damage_taken"`
	QuestsCompleted int            `json:"quests_completed"`
	CampaignDone    bool           `json:"campaign_done"`
}

func newSummary() Summary {
	return Summary{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Level:     1,
		Kills:     make(map[string]int),
	}
}

func (s *Summary) recordKill(species int) {
	s.Kills[strconv.Itoa(species)]++
}

// Summary returns the session statistics so far.
func (g *Game) Summary() Summary {
	s := g.summary
	s.PlayTime = g.now
	s.CampaignDone = g.quests.Done()
	return s
}

// SaveSummary appends the session as a single JSON line to sessions.jsonl
// under the user's data directory.
func SaveSummary(s Summary) error {
	dir, err := summaryDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// summaryDir returns the directory where session summaries are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/mesoquest,
// defaulting to ~/.local/share/mesoquest.
func summaryDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mesoquest"), nil
}
