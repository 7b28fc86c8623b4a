package quest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chainJSON = `{
  "startQuestId": "a",
  "quests": [
    {"id": "a", "title": "First", "description": "kill snails",
     "requirements": [{"type": "kill", "mobId": 100100, "count": 2}],
     "rewards": {"exp": 15}, "unlocks": ["b", "c"], "map": "farm"},
    {"id": "b", "title": "Second", "description": "mixed",
     "requirements": [
       {"type": "kill", "mobId": "200", "count": 1},
       {"type": "collect", "count": 9},
       {"type": "kill", "mobId": 300, "count": 1}
     ],
     "unlocks": ["missing"]},
    {"id": "c", "title": "Never", "description": "", "requirements": [], "unlocks": []}
  ],
  "maps": {"farm": {"bgPath": "farm.png", "groundY": 465, "boss": true,
                    "platforms": [{"x": 0, "y": 465, "w": 960, "h": 75}]}}
}`

func loadChain(t *testing.T) *Database {
	t.Helper()
	var db Database
	require.NoError(t, json.Unmarshal([]byte(chainJSON), &db))
	return &db
}

func TestDatabaseDecodes(t *testing.T) {
	db := loadChain(t)
	require.Len(t, db.Quests, 3)
	assert.Equal(t, MobID(200), db.Quests[1].Requirements[0].MobID)
	assert.Equal(t, 15.0, db.Quests[0].RewardExp())
	assert.Zero(t, db.Quests[1].RewardExp())
	assert.True(t, db.Maps["farm"].Boss)
	assert.Equal(t, 465.0, db.Maps["farm"].GroundY)
}

func TestMobIDRejectsGarbage(t *testing.T) {
	var m MobID
	assert.Error(t, json.Unmarshal([]byte(`"snail"`), &m))
	assert.Error(t, json.Unmarshal([]byte(`true`), &m))
}

func TestNewStateRejectsUnknownStart(t *testing.T) {
	db := loadChain(t)
	db.StartQuestID = "nope"
	_, err := NewState(db)
	require.ErrorIs(t, err, ErrInvalidStartQuest)
}

func TestRecordKillCompletesOnLastRequiredKill(t *testing.T) {
	s, err := NewState(loadChain(t))
	require.NoError(t, err)

	assert.False(t, s.RecordKill(999), "unrelated kill")
	assert.Empty(t, s.Progress)
	assert.False(t, s.RecordKill(100100))
	assert.Equal(t, 1, s.Progress["kill:100100"])
	assert.True(t, s.RecordKill(100100))
}

func TestCompleteFollowsFirstUnlockAndResetsProgress(t *testing.T) {
	s, err := NewState(loadChain(t))
	require.NoError(t, err)
	s.RecordKill(100100)
	s.RecordKill(100100)

	tr := s.Complete()
	require.NotNil(t, tr.Next)
	assert.Equal(t, "a", tr.Completed.ID)
	assert.Equal(t, "b", tr.Next.ID)
	assert.Equal(t, 15.0, tr.RewardExp)
	assert.Same(t, tr.Next, s.Active)
	assert.Empty(t, s.Progress)
	assert.True(t, s.IsDone("a"))
	assert.False(t, s.IsDone("c"))
}

func TestNonKillRequirementsAreInert(t *testing.T) {
	s, err := NewState(loadChain(t))
	require.NoError(t, err)
	s.Complete()

	assert.Equal(t, []int{200, 300}, s.TargetMobIDs())
	assert.False(t, s.RecordKill(200))
	assert.True(t, s.RecordKill(300))
}

func TestCompleteEndsCampaignOnDanglingUnlock(t *testing.T) {
	s, err := NewState(loadChain(t))
	require.NoError(t, err)
	s.Complete()

	tr := s.Complete()
	assert.Nil(t, tr.Next)
	assert.True(t, s.Done())
	assert.Nil(t, s.TargetMobIDs())
	assert.False(t, s.RecordKill(200))
	assert.Equal(t, []string{"a", "b"}, s.Completed)

	assert.Equal(t, Transition{}, s.Complete(), "completing a finished campaign")
}

func TestDescribe(t *testing.T) {
	s, err := NewState(loadChain(t))
	require.NoError(t, err)
	s.RecordKill(100100)

	names := func(id int) string {
		if id == 100100 {
			return "Snail"
		}
		return ""
	}
	txt := s.Describe(names, "All done", "bye")
	assert.Equal(t, "First: kill snails", txt.Heading())
	assert.Equal(t, []string{"Kill 2 x Snail (100100) : 1/2"}, txt.Lines)

	s.Complete()
	txt = s.Describe(names, "All done", "bye")
	assert.Equal(t, []string{"Kill 1 x 200 (200) : 0/1", "Kill 1 x 300 (300) : 0/1"}, txt.Lines)

	s.Complete()
	txt = s.Describe(names, "All done", "bye")
	assert.True(t, txt.Done)
	assert.Equal(t, "All done", txt.Heading())
	assert.Equal(t, "bye", txt.Description)
	assert.Empty(t, txt.Lines)
}
