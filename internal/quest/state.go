package quest

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidStartQuest = errors.New("invalid start quest")

// State is the campaign cursor. Active is nil once the chain is finished.
type State struct {
	index     map[string]*Quest
	Active    *Quest
	Completed []string
	Progress  map[string]int
}

// NewState starts the campaign at the database's start quest.
func NewState(db *Database) (*State, error) {
	idx := db.Index()
	start, ok := idx[db.StartQuestID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStartQuest, db.StartQuestID)
	}
	return &State{
		index:    idx,
		Active:   start,
		Progress: make(map[string]int),
	}, nil
}

// Done reports whether the campaign is finished.
func (s *State) Done() bool { return s.Active == nil }

// IsDone reports whether a quest id was completed.
func (s *State) IsDone(id string) bool {
	return slices.Contains(s.Completed, id)
}

// RecordKill counts a kill against every matching requirement of the active
// quest and reports whether the quest is now complete.
func (s *State) RecordKill(species int) bool {
	if s.Active == nil {
		return false
	}
	for _, r := range s.Active.Requirements {
		if r.Type == KillType && int(r.MobID) == species {
			s.Progress[ProgressKey(species)]++
		}
	}
	return IsCompleted(s.Active, s.Progress)
}

// Transition describes one quest completion.
type Transition struct {
	Completed *Quest
	// Next is nil when the campaign ended.
	Next      *Quest
	RewardExp float64
}

// Complete finishes the active quest and advances to the first quest it
// unlocks, or ends the campaign when there is none. Progress always resets.
func (s *State) Complete() Transition {
	q := s.Active
	if q == nil {
		return Transition{}
	}
	if !s.IsDone(q.ID) {
		s.Completed = append(s.Completed, q.ID)
	}
	t := Transition{Completed: q, RewardExp: q.RewardExp()}
	s.Active = nil
	if len(q.Unlocks) > 0 {
		if next, ok := s.index[q.Unlocks[0]]; ok {
			s.Active = next
			t.Next = next
		}
	}
	s.Progress = make(map[string]int)
	return t
}

// TargetMobIDs returns the kill targets of the active quest.
func (s *State) TargetMobIDs() []int {
	if s.Active == nil {
		return nil
	}
	return s.Active.KillTargets()
}

// Text is the quest panel content.
type Text struct {
	Title       string
	Description string
	Lines       []string
	Done        bool
}

// Describe renders the active quest for display. name resolves a species
// name and may return "" when unknown.
func (s *State) Describe(name func(int) string, doneTitle, doneDesc string) Text {
	if s.Active == nil {
		return Text{Title: doneTitle, Description: doneDesc, Done: true}
	}
	q := s.Active
	t := Text{Title: q.Title, Description: q.Description}
	for _, r := range q.Requirements {
		if r.Type != KillType {
			continue
		}
		id := int(r.MobID)
		n := name(id)
		if n == "" {
			n = fmt.Sprint(id)
		}
		t.Lines = append(t.Lines, fmt.Sprintf("Kill %d x %s (%d) : %d/%d", r.Count, n, id, s.Progress[ProgressKey(id)], r.Count))
	}
	return t
}

// Heading is the single-line quest header "title: description".
func (t Text) Heading() string {
	if t.Done {
		return t.Title
	}
	return t.Title + ": " + t.Description
}
