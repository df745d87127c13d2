// Package records keeps event leaderboards and mission results, and persists
// them between runs.
package records

import (
	"errors"
	"sort"
)

// StandingSize is how many times a medal standing keeps.
const StandingSize = 3

var ErrUnknownEvent = errors.New("records: unknown event")

// RaceRecord is one finishing time.
type RaceRecord struct {
	Nation string  `json:"nation"`
	Event  string  `json:"event"`
	Time   float64 `json:"time"`
}

// MedalStanding holds the fastest times of one event, ascending, never more
// than StandingSize.
type MedalStanding struct {
	Event   string       `json:"event"`
	Records []RaceRecord `json:"records"`
}

// Insert adds a record, sorts ascending by time, and keeps the fastest three.
// It returns the record's place (0 = gold) or -1 when it did not place.
func (m *MedalStanding) Insert(r RaceRecord) int {
	m.Records = append(m.Records, r)
	sort.SliceStable(m.Records, func(i, j int) bool {
		return m.Records[i].Time < m.Records[j].Time
	})
	if len(m.Records) > StandingSize {
		m.Records = m.Records[:StandingSize]
	}
	for i := range m.Records {
		if m.Records[i] == r {
			return i
		}
	}
	return -1
}

// MissionRecord is the outcome of a completed infiltration.
type MissionRecord struct {
	Event         string  `json:"event"`
	TimeRemaining float64 `json:"timeRemaining"`
}

// Board is every standing and mission result, keyed by event name.
type Board struct {
	Standings map[string]*MedalStanding `json:"standings"`
	Missions  map[string]MissionRecord  `json:"missions"`
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		Standings: make(map[string]*MedalStanding),
		Missions:  make(map[string]MissionRecord),
	}
}

// Standing returns the standing for an event.
func (b *Board) Standing(event string) (*MedalStanding, error) {
	s, ok := b.Standings[event]
	if !ok {
		return nil, ErrUnknownEvent
	}
	return s, nil
}

// RecordRace inserts a finishing time into an event's standing, creating the
// standing if needed.
func (b *Board) RecordRace(r RaceRecord) int {
	s, ok := b.Standings[r.Event]
	if !ok {
		s = &MedalStanding{Event: r.Event}
		b.Standings[r.Event] = s
	}
	return s.Insert(r)
}

// RecordMission stores a mission result, keeping the one with the most time
// left.
func (b *Board) RecordMission(r MissionRecord) {
	if prev, ok := b.Missions[r.Event]; ok && prev.TimeRemaining >= r.TimeRemaining {
		return
	}
	b.Missions[r.Event] = r
}

// Merge folds other into b through the same insert rules.
func (b *Board) Merge(other *Board) {
	if other == nil {
		return
	}
	for _, s := range other.Standings {
		for _, r := range s.Records {
			if !b.contains(r) {
				b.RecordRace(r)
			}
		}
	}
	for _, m := range other.Missions {
		b.RecordMission(m)
	}
}

func (b *Board) contains(r RaceRecord) bool {
	s, ok := b.Standings[r.Event]
	if !ok {
		return false
	}
	for _, have := range s.Records {
		if have == r {
			return true
		}
	}
	return false
}

// Store loads and saves a Board.
type Store interface {
	Load() (*Board, error)
	Save(b *Board) error
	Close() error
}
