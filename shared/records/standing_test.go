package records

import (
	"errors"
	"testing"
)

func TestInsertKeepsThreeSmallest(t *testing.T) {
	orders := [][]float64{
		{9, 4, 7, 1, 12, 3},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{8, 8, 2, 8},
	}
	for _, times := range orders {
		m := MedalStanding{Event: "x"}
		for _, tm := range times {
			m.Insert(RaceRecord{Event: "x", Time: tm})
		}
		if len(m.Records) != StandingSize {
			t.Fatalf("%v: kept %d records, want %d", times, len(m.Records), StandingSize)
		}
		want := smallest(times, StandingSize)
		for i, r := range m.Records {
			if r.Time != want[i] {
				t.Errorf("%v: record %d = %v, want %v", times, i, r.Time, want[i])
			}
		}
	}
}

func smallest(in []float64, n int) []float64 {
	s := append([]float64(nil), in...)
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[i] {
				s[i], s[j] = s[j], s[i]
			}
		}
	}
	return s[:n]
}

func TestInsertReportsPlace(t *testing.T) {
	m := MedalStanding{Event: "x"}
	for _, tm := range []float64{6, 10, 16} {
		m.Insert(RaceRecord{Nation: "Beehama", Event: "x", Time: tm})
	}

	if place := m.Insert(RaceRecord{Nation: "Antland", Event: "x", Time: 8}); place != 1 {
		t.Errorf("8s placed %d, want 1 (silver)", place)
	}
	if place := m.Insert(RaceRecord{Nation: "Antland", Event: "x", Time: 20}); place != -1 {
		t.Errorf("20s placed %d, want -1", place)
	}
}

func TestBoardRecordRaceCreatesStanding(t *testing.T) {
	b := NewBoard()
	if _, err := b.Standing("new"); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err = %v, want ErrUnknownEvent", err)
	}
	b.RecordRace(RaceRecord{Event: "new", Time: 4})
	s, err := b.Standing("new")
	if err != nil {
		t.Fatalf("Standing() failed: %v", err)
	}
	if len(s.Records) != 1 {
		t.Errorf("got %d records, want 1", len(s.Records))
	}
}

func TestRecordMissionKeepsBest(t *testing.T) {
	b := NewBoard()
	b.RecordMission(MissionRecord{Event: "e", TimeRemaining: 5})
	b.RecordMission(MissionRecord{Event: "e", TimeRemaining: 2})
	b.RecordMission(MissionRecord{Event: "e", TimeRemaining: 9})
	if got := b.Missions["e"].TimeRemaining; got != 9 {
		t.Errorf("TimeRemaining = %v, want 9", got)
	}
}

func TestMergeDoesNotDuplicate(t *testing.T) {
	b := NewBoard()
	b.RecordRace(RaceRecord{Nation: "Beehama", Event: "e", Time: 6})

	other := NewBoard()
	other.RecordRace(RaceRecord{Nation: "Beehama", Event: "e", Time: 6})
	other.RecordRace(RaceRecord{Nation: "Antland", Event: "e", Time: 5})

	b.Merge(other)
	s, _ := b.Standing("e")
	if len(s.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(s.Records))
	}
	if s.Records[0].Nation != "Antland" {
		t.Errorf("gold = %s, want Antland", s.Records[0].Nation)
	}
}
