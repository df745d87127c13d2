package records

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "records.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "records.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on empty db failed: %v", err)
	}
	if len(empty.Standings) != 0 || len(empty.Missions) != 0 {
		t.Errorf("empty db loaded %d standings, %d missions", len(empty.Standings), len(empty.Missions))
	}

	b := NewBoard()
	for _, tm := range []float64{12, 16, 25} {
		b.RecordRace(RaceRecord{Nation: "Beehama", Event: "CRAGGY BIATHLON", Time: tm})
	}
	b.RecordRace(RaceRecord{Nation: "Antland", Event: "CRAGGY BIATHLON", Time: 9.5})
	b.RecordMission(MissionRecord{Event: "CRAGGY BIATHLON", TimeRemaining: 7.25})

	if err := store.Save(b); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s, err := loaded.Standing("CRAGGY BIATHLON")
	if err != nil {
		t.Fatalf("Standing() failed: %v", err)
	}
	want := []float64{9.5, 12, 16}
	if len(s.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(s.Records), len(want))
	}
	for i, r := range s.Records {
		if r.Time != want[i] {
			t.Errorf("record %d = %v, want %v", i, r.Time, want[i])
		}
	}
	if got := loaded.Missions["CRAGGY BIATHLON"].TimeRemaining; got != 7.25 {
		t.Errorf("mission TimeRemaining = %v, want 7.25", got)
	}

	// Saving again replaces rather than appends.
	if err := store.Save(loaded); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}
	again, err := store.Load()
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}
	if s, _ := again.Standing("CRAGGY BIATHLON"); len(s.Records) != 3 {
		t.Errorf("after resave got %d records, want 3", len(s.Records))
	}
}

func TestDecodeBoardFillsMaps(t *testing.T) {
	b, err := decodeBoard([]byte(`{}`))
	if err != nil {
		t.Fatalf("decodeBoard() failed: %v", err)
	}
	if b.Standings == nil || b.Missions == nil {
		t.Error("decodeBoard left nil maps")
	}
}
