package systems

import (
	"fmt"

	cfg "github.com/automoto/bugspy/config"
	"github.com/automoto/bugspy/shared/records"
	"github.com/charmbracelet/log"
)

// Store kinds accepted by OpenStore.
const (
	StoreGData  = "gdata"
	StoreSQLite = "sqlite"
	StoreNone   = "none"
)

// OpenStore opens the records store of the given kind. dbPath is only used by
// the sqlite store.
func OpenStore(kind, dbPath string) (records.Store, error) {
	switch kind {
	case StoreGData:
		s, err := records.OpenGData(cfg.C.Title)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StoreSQLite:
		s, err := records.OpenSQLite(dbPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case StoreNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown records store %q", kind)
}

// SeedBoard builds the starting standings from the configured medal times.
func SeedBoard() *records.Board {
	board := records.NewBoard()
	for _, ev := range cfg.Events {
		for _, t := range ev.MedalTime {
			board.RecordRace(records.RaceRecord{Nation: ev.MedalBy, Event: ev.Name, Time: t})
		}
	}
	return board
}

// LoadBoard returns the seeded board merged with whatever the store holds. A
// store that fails to load is logged and the seeded board is used.
func LoadBoard(store records.Store) *records.Board {
	board := SeedBoard()
	if store == nil {
		return board
	}
	saved, err := store.Load()
	if err != nil {
		log.Warn("Could not load records", "error", err)
		return board
	}
	board.Merge(saved)
	return board
}

// SaveBoard writes the board. A failed save is logged and play goes on.
func SaveBoard(store records.Store, board *records.Board) {
	if store == nil || board == nil {
		return
	}
	if err := store.Save(board); err != nil {
		log.Warn("Could not save records", "error", err)
	}
}
