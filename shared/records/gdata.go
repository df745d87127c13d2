package records

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const boardItem = "records"

// GDataStore keeps the board as a JSON item in the platform data directory.
type GDataStore struct {
	manager *gdata.Manager
}

// OpenGData opens the per-user data directory for appName.
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("records: open gdata: %w", err)
	}
	return &GDataStore{manager: m}, nil
}

// Load returns an empty board when nothing has been saved yet.
func (s *GDataStore) Load() (*Board, error) {
	data, err := s.manager.LoadItem(boardItem)
	if err != nil {
		return nil, fmt.Errorf("records: load item: %w", err)
	}
	if data == nil {
		return NewBoard(), nil
	}
	return decodeBoard(data)
}

func (s *GDataStore) Save(b *Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("records: encode board: %w", err)
	}
	if err := s.manager.SaveItem(boardItem, data); err != nil {
		return fmt.Errorf("records: save item: %w", err)
	}
	return nil
}

func (s *GDataStore) Close() error {
	return nil
}

func decodeBoard(data []byte) (*Board, error) {
	b := NewBoard()
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("records: decode board: %w", err)
	}
	if b.Standings == nil {
		b.Standings = make(map[string]*MedalStanding)
	}
	if b.Missions == nil {
		b.Missions = make(map[string]MissionRecord)
	}
	return b, nil
}
