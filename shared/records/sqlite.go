package records

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps race times and mission results in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens the database at dbPath, creating parent
// directories and running migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("records: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("records: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("records: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: cannot connect to database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("records: migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS race_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event TEXT NOT NULL,
			nation TEXT NOT NULL,
			time REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_race_records_event ON race_records(event, time);

		CREATE TABLE IF NOT EXISTS mission_records (
			event TEXT PRIMARY KEY,
			time_remaining REAL NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the fastest three times per event and every mission result.
func (s *SQLiteStore) Load() (*Board, error) {
	b := NewBoard()

	rows, err := s.db.Query(
		`SELECT event, nation, time
		 FROM race_records
		 ORDER BY event, time ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("records: cannot query race records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r RaceRecord
		if err := rows.Scan(&r.Event, &r.Nation, &r.Time); err != nil {
			return nil, fmt.Errorf("records: cannot scan race record: %w", err)
		}
		b.RecordRace(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records: row iteration error: %w", err)
	}

	mrows, err := s.db.Query(`SELECT event, time_remaining FROM mission_records`)
	if err != nil {
		return nil, fmt.Errorf("records: cannot query missions: %w", err)
	}
	defer mrows.Close()

	for mrows.Next() {
		var m MissionRecord
		if err := mrows.Scan(&m.Event, &m.TimeRemaining); err != nil {
			return nil, fmt.Errorf("records: cannot scan mission: %w", err)
		}
		b.Missions[m.Event] = m
	}
	if err := mrows.Err(); err != nil {
		return nil, fmt.Errorf("records: row iteration error: %w", err)
	}

	return b, nil
}

// Save replaces the stored board inside one transaction.
func (s *SQLiteStore) Save(b *Board) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("records: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM race_records`); err != nil {
		return fmt.Errorf("records: clear race records: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM mission_records`); err != nil {
		return fmt.Errorf("records: clear missions: %w", err)
	}

	for _, st := range b.Standings {
		for _, r := range st.Records {
			if _, err := tx.Exec(
				"INSERT INTO race_records (event, nation, time) VALUES (?, ?, ?)",
				r.Event, r.Nation, r.Time,
			); err != nil {
				return fmt.Errorf("records: cannot save race record: %w", err)
			}
		}
	}
	for _, m := range b.Missions {
		if _, err := tx.Exec(
			"INSERT INTO mission_records (event, time_remaining) VALUES (?, ?)",
			m.Event, m.TimeRemaining,
		); err != nil {
			return fmt.Errorf("records: cannot save mission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("records: commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
