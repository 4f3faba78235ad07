package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS daily_record (
    position INTEGER PRIMARY KEY,
    date TEXT NOT NULL,
    goal INTEGER NOT NULL,
    glass_size INTEGER NOT NULL,
    sip_size REAL NOT NULL,
    intake REAL NOT NULL,
    extra TEXT
);

CREATE INDEX IF NOT EXISTS idx_daily_record_date ON daily_record(date);
`

// SQLite keeps the history in a single table. Rows are ordered by position,
// which mirrors the array index of the JSON file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Load() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT date, goal, glass_size, sip_size, intake, extra
		FROM daily_record
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var extra sql.NullString
		if err := rows.Scan(&r.Date, &r.Goal, &r.GlassSize, &r.SipSize, &r.Intake, &extra); err != nil {
			return nil, err
		}
		if extra.Valid && extra.String != "" {
			if err := json.Unmarshal([]byte(extra.String), &r.extra); err != nil {
				return nil, fmt.Errorf("%w: extra fields of %s: %v", ErrCorrupt, r.Date, err)
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLite) Save(records []Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM daily_record`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO daily_record (position, date, goal, glass_size, sip_size, intake, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		var extra sql.NullString
		if len(r.extra) > 0 {
			b, err := json.Marshal(r.extra)
			if err != nil {
				return err
			}
			extra = sql.NullString{String: string(b), Valid: true}
		}
		if _, err := stmt.Exec(i, r.Date, r.Goal, r.GlassSize, r.SipSize, r.Intake, extra); err != nil {
			return fmt.Errorf("insert %s: %w", r.Date, err)
		}
	}
	return tx.Commit()
}
