package highscore

import (
	"database/sql"
	_ "embed"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var ddl string

// SQLiteStore keeps one row per name; row order is insertion order.
type SQLiteStore struct {
	DB *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err = db.Exec(ddl); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Load() (*Table, error) {
	rows, err := s.DB.Query(`SELECT score, name FROM highscores ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := NewTable()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Score, &e.Name); err != nil {
			return nil, err
		}
		t.Add(e.Score, e.Name)
	}
	return t, rows.Err()
}

// Save replaces every row with the table's current entries.
func (s *SQLiteStore) Save(t *Table) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM highscores`); err != nil {
		return err
	}
	for _, e := range t.Entries() {
		if _, err := tx.Exec(`INSERT INTO highscores (score, name) VALUES (?, ?)`, e.Score, e.Name); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.DB.Close()
}
