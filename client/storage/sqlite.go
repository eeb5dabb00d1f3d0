package storage

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const createKvTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite keeps the items in the kv table of a SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates when missing) the storage file at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "sqlite open failed")
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(createKvTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "kv table create failed")
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "kv read %q failed", key)
	}
	return value, true, nil
}

func (s *SQLite) SetItem(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return errors.Wrapf(err, "kv write %q failed", key)
}

func (s *SQLite) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrapf(err, "kv delete %q failed", key)
}

func (s *SQLite) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, errors.Wrap(err, "kv keys read failed")
	}
	defer rows.Close()
	keys := []string{}
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, errors.Wrap(err, "kv key scan failed")
		}
		keys = append(keys, key)
	}
	return keys, errors.Wrap(rows.Err(), "kv keys read failed")
}

func (s *SQLite) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	return errors.Wrap(err, "kv clear failed")
}
