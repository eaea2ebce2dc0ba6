package store

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a profile's state.db: persisted action state, the activation log
// and saved documents.
type DB struct {
	*sql.DB
	path string
}

// dsn builds the go-sqlite3 connection string. Writes come from the UI
// goroutine only, so transactions take the write lock up front.
func dsn(path string) string {
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "5000")
	q.Set("_foreign_keys", "on")
	q.Set("_txlock", "immediate")
	return path + "?" + q.Encode()
}

// Open opens or creates the store at path. The profile lock already keeps
// other processes out, so one connection is enough.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping store %s: %w", path, err)
	}
	return &DB{DB: db, path: path}, nil
}

// Path returns the file the store was opened from.
func (db *DB) Path() string { return db.path }
