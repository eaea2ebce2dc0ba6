package store

import (
	"database/sql"
	"errors"
	"time"
)

// SaveDocument inserts or replaces a document.
func (db *DB) SaveDocument(name, body string) error {
	_, err := db.Exec(`
		INSERT INTO documents (name, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		name, body, time.Now().UnixMilli())
	return err
}

// GetDocument returns a document by name, or nil if there is none.
func (db *DB) GetDocument(name string) (*Document, error) {
	var d Document
	err := db.QueryRow(`SELECT name, body, updated_at FROM documents WHERE name = ?`, name).
		Scan(&d.Name, &d.Body, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDocuments returns document names, most recently saved first.
func (db *DB) ListDocuments() ([]string, error) {
	rows, err := db.Query(`SELECT name FROM documents ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
