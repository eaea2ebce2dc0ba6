package store

import (
	"time"

	"github.com/google/uuid"
)

// SaveActionState inserts or updates the stored state of an action.
func (db *DB) SaveActionState(s ActionState) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO action_state (id, checked, enabled, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			checked = excluded.checked,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at`,
		s.ID, s.Checked, s.Enabled, now)
	return err
}

// LoadActionStates returns every stored action state keyed by action id.
func (db *DB) LoadActionStates() (map[string]ActionState, error) {
	rows, err := db.Query(`SELECT id, checked, enabled, updated_at FROM action_state`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	states := make(map[string]ActionState)
	for rows.Next() {
		var s ActionState
		if err := rows.Scan(&s.ID, &s.Checked, &s.Enabled, &s.UpdatedAt); err != nil {
			return nil, err
		}
		states[s.ID] = s
	}
	return states, rows.Err()
}

// DeleteActionState forgets an action. Deleting an unknown id is not an error.
func (db *DB) DeleteActionState(id string) error {
	_, err := db.Exec(`DELETE FROM action_state WHERE id = ?`, id)
	return err
}

// RecordActivation appends an activation of actionID. source names what
// triggered it, e.g. "button", "menu" or "shortcut".
func (db *DB) RecordActivation(actionID, source string) (*Activation, error) {
	a := &Activation{
		ID:          uuid.NewString(),
		ActionID:    actionID,
		Source:      source,
		ActivatedAt: time.Now().UnixMilli(),
	}
	_, err := db.Exec(`
		INSERT INTO activations (id, action_id, source, activated_at)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.ActionID, a.Source, a.ActivatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// RecentActivations returns the newest activations first.
func (db *DB) RecentActivations(limit int) ([]Activation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT id, action_id, source, activated_at
		FROM activations
		ORDER BY activated_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Activation
	for rows.Next() {
		var a Activation
		if err := rows.Scan(&a.ID, &a.ActionID, &a.Source, &a.ActivatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ActivationCounts returns how often each action was activated.
func (db *DB) ActivationCounts() (map[string]int, error) {
	rows, err := db.Query(`SELECT action_id, COUNT(*) FROM activations GROUP BY action_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// PruneActivations keeps only the newest keep activations and returns how
// many were removed.
func (db *DB) PruneActivations(keep int) (int64, error) {
	res, err := db.Exec(`
		DELETE FROM activations WHERE rowid NOT IN (
			SELECT rowid FROM activations ORDER BY activated_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
