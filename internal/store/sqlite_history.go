package store

import "fmt"

func (s *Store) AppendEntry(description string, timestamp int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO history (timestamp, description) VALUES (?, ?)",
		timestamp, description,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history entry: %w", err)
	}

	return result.LastInsertId()
}

// GetEntries returns the whole history in insertion order.
func (s *Store) GetEntries() ([]*Entry, error) {
	rows, err := s.db.Query(`
        SELECT id, timestamp, description
        FROM history
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
