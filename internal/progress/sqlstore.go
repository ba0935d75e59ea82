package progress

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabelabs/gabe-web/internal/database"
)

// SQLStore persists records as JSON documents in the progress_records
// table, one row per session id. Older rows written before newer record
// fields existed unmarshal fine; Normalize backfills what is missing.
type SQLStore struct {
	db *database.DB
}

func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(sessionID string) (*Record, error) {
	var data string
	err := s.db.Get(&data, `SELECT data FROM progress_records WHERE session_id = ?`, sessionID)
	if err == sql.ErrNoRows {
		r := NewRecord()
		if err := s.Save(sessionID, r); err != nil {
			return nil, err
		}
		return r, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load progress record: %w", err)
	}

	r := NewRecord()
	if err := json.Unmarshal([]byte(data), r); err != nil {
		return nil, fmt.Errorf("failed to decode progress record: %w", err)
	}
	r.Normalize()
	return r, nil
}

func (s *SQLStore) Save(sessionID string, r *Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode progress record: %w", err)
	}

	query := `
		INSERT INTO progress_records (session_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, sessionID, string(data), time.Now()); err != nil {
		return fmt.Errorf("failed to save progress record: %w", err)
	}
	return nil
}
