package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// SQLiteRepository keeps the session in a single-row table (id = 1).
type SQLiteRepository struct {
	db  dbx.DBTX
	log logging.Logger
}

func NewSQLiteRepository(db dbx.DBTX, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, username, session_id, created_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			session_id = excluded.session_id,
			created_at = excluded.created_at
	`, s.Username, s.ID, s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: save session: %w", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Session, error) {
	var (
		s         models.Session
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, `SELECT username, session_id, created_at FROM session WHERE id = 1`).
		Scan(&s.Username, &s.ID, &createdAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			r.log.Debug(ctx, "session row unreadable", "error", err)
		}
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		s.CreatedAt = t
	}
	if !s.Active() {
		return nil, nil
	}
	return &s, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("%w: clear session: %w", common.ErrStorageFailure, err)
	}
	return nil
}
