package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, username string) (*models.Credential, error) {
	var cred models.Credential
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE username = ?`, username).Scan(&cred.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user %q: %w", common.ErrStorageFailure, username, err)
	}
	return &cred, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, username string, cred models.Credential) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash) VALUES (?, ?)
		ON CONFLICT(username) DO NOTHING
	`, username, cred.PasswordHash)
	if err != nil {
		return fmt.Errorf("%w: create user %q: %w", common.ErrStorageFailure, username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: create user %q: %w", common.ErrStorageFailure, username, err)
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}
	return nil
}
