package tasks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/dbx"
)

// SQLiteRepository stores one row per task keyed by (username, position).
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context, username string) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT title, description, done, created_at
		FROM tasks WHERE username = ? ORDER BY position
	`, username)
	if err != nil {
		return []models.Task{}, fmt.Errorf("%w: load tasks: %w", common.ErrStorageFailure, err)
	}
	defer rows.Close()

	list := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.Title, &t.Description, &t.Done, &t.CreatedAt); err != nil {
			return []models.Task{}, fmt.Errorf("%w: scan task: %w", common.ErrStorageFailure, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return []models.Task{}, fmt.Errorf("%w: iterate tasks: %w", common.ErrStorageFailure, err)
	}
	return list, nil
}

// Save replaces the user's rows inside one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, username string, tasks []models.Task) error {
	err := dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE username = ?`, username); err != nil {
			return err
		}
		for i, t := range tasks {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (username, position, title, description, done, created_at)
				VALUES (?, ?, ?, ?, ?, ?)
			`, username, i, t.Title, t.Description, t.Done, t.CreatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save tasks: %w", common.ErrStorageFailure, err)
	}
	return nil
}
