// Package storage opens the configured backend and hands out the repository
// set used by the services.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/database"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/tasks"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

type Repositories struct {
	Credentials credentials.Repository
	Sessions    sessions.Repository
	Tasks       tasks.Repository

	db *sql.DB
}

// Open creates the data directory and wires repositories for cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Repositories, error) {
	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	switch cfg.Storage {
	case config.StorageJSON:
		log.Debug(ctx, "using json storage", "dir", dir)
		return &Repositories{
			Credentials: credentials.NewJSONRepository(cfg.UsersPath(), log),
			Sessions:    sessions.NewJSONRepository(cfg.SessionPath(), log),
			Tasks:       tasks.NewJSONRepository(cfg.TasksPath(), log),
		}, nil

	case config.StorageSQLite:
		db, err := database.Open(ctx, cfg.DatabasePath())
		if err != nil {
			return nil, err
		}
		log.Debug(ctx, "using sqlite storage", "path", cfg.DatabasePath())
		return &Repositories{
			Credentials: credentials.NewSQLiteRepository(db),
			Sessions:    sessions.NewSQLiteRepository(db, log),
			Tasks:       tasks.NewSQLiteRepository(db),
			db:          db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// Close releases the database handle, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
