package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableNames(t *testing.T, ctx context.Context, dsn string) []string {
	t.Helper()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'tasks', 'session') ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestOpen_InMemoryMigrates(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, []string{"session", "tasks", "users"}, tableNames(t, ctx, ":memory:"))
}

func TestOpen_FileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "todo.db")

	require.Len(t, tableNames(t, ctx, dsn), 3)
	// second open sees the applied version and does nothing
	require.Len(t, tableNames(t, ctx, dsn), 3)
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "todo.db"))
	require.Error(t, err)
}
