package credentials

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/client/database"
	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Repository {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Repository{
		"json":   NewJSONRepository(filepath.Join(t.TempDir(), "users.json"), logging.Discard()),
		"sqlite": NewSQLiteRepository(db),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := repo.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Nil(t, got, "unknown user")

			require.NoError(t, repo.Create(ctx, "alice", models.Credential{PasswordHash: "$2a$hash-1"}))

			got, err = repo.Get(ctx, "alice")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "$2a$hash-1", got.PasswordHash)

			got, err = repo.Get(ctx, "Alice")
			require.NoError(t, err)
			assert.Nil(t, got, "usernames are case-sensitive")
		})
	}
}

func TestRepository_DuplicateKeepsOriginal(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Create(ctx, "alice", models.Credential{PasswordHash: "first"}))
			err := repo.Create(ctx, "alice", models.Credential{PasswordHash: "second"})
			require.ErrorIs(t, err, common.ErrAlreadyExists)

			got, err := repo.Get(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "first", got.PasswordHash)
		})
	}
}

func TestJSONRepository_FileLayout(t *testing.T) {
	p := filepath.Join(t.TempDir(), "users.json")
	repo := NewJSONRepository(p, logging.Discard())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "alice", models.Credential{PasswordHash: "h1"}))
	require.NoError(t, repo.Create(ctx, "bob", models.Credential{PasswordHash: "h2"}))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	var raw map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]map[string]string{
		"alice": {"password": "h1"},
		"bob":   {"password": "h2"},
	}, raw)
}

func TestJSONRepository_CorruptFileReset(t *testing.T) {
	p := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(p, []byte("<<garbage>>"), 0o600))
	repo := NewJSONRepository(p, logging.Discard())
	ctx := context.Background()

	got, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestJSONRepository_NullDocument(t *testing.T) {
	p := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(p, []byte("null"), 0o600))
	repo := NewJSONRepository(p, logging.Discard())

	require.NoError(t, repo.Create(context.Background(), "alice", models.Credential{PasswordHash: "h"}))
}
