package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.auth.Register(ctx, "alice", []byte("secret1")))

	cred, err := f.users.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.NotEqual(t, "secret1", cred.PasswordHash)
	assert.True(t, strings.HasPrefix(cred.PasswordHash, "$2"))

	// registering does not log in
	assert.Empty(t, f.identity.Current())
}

func TestAuthService_Register_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.auth.Register(ctx, "alice", []byte("secret1")))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"blank username", "   ", "pw", common.ErrEmptyInput},
		{"empty password", "bob", "", common.ErrEmptyInput},
		{"whitespace password", "bob", " \t ", common.ErrEmptyInput},
		{"duplicate", "alice", "other", common.ErrAlreadyExists},
		{"too long", "carol", strings.Repeat("x", 73), common.ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.auth.Register(ctx, tt.username, []byte(tt.password))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// the duplicate attempt left the original password in place
	ok, err := f.auth.Verify(ctx, "alice", []byte("secret1"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.auth.Register(ctx, "alice", []byte("secret1")))

	for _, pw := range []string{"", "Secret1", "SECRET1", "secret", "secret1 "} {
		ok, err := f.auth.Verify(ctx, "alice", []byte(pw))
		require.NoError(t, err)
		assert.False(t, ok, "password %q", pw)
	}

	ok, err := f.auth.Verify(ctx, "nobody", []byte("secret1"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.auth.Verify(ctx, "Alice", []byte("secret1"))
	require.NoError(t, err)
	assert.False(t, ok, "usernames are case-sensitive")
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.auth.Register(ctx, "alice", []byte("secret1")))

	require.ErrorIs(t, f.auth.Login(ctx, "alice", []byte("nope")), common.ErrUnauthorized)
	require.ErrorIs(t, f.auth.Login(ctx, "ghost", []byte("secret1")), common.ErrUnauthorized)
	assert.Empty(t, f.identity.Current())

	require.NoError(t, f.auth.Login(ctx, "alice", []byte("secret1")))
	assert.Equal(t, "alice", f.identity.Current())

	s, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "alice", s.Username)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.auth.Register(ctx, "alice", []byte("secret1")))
	require.NoError(t, f.auth.Login(ctx, "alice", []byte("secret1")))

	who, err := f.auth.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", who)

	who, err = f.auth.Logout(ctx)
	require.NoError(t, err)
	assert.Empty(t, who)
}
