package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/google/uuid"
)

// Identity tracks who is logged in for the lifetime of one process (or one
// shell), backed by the persisted session.
//
// It starts empty. RequireLogin adopts the persisted session on demand, so a
// process started before a login elsewhere still picks it up.
type Identity struct {
	sessions sessions.Repository
	users    credentials.Repository
	log      logging.Logger

	current string

	now   func() time.Time
	newID func() string
}

func NewIdentity(sessions sessions.Repository, users credentials.Repository, log logging.Logger) *Identity {
	return &Identity{
		sessions: sessions,
		users:    users,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Current returns the in-process username without consulting storage.
func (i *Identity) Current() string {
	return i.current
}

// RequireLogin returns the logged-in username.
//
// When nothing is cached it makes one attempt to adopt the persisted session;
// a session naming a user that no longer exists counts as absent. Fails with
// common.ErrNotLoggedIn otherwise.
func (i *Identity) RequireLogin(ctx context.Context) (string, error) {
	if i.current != "" {
		return i.current, nil
	}

	s := i.loadSession(ctx)
	if !s.Active() {
		return "", common.ErrNotLoggedIn
	}

	cred, err := i.users.Get(ctx, s.Username)
	if err != nil {
		return "", err
	}
	if cred == nil {
		i.log.Debug(ctx, "session names unknown user, ignoring", "user", s.Username, "session_id", s.ID)
		return "", common.ErrNotLoggedIn
	}

	i.current = s.Username
	i.log.Debug(ctx, "session adopted", "user", s.Username, "session_id", s.ID)
	return i.current, nil
}

// Login sets the current identity and persists it as the session. The
// in-process identity is set even when persisting fails.
func (i *Identity) Login(ctx context.Context, username string) error {
	i.current = username

	s := models.Session{Username: username, ID: i.newID(), CreatedAt: i.now().UTC()}
	if err := i.sessions.Save(ctx, s); err != nil {
		i.log.Error(ctx, "session not saved", "user", username, "error", err)
		return err
	}

	i.log.Info(ctx, "logged in", "user", username, "session_id", s.ID)
	return nil
}

// Logout clears the session and the current identity and returns who was
// logged out. With no session at all it returns "" and no error.
func (i *Identity) Logout(ctx context.Context) (string, error) {
	username := i.current
	if username == "" {
		if s := i.loadSession(ctx); s.Active() {
			username = s.Username
		}
	}
	if username == "" {
		return "", nil
	}

	i.current = ""
	if err := i.sessions.Clear(ctx); err != nil {
		return username, fmt.Errorf("logout %q: %w", username, err)
	}

	i.log.Info(ctx, "logged out", "user", username)
	return username, nil
}

func (i *Identity) loadSession(ctx context.Context) *models.Session {
	s, err := i.sessions.Load(ctx)
	if err != nil {
		i.log.Debug(ctx, "session unreadable, treating as absent", "error", err)
		return nil
	}
	return s
}
