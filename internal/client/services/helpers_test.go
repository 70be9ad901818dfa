package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/sessions"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/tasks"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	dir      string
	users    credentials.Repository
	sessions sessions.Repository
	tasks    tasks.Repository
	identity *Identity
	auth     *AuthService
	svc      *TaskService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log := logging.Discard()

	f := &fixture{
		dir:      dir,
		users:    credentials.NewJSONRepository(filepath.Join(dir, "users.json"), log),
		sessions: sessions.NewJSONRepository(filepath.Join(dir, "session.json"), log),
		tasks:    tasks.NewJSONRepository(filepath.Join(dir, "tasks.json"), log),
	}
	f.identity = NewIdentity(f.sessions, f.users, log)
	f.auth = NewAuthService(f.users, f.identity, bcrypt.MinCost, log)
	f.svc = NewTaskService(f.tasks, log)
	return f
}

// reopen returns a fresh Identity over the same files, as a new process would see them.
func (f *fixture) reopen() *Identity {
	return NewIdentity(f.sessions, f.users, logging.Discard())
}

// failingTasks is a tasks.Repository whose Save always fails.
type failingTasks struct {
	tasks.Repository
	err error
}

func (r failingTasks) Save(context.Context, string, []models.Task) error {
	return r.err
}
