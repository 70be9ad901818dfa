package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/services"
	"github.com/dmitrijs2005/gophtodo/internal/client/storage"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// App holds the services and the terminal for one process. The identity it
// carries lives as long as the App: one command, or a whole shell session.
type App struct {
	term     Terminal
	auth     *services.AuthService
	identity *services.Identity
	tasks    *services.TaskService
	locator  *Locator
	log      logging.Logger

	// loginHint is how the user is told to log in from where they are.
	loginHint string
}

func NewApp(cfg *config.Config, t Terminal, repos *storage.Repositories, log logging.Logger) *App {
	identity := services.NewIdentity(repos.Sessions, repos.Credentials, log)
	return &App{
		term:     t,
		auth:     services.NewAuthService(repos.Credentials, identity, cfg.BcryptCost, log),
		identity: identity,
		tasks:    services.NewTaskService(repos.Tasks, log),
		locator:  NewLocator(t),
		log:      log,

		loginHint: "todo auth login",
	}
}

func (a *App) isLoggedIn() bool {
	return a.identity.Current() != ""
}

// resume adopts a persisted session, if there is one, so that a shell starts
// out logged in. No session is not an error.
func (a *App) resume(ctx context.Context) error {
	if _, err := a.identity.RequireLogin(ctx); err != nil && !errors.Is(err, common.ErrNotLoggedIn) {
		return err
	}
	return nil
}

func (a *App) status() string {
	if u := a.identity.Current(); u != "" {
		return "(" + u + ")"
	}
	return ""
}

// Report shows a recoverable error to the user and swallows it. Any other
// error is returned unchanged.
func (a *App) Report(ctx context.Context, err error) error {
	if err == nil || !common.IsRecoverable(err) {
		return err
	}

	a.log.Debug(ctx, "command ended early", "error", err)

	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		a.term.DisplayMessage("You must be logged in.", SeverityError)
		a.term.DisplayMessage("Use: "+a.loginHint, SeverityWarn)
	case errors.Is(err, common.ErrUnauthorized):
		a.term.DisplayMessage("Invalid username or password.", SeverityError)
	case errors.Is(err, common.ErrAlreadyExists):
		a.term.DisplayMessage("This username already exists.", SeverityError)
	case errors.Is(err, common.ErrTaskChanged):
		a.term.DisplayMessage("The task was changed by someone else, nothing was saved. Try again.", SeverityError)
	case errors.Is(err, common.ErrStorageFailure):
		a.term.DisplayMessage("Could not access storage: "+err.Error(), SeverityError)
	default:
		a.term.DisplayMessage(err.Error(), SeverityError)
	}
	return nil
}
