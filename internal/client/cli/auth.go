package cli

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// Register prompts for a username and a password and creates the account.
// It does not log the new user in.
func (a *App) Register(ctx context.Context) error {
	username, err := askNonEmpty(a.term, "Username")
	if err != nil {
		return err
	}

	password, err := a.term.PromptSecret("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		return err
	}

	a.term.DisplayMessage("Account created for "+username+". Log in with: "+a.loginHint, SeveritySuccess)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	username, err := a.term.Prompt("Username")
	if err != nil {
		return err
	}

	password, err := a.term.PromptSecret("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}

	a.term.DisplayMessage("Logged in as "+username, SeveritySuccess)
	return nil
}

// Logout ends the session. Without one it says so; that is not an error.
func (a *App) Logout(ctx context.Context) error {
	username, err := a.auth.Logout(ctx)
	if err != nil {
		return err
	}
	if username == "" {
		a.term.DisplayMessage("No active session.", SeverityWarn)
		return nil
	}
	a.term.DisplayMessage("Logged out: "+username, SeveritySuccess)
	return nil
}

// Whoami prints the logged-in user.
func (a *App) Whoami(ctx context.Context) error {
	username, err := a.identity.RequireLogin(ctx)
	if err != nil {
		return err
	}
	a.term.DisplayMessage("Logged in as "+username, SeverityInfo)
	return nil
}
