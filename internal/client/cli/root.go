package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophtodo/internal/buildinfo"
	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/storage"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/spf13/cobra"
)

// openStorage is a test seam for storage.Open.
var openStorage = storage.Open

// NewRootCommand builds the todo command tree:
//
//	todo auth register|login|logout|whoami
//	todo tasks add|list|search|edit|delete|done
//	todo shell
//	todo version
//
// cfg already holds defaults and config file values; flags parsed here are
// applied on top. Only commands that need data open storage, and they close
// it when they return, whatever the outcome. help, completion and version
// never touch the data directory.
func NewRootCommand(cfg *config.Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "Multi-user to-do list manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	config.BindFlags(root.PersistentFlags(), cfg)

	// withApp opens storage, builds an App over it and runs fn.
	withApp := func(ctx context.Context, fn func(*App) error) (err error) {
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err := logging.New(errOut, cfg.LogLevel)
		if err != nil {
			return err
		}
		repos, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := repos.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("close storage: %w", cerr))
			}
		}()

		return fn(NewApp(cfg, NewConsole(in, out), repos, log))
	}

	// run adapts an App method to cobra, swallowing recoverable errors.
	run := func(fn func(*App, context.Context) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(app *App) error {
				return app.Report(ctx, fn(app, ctx))
			})
		}
	}

	auth := &cobra.Command{Use: "auth", Short: "Manage accounts and the session"}
	auth.AddCommand(
		&cobra.Command{Use: "register", Short: "Create an account", Args: cobra.NoArgs, RunE: run((*App).Register)},
		&cobra.Command{Use: "login", Short: "Log in", Args: cobra.NoArgs, RunE: run((*App).Login)},
		&cobra.Command{Use: "logout", Short: "Log out", Args: cobra.NoArgs, RunE: run((*App).Logout)},
		&cobra.Command{Use: "whoami", Short: "Show the logged-in user", Args: cobra.NoArgs, RunE: run((*App).Whoami)},
	)

	tasks := &cobra.Command{Use: "tasks", Short: "Manage your tasks"}
	tasks.AddCommand(
		&cobra.Command{Use: "add", Short: "Add a task", Args: cobra.NoArgs, RunE: run((*App).Add)},
		&cobra.Command{Use: "list", Aliases: []string{"ls"}, Short: "List tasks", Args: cobra.NoArgs, RunE: run((*App).List)},
		&cobra.Command{Use: "search", Short: "Find tasks by position, title or date", Args: cobra.NoArgs, RunE: run((*App).Search)},
		&cobra.Command{Use: "edit", Short: "Edit a task", Args: cobra.NoArgs, RunE: run((*App).Edit)},
		&cobra.Command{Use: "delete", Short: "Delete a task", Args: cobra.NoArgs, RunE: run((*App).Delete)},
		&cobra.Command{Use: "done", Short: "Mark a task completed", Args: cobra.NoArgs, RunE: run((*App).Done)},
	)

	shell := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(app *App) error {
				buildinfo.PrintBuildData(out)
				fmt.Fprintln(out, "Welcome to todo (type 'help' for commands)")

				app.loginHint = "login"
				if err := app.Report(ctx, app.resume(ctx)); err != nil {
					return err
				}
				return runREPL(ctx, app, app.term)
			})
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(out)
		},
	}

	root.AddCommand(auth, tasks, shell, version)
	return root
}
