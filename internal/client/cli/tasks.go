package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Add prompts for a new task and appends it to the user's list.
func (a *App) Add(ctx context.Context) error {
	username, err := a.identity.RequireLogin(ctx)
	if err != nil {
		return err
	}

	title, err := askNonEmpty(a.term, "Task title")
	if err != nil {
		return err
	}
	description, err := askMultiline(a.term, "Task description")
	if err != nil {
		return err
	}
	createdAt, err := askDate(a.term, "Date and time (YYYY-MM-DD HH:MM, empty = now)")
	if err != nil {
		return err
	}

	task := models.NewTask(title, description, createdAt)
	if err := a.tasks.Add(ctx, username, task); err != nil {
		return err
	}

	a.term.DisplayMessage("Task '"+title+"' added.", SeveritySuccess)
	return nil
}

// List shows every task of the user, numbered from 1.
func (a *App) List(ctx context.Context) error {
	username, err := a.identity.RequireLogin(ctx)
	if err != nil {
		return err
	}

	list, err := a.tasks.List(ctx, username)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.term.DisplayMessage("No tasks.", SeverityInfo)
		return nil
	}

	rows := make([][]string, 0, len(list))
	for i, t := range list {
		rows = append(rows, t.Row(i+1))
	}
	a.term.DisplayTable(models.TaskColumns, rows)
	return nil
}

// Search runs the locator for display only.
func (a *App) Search(ctx context.Context) error {
	username, err := a.identity.RequireLogin(ctx)
	if err != nil {
		return err
	}

	list, err := a.tasks.List(ctx, username)
	if err != nil {
		return err
	}
	_, err = a.locator.Locate(list, false)
	return err
}

// Edit lets the user change a task's title, description and date. An empty
// answer keeps the current value. Nothing is saved without confirmation.
func (a *App) Edit(ctx context.Context) error {
	username, target, ok, err := a.selectTask(ctx)
	if err != nil || !ok {
		return err
	}

	updated := target.Task

	a.term.DisplayMessage("Current title: "+updated.Title, SeverityInfo)
	title, err := a.term.Prompt("New title (empty to keep)")
	if err != nil {
		return err
	}
	if title != "" {
		updated.Title = title
	}

	a.term.DisplayMessage("Current description:\n"+updated.Description, SeverityInfo)
	description, err := askMultiline(a.term, "New description (empty to keep)")
	if err != nil {
		return err
	}
	if description != "" {
		updated.Description = description
	}

	a.term.DisplayMessage("Current date: "+updated.CreatedAt, SeverityInfo)
	date, err := a.term.Prompt("New date YYYY-MM-DD HH:MM (empty to keep)")
	if err != nil {
		return err
	}
	if date != "" {
		if at, err := models.ParseInputTime(date, time.Local); err != nil {
			a.term.DisplayMessage("Invalid format, date unchanged.", SeverityWarn)
		} else {
			updated.CreatedAt = at.Format(models.TimeLayout)
		}
	}

	yes, err := confirm(a.term, "Save changes to task '"+updated.Title+"'?")
	if err != nil {
		return err
	}
	if !yes {
		a.term.DisplayMessage("Edit cancelled.", SeverityWarn)
		return nil
	}

	if err := a.tasks.Update(ctx, username, target.Index, target.Task, updated); err != nil {
		return err
	}
	a.term.DisplayMessage("Task updated.", SeveritySuccess)
	return nil
}

// Delete removes a task after confirmation. Later tasks move up one position.
func (a *App) Delete(ctx context.Context) error {
	username, target, ok, err := a.selectTask(ctx)
	if err != nil || !ok {
		return err
	}

	yes, err := confirm(a.term, "Delete task '"+target.Task.Title+"'?")
	if err != nil {
		return err
	}
	if !yes {
		a.term.DisplayMessage("Delete cancelled.", SeverityWarn)
		return nil
	}

	if err := a.tasks.Delete(ctx, username, target.Index, target.Task); err != nil {
		return err
	}
	a.term.DisplayMessage("Task '"+target.Task.Title+"' deleted.", SeveritySuccess)
	return nil
}

// Done marks a task completed. Unlike edit and delete it does not ask for
// confirmation.
func (a *App) Done(ctx context.Context) error {
	username, target, ok, err := a.selectTask(ctx)
	if err != nil || !ok {
		return err
	}

	done, err := a.tasks.MarkDone(ctx, username, target.Index, target.Task)
	if err != nil {
		return err
	}
	a.term.DisplayMessage("Task '"+done.Title+"' completed.", SeveritySuccess)
	return nil
}

// selectTask resolves exactly one task for a mutation. ok is false when the
// user cancelled or nothing matched.
func (a *App) selectTask(ctx context.Context) (string, models.Match, bool, error) {
	username, err := a.identity.RequireLogin(ctx)
	if err != nil {
		return "", models.Match{}, false, err
	}

	list, err := a.tasks.List(ctx, username)
	if err != nil {
		return "", models.Match{}, false, err
	}

	matches, err := a.locator.Locate(list, true)
	if err != nil || len(matches) == 0 {
		return "", models.Match{}, false, err
	}
	return username, matches[0], true, nil
}
