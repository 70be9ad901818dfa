// Package tasks persists every user's ordered task list.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Repository loads and replaces a user's whole list. Order is significant:
// it defines the positions users address tasks by.
//
// Load returns an empty slice for a user without tasks. Save replaces the
// user's list and leaves other users' lists untouched, subject to
// last-writer-wins between concurrent processes.
type Repository interface {
	Load(ctx context.Context, username string) ([]models.Task, error)
	Save(ctx context.Context, username string, tasks []models.Task) error
}
