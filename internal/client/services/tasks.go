package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/tasks"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// TaskService reads and changes one user's task list.
//
// Mutations address a task by its absolute index together with the snapshot
// the caller saw when choosing it. The list is reloaded before writing and the
// change is refused with common.ErrTaskChanged when the task at that index is
// no longer the snapshot.
type TaskService struct {
	repo tasks.Repository
	log  logging.Logger
}

func NewTaskService(repo tasks.Repository, log logging.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// List returns the user's tasks in stored order.
func (s *TaskService) List(ctx context.Context, username string) ([]models.Task, error) {
	return s.repo.Load(ctx, username)
}

// Add appends task to the user's list.
func (s *TaskService) Add(ctx context.Context, username string, task models.Task) error {
	list, err := s.repo.Load(ctx, username)
	if err != nil {
		return err
	}
	return s.save(ctx, username, append(list, task))
}

// Update replaces the task at index with updated.
func (s *TaskService) Update(ctx context.Context, username string, index int, snapshot, updated models.Task) error {
	return s.mutate(ctx, username, index, snapshot, func(list []models.Task) []models.Task {
		list[index] = updated
		return list
	})
}

// Delete removes the task at index; later tasks move down by one.
func (s *TaskService) Delete(ctx context.Context, username string, index int, snapshot models.Task) error {
	return s.mutate(ctx, username, index, snapshot, func(list []models.Task) []models.Task {
		return append(list[:index], list[index+1:]...)
	})
}

// MarkDone sets Done on the task at index and returns the updated task.
func (s *TaskService) MarkDone(ctx context.Context, username string, index int, snapshot models.Task) (models.Task, error) {
	var done models.Task
	err := s.mutate(ctx, username, index, snapshot, func(list []models.Task) []models.Task {
		list[index].Done = true
		done = list[index]
		return list
	})
	return done, err
}

func (s *TaskService) mutate(ctx context.Context, username string, index int, snapshot models.Task, fn func([]models.Task) []models.Task) error {
	list, err := s.repo.Load(ctx, username)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return fmt.Errorf("task #%d: %w", index+1, common.ErrTaskChanged)
	}
	if list[index] != snapshot {
		return fmt.Errorf("task #%d %q: %w", index+1, snapshot.Title, common.ErrTaskChanged)
	}
	return s.save(ctx, username, fn(list))
}

func (s *TaskService) save(ctx context.Context, username string, list []models.Task) error {
	if err := s.repo.Save(ctx, username, list); err != nil {
		s.log.Error(ctx, "tasks not saved", "user", username, "error", err)
		return err
	}
	return nil
}
