package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

type document = map[string][]models.Task

// JSONRepository keeps every user's tasks in one JSON object keyed by
// username. Save is a read-modify-write of the whole file with no locking, so
// two processes writing at once (even for different users) can lose an update.
type JSONRepository struct {
	doc *filex.Document[document]
}

func NewJSONRepository(path string, log logging.Logger) *JSONRepository {
	doc := filex.NewDocument(path, func() document { return document{} })
	doc.OnReset = func(path string, cause error) {
		log.Warn(context.Background(), "tasks file was corrupt and has been reset", "path", path, "error", cause)
	}
	return &JSONRepository{doc: doc}
}

func (r *JSONRepository) load() (document, error) {
	all, err := r.doc.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: load tasks: %w", common.ErrStorageFailure, err)
	}
	if all == nil {
		all = document{}
	}
	return all, nil
}

func (r *JSONRepository) Load(ctx context.Context, username string) ([]models.Task, error) {
	all, err := r.load()
	if err != nil {
		return []models.Task{}, err
	}
	list := all[username]
	if list == nil {
		return []models.Task{}, nil
	}
	return list, nil
}

func (r *JSONRepository) Save(ctx context.Context, username string, tasks []models.Task) error {
	all, err := r.load()
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	all[username] = tasks
	if err := r.doc.Store(all); err != nil {
		return fmt.Errorf("%w: save tasks: %w", common.ErrStorageFailure, err)
	}
	return nil
}
