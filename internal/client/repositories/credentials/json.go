package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

type document = map[string]models.Credential

// JSONRepository keeps all credentials in a single JSON object keyed by
// username. Every call reads the whole file; Create rewrites it.
type JSONRepository struct {
	doc *filex.Document[document]
}

func NewJSONRepository(path string, log logging.Logger) *JSONRepository {
	doc := filex.NewDocument(path, func() document { return document{} })
	doc.OnReset = func(path string, cause error) {
		log.Warn(context.Background(), "credentials file was corrupt and has been reset", "path", path, "error", cause)
	}
	return &JSONRepository{doc: doc}
}

func (r *JSONRepository) load() (document, error) {
	users, err := r.doc.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: load credentials: %w", common.ErrStorageFailure, err)
	}
	if users == nil {
		users = document{}
	}
	return users, nil
}

func (r *JSONRepository) Get(ctx context.Context, username string) (*models.Credential, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	cred, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}

func (r *JSONRepository) Create(ctx context.Context, username string, cred models.Credential) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := users[username]; ok {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}
	users[username] = cred
	if err := r.doc.Store(users); err != nil {
		return fmt.Errorf("%w: save credentials: %w", common.ErrStorageFailure, err)
	}
	return nil
}
