package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
)

// JSONRepository stores the session as {"username": ...} in its own file.
// Reading never creates the file.
type JSONRepository struct {
	doc *filex.Document[models.Session]
	log logging.Logger
}

func NewJSONRepository(path string, log logging.Logger) *JSONRepository {
	return &JSONRepository{
		doc: filex.NewDocument(path, func() models.Session { return models.Session{} }),
		log: log,
	}
}

func (r *JSONRepository) Save(ctx context.Context, s models.Session) error {
	if err := r.doc.Store(s); err != nil {
		return fmt.Errorf("%w: save session: %w", common.ErrStorageFailure, err)
	}
	return nil
}

func (r *JSONRepository) Load(ctx context.Context) (*models.Session, error) {
	data, err := os.ReadFile(r.doc.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Debug(ctx, "session file unreadable", "path", r.doc.Path(), "error", err)
		}
		return nil, nil
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		r.log.Debug(ctx, "session file corrupt", "path", r.doc.Path(), "error", err)
		return nil, nil
	}
	if !s.Active() {
		return nil, nil
	}
	return &s, nil
}

func (r *JSONRepository) Clear(ctx context.Context) error {
	if err := r.doc.Remove(); err != nil {
		return fmt.Errorf("%w: clear session: %w", common.ErrStorageFailure, err)
	}
	return nil
}
