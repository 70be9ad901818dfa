// Package sessions persists the single current session of this installation.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Repository holds at most one session.
//
//   - Save overwrites any previous session.
//   - Load returns (nil, nil) when there is no session. Unreadable or corrupt
//     data also reads as no session.
//   - Clear is idempotent.
type Repository interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}
