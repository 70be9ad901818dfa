// Package credentials stores the username → password hash mapping.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
)

// Repository persists credentials. Usernames are unique and case-sensitive.
//
// Get returns (nil, nil) for an unknown username. Create fails with
// common.ErrAlreadyExists when the username is taken and leaves the stored
// record untouched.
type Repository interface {
	Get(ctx context.Context, username string) (*models.Credential, error)
	Create(ctx context.Context, username string, cred models.Credential) error
}
