// Package services contains application services for the todo client:
// credential handling, the in-process identity and task persistence.
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/cryptox"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

// AuthService registers users and checks their passwords. Passwords are
// stored only as bcrypt hashes.
type AuthService struct {
	users      credentials.Repository
	identity   *Identity
	bcryptCost int
	log        logging.Logger
}

// NewAuthService constructs an AuthService. identity receives successful
// logins.
func NewAuthService(users credentials.Repository, identity *Identity, bcryptCost int, log logging.Logger) *AuthService {
	return &AuthService{users: users, identity: identity, bcryptCost: bcryptCost, log: log}
}

// Register creates username with password.
//
// Fails with common.ErrEmptyInput for a blank username or a password that is
// empty after trimming, and with common.ErrAlreadyExists for a taken name.
// The password itself is hashed as given, without trimming.
func (s *AuthService) Register(ctx context.Context, username string, password []byte) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", common.ErrEmptyInput)
	}
	if len(bytes.TrimSpace(password)) == 0 {
		return fmt.Errorf("%w: password must not be empty", common.ErrEmptyInput)
	}

	existing, err := s.users.Get(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return fmt.Errorf("%w: password longer than 72 bytes", common.ErrInvalidFormat)
		}
		return err
	}

	if err := s.users.Create(ctx, username, models.Credential{PasswordHash: hash}); err != nil {
		return err
	}

	s.log.Info(ctx, "user registered", "user", username)
	return nil
}

// Verify reports whether username exists and password matches its hash.
func (s *AuthService) Verify(ctx context.Context, username string, password []byte) (bool, error) {
	cred, err := s.users.Get(ctx, username)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, nil
	}
	return cryptox.CheckPassword(cred.PasswordHash, password), nil
}

// Login verifies the credentials and makes username the current identity.
// Unknown users and wrong passwords both yield common.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, username string, password []byte) error {
	ok, err := s.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Info(ctx, "login rejected", "user", username)
		return common.ErrUnauthorized
	}
	return s.identity.Login(ctx, username)
}

// Logout ends the current session; see Identity.Logout.
func (s *AuthService) Logout(ctx context.Context) (string, error) {
	return s.identity.Logout(ctx)
}
