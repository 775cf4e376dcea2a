// Package services contains server-side business logic: account lifecycle
// and note handling.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pathshala/internal/common"
	"pathshala/internal/server/auth"
	"pathshala/internal/server/config"
	"pathshala/internal/server/models"
	"pathshala/internal/server/repositories/repomanager"
)

// AuthResult bundles the authenticated user and a freshly minted token.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides authentication-related operations:
// - Register: create accounts and hash passwords
// - Login: verify credentials and mint JWTs
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.Auth.SecretKey),
		tokenValidity: cfg.Auth.TokenValidity,
	}
}

// Register creates a new student account. The password is stored as a bcrypt
// hash; the plaintext never reaches the repository. A duplicate email yields
// common.ErrEmailAlreadyRegistered.
func (s *UserService) Register(ctx context.Context, user *models.User, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if user.Role == "" {
		user.Role = common.RoleStudent
	}

	repo := s.repomanager.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(created.ID, created.Role, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: created}, nil
}

// Login verifies the email/password pair and, on success, returns the user
// with a new token. Unknown emails and wrong passwords are indistinguishable
// to the caller: both yield common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
