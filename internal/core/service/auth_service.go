package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cavanliu/watchlist/internal/core/domain"
	"github.com/cavanliu/watchlist/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

// ErrInvalidCredentials is returned when the submitted username or password
// does not match the sole admin account.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Login checks the submitted credentials against the sole admin account and
// returns it on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.First(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin user: %w", err)
	}

	if username != user.Username || !s.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// UpsertAdmin creates the sole admin account if none exists, otherwise
// replaces its username and password in place. It reports whether a new
// account was created.
func (s *AuthService) UpsertAdmin(ctx context.Context, username, password string) (created bool, err error) {
	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}

	user, err := s.userRepo.First(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		user = domain.NewUser("Admin", username, hash)
		if err := s.userRepo.Create(ctx, user); err != nil {
			return false, fmt.Errorf("failed to create admin: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load admin user: %w", err)
	}

	user.Username = username
	user.Password = hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, fmt.Errorf("failed to update admin: %w", err)
	}
	return false, nil
}
