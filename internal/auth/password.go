package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"expensetracker/internal/models"
	"expensetracker/internal/storage"
)

var (
	// ErrInvalidCredentials is returned for every login failure. It is
	// deliberately the same for "no such user" and "wrong password" so the
	// response never reveals which part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword rejects credentials below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	// ErrMissingField rejects registrations with an empty username or email.
	ErrMissingField = errors.New("username and email are required")
)

// UserStorage defines the interface for user persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 6 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password.
//
// Username is checked before email, so when both collide the caller sees the
// username conflict. The pre-checks give friendly errors in the common case;
// the database uniqueness constraint remains the actual guarantee, and a
// conflict surfaced at insert time comes back as the same typed error.
func (a *PasswordAuthenticator) Register(ctx context.Context, username, email, credential string) (*models.User, error) {
	if username == "" || email == "" {
		return nil, ErrMissingField
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	// Check if username already exists
	if _, err := a.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, storage.ErrDuplicateUsername
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	// Check if email already exists
	if _, err := a.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, storage.ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	// Hash the password. bcrypt embeds a random per-hash salt and is an
	// adaptive (deliberately slow) function.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	// Save to storage. Duplicate errors pass through untouched so a race
	// that slipped past the pre-check still reports the right conflict.
	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) || errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// bcrypt comparison is constant-time with respect to the hash contents.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
