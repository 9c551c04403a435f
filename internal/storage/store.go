// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"expensetracker/internal/models"
)

// Typed storage errors. Handlers and the auth layer classify failures with
// errors.Is against these sentinels.
var (
	// ErrNotFound is returned when a record does not exist or is not visible
	// to the requesting owner.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when a user insert would violate the
	// username uniqueness constraint. The store returns it both from the
	// pre-insert check and from a constraint violation surfaced by the
	// database itself, so concurrent registrations race safely.
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrDuplicateEmail is the email counterpart of ErrDuplicateUsername.
	ErrDuplicateEmail = errors.New("email is already registered")
)

// Store defines the interface for persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler and auth layers.
type Store interface {
	// CreateUser persists a new user. The user.ID and user.CreatedAt fields
	// are populated by the store if unset. Returns ErrDuplicateUsername or
	// ErrDuplicateEmail on uniqueness conflicts, including conflicts only
	// detected at insert time.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username (case-sensitive).
	// Returns ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns ErrNotFound if missing.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns ErrNotFound if missing.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateExpense persists a new expense. ID and timestamps are populated
	// by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, scoped to the given owner.
	// Returns ErrNotFound when the record does not exist or belongs to a
	// different user.
	GetExpense(ctx context.Context, userID, id string) (*models.Expense, error)

	// ListExpenses returns the owner's expenses with date in [from, to],
	// both bounds inclusive, newest first.
	ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]models.Expense, error)

	// UpdateExpense updates an owner-scoped expense. Returns ErrNotFound when
	// the record does not exist or belongs to a different user.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an owner-scoped expense. Returns ErrNotFound when
	// nothing was deleted.
	DeleteExpense(ctx context.Context, userID, id string) error

	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// SeedCategories inserts the given categories, skipping any whose name
	// already exists. Safe to call on every startup.
	SeedCategories(ctx context.Context, categories []models.Category) error

	// Close releases any resources held by the store.
	Close() error
}
