package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"expensetracker/internal/models"
	"expensetracker/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser assigns ID and timestamp", func(t *testing.T) {
		user := &models.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		}

		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == "" {
			t.Error("Expected user ID to be generated")
		}
		if user.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}

		retrieved, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if retrieved.ID != user.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, user.ID)
		}
		if retrieved.PasswordHash != "hash" {
			t.Errorf("PasswordHash mismatch: got %s", retrieved.PasswordHash)
		}
	})

	t.Run("duplicate username maps to typed error", func(t *testing.T) {
		dup := &models.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "hash",
		}
		err := store.CreateUser(ctx, dup)
		if !errors.Is(err, storage.ErrDuplicateUsername) {
			t.Errorf("got %v, want ErrDuplicateUsername", err)
		}
	})

	t.Run("duplicate email maps to typed error", func(t *testing.T) {
		dup := &models.User{
			Username:     "alice2",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		}
		err := store.CreateUser(ctx, dup)
		if !errors.Is(err, storage.ErrDuplicateEmail) {
			t.Errorf("got %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("lookups return ErrNotFound for missing users", func(t *testing.T) {
		if _, err := store.GetUserByUsername(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("by username: got %v, want ErrNotFound", err)
		}
		if _, err := store.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("by email: got %v, want ErrNotFound", err)
		}
		if _, err := store.GetUserByID(ctx, "missing-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("by id: got %v, want ErrNotFound", err)
		}
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := &models.User{Username: "owner", Email: "owner@example.com", PasswordHash: "h"}
	other := &models.User{Username: "other", Email: "other@example.com", PasswordHash: "h"}
	for _, u := range []*models.User{owner, other} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	t.Run("CreateExpense applies defaults", func(t *testing.T) {
		expense := &models.Expense{
			UserID:   owner.ID,
			Amount:   12.50,
			Category: "Food & Dining",
		}

		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("Expected expense ID to be generated")
		}
		if expense.Date.IsZero() {
			t.Error("Expected date to default to now")
		}
		if expense.PaymentMethod != models.DefaultPaymentMethod {
			t.Errorf("PaymentMethod = %q, want %q", expense.PaymentMethod, models.DefaultPaymentMethod)
		}
	})

	t.Run("ListExpenses range bounds are inclusive", func(t *testing.T) {
		base := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
		for i, day := range []int{0, 1, 2, 3} {
			expense := &models.Expense{
				UserID:   owner.ID,
				Amount:   float64(i + 1),
				Category: "Transportation",
				Date:     base.AddDate(0, 0, day),
			}
			if err := store.CreateExpense(ctx, expense); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
		}

		// [Mar 11, Mar 13] picks up exactly the three boundary-inclusive days.
		from := base.AddDate(0, 0, 1)
		to := base.AddDate(0, 0, 3)
		expenses, err := store.ListExpenses(ctx, owner.ID, from, to)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("got %d expenses, want 3", len(expenses))
		}
		for _, e := range expenses {
			if e.Date.Before(from) || e.Date.After(to) {
				t.Errorf("expense date %v outside [%v, %v]", e.Date, from, to)
			}
		}
	})

	t.Run("expenses are owner scoped", func(t *testing.T) {
		expense := &models.Expense{
			UserID:   owner.ID,
			Amount:   5,
			Category: "Other",
			Date:     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if _, err := store.GetExpense(ctx, other.ID, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Get as other user: got %v, want ErrNotFound", err)
		}

		stolen := *expense
		stolen.UserID = other.ID
		stolen.Amount = 999
		if err := store.UpdateExpense(ctx, &stolen); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Update as other user: got %v, want ErrNotFound", err)
		}

		if err := store.DeleteExpense(ctx, other.ID, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Delete as other user: got %v, want ErrNotFound", err)
		}

		// The record is untouched and still readable by its owner.
		got, err := store.GetExpense(ctx, owner.ID, expense.ID)
		if err != nil {
			t.Fatalf("Get as owner failed: %v", err)
		}
		if got.Amount != 5 {
			t.Errorf("Amount = %v, want 5", got.Amount)
		}
	})

	t.Run("update and delete round trip", func(t *testing.T) {
		expense := &models.Expense{
			UserID:   owner.ID,
			Amount:   1,
			Category: "Other",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expense.Amount = 2.25
		expense.Category = "Shopping"
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}

		got, err := store.GetExpense(ctx, owner.ID, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Amount != 2.25 || got.Category != "Shopping" {
			t.Errorf("got %+v after update", got)
		}

		if err := store.DeleteExpense(ctx, owner.ID, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, owner.ID, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("after delete: got %v, want ErrNotFound", err)
		}
	})
}

func TestSeedCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	defaults := models.DefaultCategories()

	if err := store.SeedCategories(ctx, defaults); err != nil {
		t.Fatalf("SeedCategories failed: %v", err)
	}

	// Seeding again must be a no-op.
	if err := store.SeedCategories(ctx, defaults); err != nil {
		t.Fatalf("Second SeedCategories failed: %v", err)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(categories) != len(defaults) {
		t.Errorf("got %d categories, want %d", len(categories), len(defaults))
	}

	names := make(map[string]bool)
	for _, c := range categories {
		if c.ID == "" {
			t.Errorf("category %q has no ID", c.Name)
		}
		names[c.Name] = true
	}
	for _, d := range defaults {
		if !names[d.Name] {
			t.Errorf("missing seeded category %q", d.Name)
		}
	}
}
