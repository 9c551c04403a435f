package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"expensetracker/internal/models"
	"expensetracker/internal/storage"
)

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	now := time.Now().UTC()
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date.IsZero() {
		expense.Date = now
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = models.DefaultPaymentMethod
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = now

	query := `
		INSERT INTO expenses (id, user_id, amount, category, description, date, payment_method, is_recurring, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Description,
		formatTime(expense.Date),
		expense.PaymentMethod,
		expense.IsRecurring,
		formatTime(expense.CreatedAt),
		formatTime(expense.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpense retrieves a single expense scoped to its owner.
func (s *SQLiteStore) GetExpense(ctx context.Context, userID, id string) (*models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, description, date, payment_method, is_recurring, created_at, updated_at
		FROM expenses
		WHERE id = ? AND user_id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id, userID)
	expense, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses returns the owner's expenses with date in [from, to], both
// bounds inclusive, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, amount, category, description, date, payment_method, is_recurring, created_at, updated_at
		FROM expenses
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense updates an existing owner-scoped expense.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE expenses
		SET amount = ?, category = ?, description = ?, date = ?, payment_method = ?, is_recurring = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		expense.Amount,
		expense.Category,
		expense.Description,
		formatTime(expense.Date),
		expense.PaymentMethod,
		expense.IsRecurring,
		formatTime(expense.UpdatedAt),
		expense.ID,
		expense.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteExpense removes an owner-scoped expense.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, userID, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// scanExpense reads one expense row via the given scan function, so it works
// for both sql.Row and sql.Rows.
func scanExpense(scan func(dest ...any) error) (*models.Expense, error) {
	expense := &models.Expense{}
	var date, createdAt, updatedAt string

	err := scan(
		&expense.ID,
		&expense.UserID,
		&expense.Amount,
		&expense.Category,
		&expense.Description,
		&date,
		&expense.PaymentMethod,
		&expense.IsRecurring,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expense.Date, err = parseTime(date); err != nil {
		return nil, fmt.Errorf("failed to parse expense date: %w", err)
	}
	if expense.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse expense created_at: %w", err)
	}
	if expense.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse expense updated_at: %w", err)
	}

	return expense, nil
}
