package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"expensetracker/internal/models"
)

// ListCategories returns all categories ordered by name.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, icon, color, created_at FROM categories ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		var createdAt string
		if err := rows.Scan(&category.ID, &category.Name, &category.Icon, &category.Color, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if category.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse category created_at: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// SeedCategories inserts the given categories, skipping names that already
// exist. ON CONFLICT DO NOTHING makes the seed idempotent and safe against
// concurrent startup.
func (s *SQLiteStore) SeedCategories(ctx context.Context, categories []models.Category) error {
	query := `
		INSERT INTO categories (id, name, icon, color, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`

	now := time.Now().UTC()
	for _, category := range categories {
		id := category.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := s.db.ExecContext(ctx, query,
			id, category.Name, category.Icon, category.Color, formatTime(now),
		); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	return nil
}
