// Package analytics computes spend summaries over owner-scoped expense slices.
package analytics

import (
	"math"
	"time"

	"expensetracker/internal/models"
)

// Summary holds the aggregate statistics for a set of expenses.
// All monetary values are rounded to 2 decimal places.
type Summary struct {
	TotalSpent        float64            `json:"totalSpent"`
	ExpenseCount      int                `json:"expenseCount"`
	AverageExpense    float64            `json:"averageExpense"`
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
}

// Summarize reduces a slice of expenses into a Summary.
//
// Sums are accumulated unrounded and rounded only at output, so per-item
// rounding error never compounds. An empty slice yields all-zero statistics
// and an empty (non-nil) breakdown; the average is defined as 0 when there
// are no expenses.
func Summarize(expenses []models.Expense) Summary {
	var total float64
	byCategory := make(map[string]float64)

	for _, expense := range expenses {
		total += expense.Amount
		byCategory[expense.Category] += expense.Amount
	}

	breakdown := make(map[string]float64, len(byCategory))
	for category, sum := range byCategory {
		breakdown[category] = round2(sum)
	}

	count := len(expenses)
	average := 0.0
	if count > 0 {
		average = round2(total / float64(count))
	}

	return Summary{
		TotalSpent:        round2(total),
		ExpenseCount:      count,
		AverageExpense:    average,
		CategoryBreakdown: breakdown,
	}
}

// DefaultWindow returns the default summary window: the first instant of the
// current calendar month (server local time) through now, both inclusive.
func DefaultWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, now
}

// round2 rounds to 2 decimal places, half away from zero. The single rounding
// rule for every monetary value the service reports.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
