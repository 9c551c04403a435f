package analytics

import (
	"math"
	"testing"
	"time"

	"expensetracker/internal/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []models.Expense
		validateFunc func(t *testing.T, s Summary)
	}{
		{
			name:     "no expenses yields all-zero statistics",
			expenses: nil,
			validateFunc: func(t *testing.T, s Summary) {
				if s.TotalSpent != 0 || s.ExpenseCount != 0 || s.AverageExpense != 0 {
					t.Errorf("expected zeros, got %+v", s)
				}
				if s.CategoryBreakdown == nil {
					t.Error("expected empty map, got nil")
				}
				if len(s.CategoryBreakdown) != 0 {
					t.Errorf("expected empty breakdown, got %v", s.CategoryBreakdown)
				}
			},
		},
		{
			name: "single category accumulates before rounding",
			expenses: []models.Expense{
				{Amount: 10.00, Category: "Food & Dining"},
				{Amount: 5.005, Category: "Food & Dining"},
			},
			validateFunc: func(t *testing.T, s Summary) {
				// 10 + 5.005 accumulates to the double nearest 15.005
				// (15.004999...), which rounds to 15.00.
				if s.TotalSpent != 15.00 {
					t.Errorf("TotalSpent = %v, want 15.00", s.TotalSpent)
				}
				if s.ExpenseCount != 2 {
					t.Errorf("ExpenseCount = %d, want 2", s.ExpenseCount)
				}
				if s.AverageExpense != 7.50 {
					t.Errorf("AverageExpense = %v, want 7.50", s.AverageExpense)
				}
				if got := s.CategoryBreakdown["Food & Dining"]; got != s.TotalSpent {
					t.Errorf("breakdown = %v, want %v", got, s.TotalSpent)
				}
			},
		},
		{
			name: "breakdown sums match total within a cent per category",
			expenses: []models.Expense{
				{Amount: 3.33, Category: "Food & Dining"},
				{Amount: 3.33, Category: "Transportation"},
				{Amount: 3.34, Category: "Entertainment"},
				{Amount: 0.005, Category: "Transportation"},
			},
			validateFunc: func(t *testing.T, s Summary) {
				var sum float64
				for _, v := range s.CategoryBreakdown {
					sum += v
				}
				tolerance := 0.01 * float64(len(s.CategoryBreakdown))
				if math.Abs(sum-s.TotalSpent) > tolerance {
					t.Errorf("breakdown sum %v differs from total %v beyond %v", sum, s.TotalSpent, tolerance)
				}
			},
		},
		{
			name: "average rounds half away from zero",
			expenses: []models.Expense{
				{Amount: 0.01, Category: "Other"},
				{Amount: 0.02, Category: "Other"},
			},
			validateFunc: func(t *testing.T, s Summary) {
				// 0.03 / 2 = 0.015 -> 0.02
				if s.AverageExpense != 0.02 {
					t.Errorf("AverageExpense = %v, want 0.02", s.AverageExpense)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Summarize(tt.expenses))
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1.00},
		{1.005, 1.00}, // 1.005 is stored as 1.00499...; the double rounds down
		{1.006, 1.01},
		{0.005, 0.01}, // exact half rounds away from zero
		{2.675, 2.67}, // representation effect again
		{15.0049999, 15.00},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.Local)

	start, end := DefaultWindow(now)

	wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(now) {
		t.Errorf("end = %v, want %v", end, now)
	}
}
