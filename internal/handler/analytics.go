package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/analytics"
	"expensetracker/internal/middleware"
	"expensetracker/internal/storage"
)

// AnalyticsHandler serves spend summaries over the caller's own expenses.
type AnalyticsHandler struct {
	store storage.Store
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(store storage.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// Summary computes aggregate statistics for the authenticated user over an
// optional date window. startDate defaults to the first day of the current
// month, endDate to now; both bounds are inclusive. Malformed dates are
// rejected before any query runs.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	userID := middleware.UserID(c)

	start, end := analytics.DefaultWindow(time.Now())

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid startDate")
			return
		}
		start = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "invalid endDate")
			return
		}
		end = parsed
	}

	expenses, err := h.store.ListExpenses(c.Request.Context(), userID, start, end)
	if err != nil {
		storageError(c, "list expenses", err)
		return
	}

	c.JSON(http.StatusOK, analytics.Summarize(expenses))
}

// parseDate accepts YYYY-MM-DD or RFC3339 date strings.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparsable date: %q", s)
}
