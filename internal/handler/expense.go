package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/middleware"
	"expensetracker/internal/models"
	"expensetracker/internal/storage"
)

// ExpenseHandler serves owner-scoped expense CRUD. All queries use the
// authenticated identity as the owner key; record IDs from the URL are only
// ever combined with it.
type ExpenseHandler struct {
	store storage.Store
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(store storage.Store) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

type expenseRequest struct {
	Amount        *float64 `json:"amount" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Description   string   `json:"description"`
	Date          string   `json:"date"`
	PaymentMethod string   `json:"paymentMethod"`
	IsRecurring   bool     `json:"isRecurring"`
}

// validate checks field constraints and resolves the optional date.
func (r *expenseRequest) validate() (time.Time, error) {
	if *r.Amount < 0 {
		return time.Time{}, errors.New("amount must not be negative")
	}
	if len(r.Description) > models.MaxDescriptionLength {
		return time.Time{}, errors.New("description too long")
	}
	if r.Date == "" {
		return time.Time{}, nil
	}
	return parseDate(r.Date)
}

// Create inserts a new expense for the authenticated user.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "amount and category are required")
		return
	}

	date, err := req.validate()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	expense := &models.Expense{
		UserID:        middleware.UserID(c),
		Amount:        *req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
	}

	if err := h.store.CreateExpense(c.Request.Context(), expense); err != nil {
		storageError(c, "create expense", err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List returns the authenticated user's expenses, optionally bounded by
// startDate/endDate query parameters (inclusive).
func (h *ExpenseHandler) List(c *gin.Context) {
	// Unbounded by default; the zero time and a far future bound cover
	// every record.
	start := time.Time{}
	end := time.Now().AddDate(100, 0, 0)

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

	expenses, err := h.store.ListExpenses(c.Request.Context(), middleware.UserID(c), start, end)
	if err != nil {
		storageError(c, "list expenses", err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, expenses)
}

// Get returns a single expense owned by the authenticated user.
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.store.GetExpense(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		storageError(c, "get expense", err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update replaces the mutable fields of an owner-scoped expense.
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "amount and category are required")
		return
	}

	date, err := req.validate()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}

	expense := &models.Expense{
		ID:            c.Param("id"),
		UserID:        middleware.UserID(c),
		Amount:        *req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMethod: paymentMethod,
		IsRecurring:   req.IsRecurring,
	}

	if err := h.store.UpdateExpense(c.Request.Context(), expense); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		storageError(c, "update expense", err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete removes an owner-scoped expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	err := h.store.DeleteExpense(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, "expense not found")
			return
		}
		storageError(c, "delete expense", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
