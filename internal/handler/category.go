package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/models"
	"expensetracker/internal/storage"
)

// CategoryHandler serves the seeded category list used by clients to
// populate forms and charts.
type CategoryHandler struct {
	store storage.Store
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(store storage.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// List returns all categories ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		storageError(c, "list categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}
