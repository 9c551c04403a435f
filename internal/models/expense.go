package models

import "time"

// DefaultPaymentMethod is applied when an expense is created without one.
const DefaultPaymentMethod = "cash"

// MaxDescriptionLength bounds the free-text description field.
const MaxDescriptionLength = 255

// Expense represents a single spending record owned by one user.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the record. It is set from the authenticated
	// caller's identity and never from request input.
	UserID string `json:"userId"`

	// Amount is the spent amount. Always >= 0.
	Amount float64 `json:"amount"`

	// Category is a free-form label ("Food & Dining", "Transportation", ...).
	// Not foreign-keyed to the categories table.
	Category string `json:"category"`

	// Description is optional free text, at most MaxDescriptionLength runes.
	Description string `json:"description,omitempty"`

	// Date is when the expense occurred. Defaults to creation time.
	Date time.Time `json:"date"`

	// PaymentMethod defaults to DefaultPaymentMethod.
	PaymentMethod string `json:"paymentMethod"`

	// IsRecurring marks expenses that repeat (rent, subscriptions).
	IsRecurring bool `json:"isRecurring"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
