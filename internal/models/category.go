package models

import "time"

// Category is a display-oriented expense category: a unique name plus an icon
// and color used by clients when rendering forms and charts.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultCategories is the fixed set seeded at startup when the categories
// table is empty.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food & Dining", Icon: "🍔", Color: "#FF6B6B"},
		{Name: "Transportation", Icon: "🚗", Color: "#4ECDC4"},
		{Name: "Entertainment", Icon: "🎬", Color: "#95E1D3"},
		{Name: "Shopping", Icon: "🛍️", Color: "#FFE66D"},
		{Name: "Bills & Utilities", Icon: "💰", Color: "#FF8B94"},
		{Name: "Healthcare", Icon: "🏥", Color: "#C7CEEA"},
		{Name: "Education", Icon: "📚", Color: "#B4A7D6"},
		{Name: "Other", Icon: "📌", Color: "#A8DADC"},
	}
}
