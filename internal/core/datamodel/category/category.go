package category

import "time"

// Category is a household-scoped expense category. Expenses and budgets keep
// a weak reference by id; deleting a category that is still referenced is
// rejected at the repository.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Icon        string    `json:"icon" gorm:"column:icon"`
	Color       string    `json:"color" gorm:"column:color"`
	HouseholdID string    `json:"household_id" gorm:"column:household_id;index;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Default holds the seed attributes for a starter category.
type Default struct {
	Name  string
	Icon  string
	Color string
}

// Defaults is the starter set created for every new household.
var Defaults = []Default{
	{Name: "Mercado", Icon: "🛒", Color: "#10b981"},
	{Name: "Restaurantes", Icon: "🍽️", Color: "#f59e0b"},
	{Name: "Hogar", Icon: "🏠", Color: "#3b82f6"},
	{Name: "Transporte", Icon: "🚗", Color: "#8b5cf6"},
	{Name: "Salud", Icon: "💊", Color: "#ef4444"},
	{Name: "Entretenimiento", Icon: "🎬", Color: "#ec4899"},
	{Name: "Ropa", Icon: "👕", Color: "#06b6d4"},
	{Name: "Otros", Icon: "📦", Color: "#6b7280"},
}
