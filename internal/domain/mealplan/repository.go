package mealplan

import "context"

// Repository defines the interface for meal plan persistence operations.
// Plans are scoped by household; days by plan; items by day. Each level is
// looked up independently so a parent miss is reported before a child miss.
type Repository interface {
	// ListByHousehold retrieves a household's plans sorted by creation
	// time descending
	ListByHousehold(ctx context.Context, householdID uint) ([]*MealPlan, error)

	// Create creates a new meal plan
	Create(ctx context.Context, plan *MealPlan) error

	// GetBySID retrieves one plan scoped by household, nil on miss
	GetBySID(ctx context.Context, sid string, householdID uint) (*MealPlan, error)

	// ListDays retrieves a plan's days sorted by date ascending, each
	// with its items sorted by creation time ascending
	ListDays(ctx context.Context, mealPlanID uint) ([]*Day, error)

	// CreateDay creates a day under a plan
	CreateDay(ctx context.Context, day *Day) error

	// GetDayBySID retrieves one day scoped by plan, nil on miss
	GetDayBySID(ctx context.Context, sid string, mealPlanID uint) (*Day, error)

	// DeleteDay removes a day and cascades to its items
	DeleteDay(ctx context.Context, dayID uint) error

	// CreateItem creates an item under a day
	CreateItem(ctx context.Context, item *Item) error

	// GetItemBySID retrieves one item scoped by day, nil on miss
	GetItemBySID(ctx context.Context, sid string, dayID uint) (*Item, error)

	// UpdateItem persists changed item fields
	UpdateItem(ctx context.Context, item *Item) error

	// DeleteItem removes an item
	DeleteItem(ctx context.Context, itemID uint) error
}
