package mealplan

import (
	"fmt"
	"regexp"
	"time"

	"larder/internal/shared/id"
)

// DateLayout is the wire format for plan dates.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks that the value is a YYYY-MM-DD string naming a real
// calendar date. time.Parse rejects rolled-over dates like 2024-02-30,
// which naive Date parsing would silently accept.
func ValidateDate(value string) error {
	if !dateRe.MatchString(value) {
		return fmt.Errorf("invalid date format: %s", value)
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("invalid calendar date: %s", value)
	}
	return nil
}

// Day is one dated entry of a meal plan, owning its items.
type Day struct {
	id         uint
	sid        string
	mealPlanID uint
	date       string
	createdAt  time.Time
	updatedAt  time.Time
	items      []*Item
}

// NewDay creates a plan day for an already-validated date.
func NewDay(mealPlanID uint, date string) (*Day, error) {
	if mealPlanID == 0 {
		return nil, fmt.Errorf("meal plan ID is required")
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	sid, err := id.GenerateWithPrefix(id.PrefixMealPlanDay, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Day{
		sid:        sid,
		mealPlanID: mealPlanID,
		date:       date,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDay rebuilds a Day from the persistence layer.
func ReconstructDay(
	id uint,
	sid string,
	mealPlanID uint,
	date string,
	createdAt, updatedAt time.Time,
	items []*Item,
) *Day {
	return &Day{
		id:         id,
		sid:        sid,
		mealPlanID: mealPlanID,
		date:       date,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		items:      items,
	}
}

func (d *Day) ID() uint             { return d.id }
func (d *Day) SID() string          { return d.sid }
func (d *Day) MealPlanID() uint     { return d.mealPlanID }
func (d *Day) Date() string         { return d.date }
func (d *Day) CreatedAt() time.Time { return d.createdAt }
func (d *Day) UpdatedAt() time.Time { return d.updatedAt }
func (d *Day) Items() []*Item       { return d.items }

// SetID sets the day ID (persistence layer use only).
func (d *Day) SetID(id uint) { d.id = id }
