package mealplan

import "errors"

var (
	// ErrMealPlanNotFound indicates the plan is absent or belongs to a
	// different household
	ErrMealPlanNotFound = errors.New("meal plan not found")

	// ErrDayNotFound indicates the day is absent or belongs to a
	// different plan
	ErrDayNotFound = errors.New("meal plan day not found")

	// ErrItemNotFound indicates the item is absent or belongs to a
	// different day
	ErrItemNotFound = errors.New("meal plan item not found")
)
