package dto

import (
	commonDTO "larder/internal/application/common/dto"
	"larder/internal/domain/mealplan"
)

// CreateMealPlanRequest carries a validated create payload.
type CreateMealPlanRequest struct {
	Name   string
	Status mealplan.Status
}

// CreateDayRequest carries a validated day payload. Date is a calendar
// date in YYYY-MM-DD form.
type CreateDayRequest struct {
	Date string
}

// CreateItemRequest carries a validated item payload. Servings is already
// defaulted when absent.
type CreateItemRequest struct {
	RecipeID string
	MealType mealplan.MealType
	Servings float64
}

// UpdateItemRequest carries a partial item update. Nil fields are left
// unchanged.
type UpdateItemRequest struct {
	MealType *mealplan.MealType
	Servings *float64
}

// Empty reports whether no updatable field is present.
func (r UpdateItemRequest) Empty() bool {
	return r.MealType == nil && r.Servings == nil
}

// RecipeRef is the embedded recipe summary of a plan item.
type RecipeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemResponse represents a planned meal in API responses.
type ItemResponse struct {
	ID        string    `json:"id"`
	DayID     string    `json:"dayId"`
	RecipeID  string    `json:"recipeId"`
	MealType  string    `json:"mealType"`
	Servings  float64   `json:"servings"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
	Recipe    RecipeRef `json:"recipe"`
}

// DayResponse represents a plan day with its items.
type DayResponse struct {
	ID         string         `json:"id"`
	MealPlanID string         `json:"mealPlanId"`
	Date       string         `json:"date"`
	CreatedAt  string         `json:"createdAt"`
	UpdatedAt  string         `json:"updatedAt"`
	Items      []ItemResponse `json:"items"`
}

// MealPlanResponse represents a plan in list and create responses. Days
// are fetched through their own endpoint, so Items is always empty here.
type MealPlanResponse struct {
	ID          string         `json:"id"`
	HouseholdID string         `json:"householdId"`
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
	Items       []ItemResponse `json:"items"`
}

// MealPlanDetailResponse represents a single plan. The detail view omits
// the items collection entirely.
type MealPlanDetailResponse struct {
	ID          string `json:"id"`
	HouseholdID string `json:"householdId"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ListMealPlansResponse wraps a household's plans.
type ListMealPlansResponse struct {
	HouseholdID string             `json:"householdId"`
	MealPlans   []MealPlanResponse `json:"mealPlans"`
}

// ListDaysResponse wraps a plan's days.
type ListDaysResponse struct {
	MealPlanID string        `json:"mealPlanId"`
	Days       []DayResponse `json:"days"`
}

// FromMealPlan builds the list/create representation of a plan.
func FromMealPlan(m *mealplan.MealPlan, householdSID string) MealPlanResponse {
	return MealPlanResponse{
		ID:          m.SID(),
		HouseholdID: householdSID,
		Name:        m.Name(),
		Status:      m.Status().String(),
		CreatedAt:   commonDTO.FormatTime(m.CreatedAt()),
		UpdatedAt:   commonDTO.FormatTime(m.UpdatedAt()),
		Items:       []ItemResponse{},
	}
}

// FromMealPlans builds the wire representation of a plan list.
func FromMealPlans(plans []*mealplan.MealPlan, householdSID string) []MealPlanResponse {
	result := make([]MealPlanResponse, 0, len(plans))
	for _, m := range plans {
		result = append(result, FromMealPlan(m, householdSID))
	}
	return result
}

// FromMealPlanDetail builds the detail representation of a plan.
func FromMealPlanDetail(m *mealplan.MealPlan, householdSID string) MealPlanDetailResponse {
	return MealPlanDetailResponse{
		ID:          m.SID(),
		HouseholdID: householdSID,
		Name:        m.Name(),
		Status:      m.Status().String(),
		CreatedAt:   commonDTO.FormatTime(m.CreatedAt()),
		UpdatedAt:   commonDTO.FormatTime(m.UpdatedAt()),
	}
}

// FromItem builds the wire representation of a plan item. The day SID
// comes from the resolved parent day.
func FromItem(i *mealplan.Item, daySID string) ItemResponse {
	return ItemResponse{
		ID:        i.SID(),
		DayID:     daySID,
		RecipeID:  i.RecipeSID(),
		MealType:  i.MealType().String(),
		Servings:  i.Servings(),
		CreatedAt: commonDTO.FormatTime(i.CreatedAt()),
		UpdatedAt: commonDTO.FormatTime(i.UpdatedAt()),
		Recipe: RecipeRef{
			ID:   i.RecipeSID(),
			Name: i.RecipeName(),
		},
	}
}

// FromDay builds the wire representation of a day and its items. The plan
// SID comes from the resolved parent plan.
func FromDay(d *mealplan.Day, planSID string) DayResponse {
	items := make([]ItemResponse, 0, len(d.Items()))
	for _, item := range d.Items() {
		items = append(items, FromItem(item, d.SID()))
	}
	return DayResponse{
		ID:         d.SID(),
		MealPlanID: planSID,
		Date:       d.Date(),
		CreatedAt:  commonDTO.FormatTime(d.CreatedAt()),
		UpdatedAt:  commonDTO.FormatTime(d.UpdatedAt()),
		Items:      items,
	}
}

// FromDays builds the wire representation of a day list.
func FromDays(days []*mealplan.Day, planSID string) []DayResponse {
	result := make([]DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, FromDay(d, planSID))
	}
	return result
}
