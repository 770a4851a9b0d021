package dto

import (
	commonDTO "larder/internal/application/common/dto"
	"larder/internal/domain/pantry"
)

// CreatePantryItemRequest carries a validated create payload. Availability
// is already defaulted to HAVE when absent.
type CreatePantryItemRequest struct {
	IngredientID string
	Availability pantry.Availability
}

// IngredientRef is the embedded catalog ingredient of a pantry item.
type IngredientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// PantryItemResponse represents a pantry item in API responses.
type PantryItemResponse struct {
	ID           string        `json:"id"`
	HouseholdID  string        `json:"householdId"`
	IngredientID string        `json:"ingredientId"`
	Availability string        `json:"availability"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
	Ingredient   IngredientRef `json:"ingredient"`
}

// ListPantryResponse wraps a household's pantry.
type ListPantryResponse struct {
	HouseholdID string               `json:"householdId"`
	Items       []PantryItemResponse `json:"items"`
}

// FromPantryItem builds the wire representation of a pantry item. The
// household SID comes from the resolved household.
func FromPantryItem(p *pantry.PantryItem, householdSID string) PantryItemResponse {
	return PantryItemResponse{
		ID:           p.SID(),
		HouseholdID:  householdSID,
		IngredientID: p.IngredientSID(),
		Availability: p.Availability().String(),
		CreatedAt:    commonDTO.FormatTime(p.CreatedAt()),
		UpdatedAt:    commonDTO.FormatTime(p.UpdatedAt()),
		Ingredient: IngredientRef{
			ID:   p.IngredientSID(),
			Name: p.IngredientName(),
			Unit: p.IngredientUnit(),
		},
	}
}

// FromPantryItems builds the wire representation of a pantry list.
func FromPantryItems(items []*pantry.PantryItem, householdSID string) []PantryItemResponse {
	result := make([]PantryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FromPantryItem(item, householdSID))
	}
	return result
}
