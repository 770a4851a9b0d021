package dto

import (
	commonDTO "larder/internal/application/common/dto"
	"larder/internal/domain/catalog"
	"larder/internal/shared/mapper"
)

// CreateIngredientRequest carries a validated, trimmed create payload.
type CreateIngredientRequest struct {
	Name string
	Unit string
}

// IngredientResponse represents a catalog ingredient in API responses.
type IngredientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListIngredientsResponse wraps the sorted ingredient collection.
type ListIngredientsResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
}

// FromIngredient builds the wire representation of an ingredient.
func FromIngredient(i *catalog.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        i.SID(),
		Name:      i.Name(),
		Unit:      i.Unit(),
		CreatedAt: commonDTO.FormatTime(i.CreatedAt()),
		UpdatedAt: commonDTO.FormatTime(i.UpdatedAt()),
	}
}

// FromIngredients builds the wire representation of an ingredient list.
func FromIngredients(ingredients []*catalog.Ingredient) []IngredientResponse {
	result := mapper.MapSlice(ingredients, FromIngredient)
	if result == nil {
		result = []IngredientResponse{}
	}
	return result
}
