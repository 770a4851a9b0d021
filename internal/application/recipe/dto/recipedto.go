package dto

import (
	commonDTO "larder/internal/application/common/dto"
	"larder/internal/domain/recipe"
	"larder/internal/shared/mapper"
)

// IngredientLineRequest is one entry of a recipe's ingredient list in
// create/replace payloads. A nil or blank unit falls back to the catalog
// ingredient's canonical unit.
type IngredientLineRequest struct {
	IngredientID string
	Quantity     float64
	Unit         *string
}

// CreateRecipeRequest carries a validated, trimmed create payload.
type CreateRecipeRequest struct {
	Name         string
	Description  *string
	Servings     float64
	Instructions string
	Notes        *string
	Ingredients  []IngredientLineRequest
}

// UpdateRecipeRequest carries a partial update. The Set flags distinguish
// "field absent" from "field explicitly set to null".
type UpdateRecipeRequest struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Servings       *float64
	Instructions   *string
	Notes          *string
	NotesSet       bool
}

// Empty reports whether the update carries no recognized fields.
func (r UpdateRecipeRequest) Empty() bool {
	return r.Name == nil && !r.DescriptionSet && r.Servings == nil &&
		r.Instructions == nil && !r.NotesSet
}

// IngredientRef is the embedded catalog ingredient of a line item.
type IngredientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// RecipeIngredientItemResponse is one line item of a recipe response.
type RecipeIngredientItemResponse struct {
	ID           string        `json:"id"`
	IngredientID string        `json:"ingredientId"`
	Quantity     float64       `json:"quantity"`
	Unit         string        `json:"unit"`
	Ingredient   IngredientRef `json:"ingredient"`
}

// RecipeResponse represents a recipe in API responses.
type RecipeResponse struct {
	ID           string                         `json:"id"`
	HouseholdID  string                         `json:"householdId"`
	Name         string                         `json:"name"`
	Description  *string                        `json:"description"`
	Servings     float64                        `json:"servings"`
	Instructions string                         `json:"instructions"`
	Notes        *string                        `json:"notes"`
	CreatedAt    string                         `json:"createdAt"`
	UpdatedAt    string                         `json:"updatedAt"`
	Ingredients  []RecipeIngredientItemResponse `json:"ingredients"`
}

// RecipeIngredientsResponse is the ingredient-list replacement response.
// It mirrors RecipeResponse without the householdId field.
type RecipeIngredientsResponse struct {
	ID           string                         `json:"id"`
	Name         string                         `json:"name"`
	Description  *string                        `json:"description"`
	Servings     float64                        `json:"servings"`
	Instructions string                         `json:"instructions"`
	Notes        *string                        `json:"notes"`
	CreatedAt    string                         `json:"createdAt"`
	UpdatedAt    string                         `json:"updatedAt"`
	Ingredients  []RecipeIngredientItemResponse `json:"ingredients"`
}

// ListRecipesResponse wraps the sorted recipe collection.
type ListRecipesResponse struct {
	Recipes []RecipeResponse `json:"recipes"`
}

func fromLine(line *recipe.RecipeIngredient) RecipeIngredientItemResponse {
	return RecipeIngredientItemResponse{
		ID:           line.SID(),
		IngredientID: line.IngredientSID(),
		Quantity:     line.Quantity(),
		Unit:         line.Unit(),
		Ingredient: IngredientRef{
			ID:   line.IngredientSID(),
			Name: line.IngredientName(),
			Unit: line.IngredientUnit(),
		},
	}
}

func fromLines(lines []*recipe.RecipeIngredient) []RecipeIngredientItemResponse {
	result := mapper.MapSlice(lines, fromLine)
	if result == nil {
		result = []RecipeIngredientItemResponse{}
	}
	return result
}

// FromRecipe builds the wire representation of a recipe. The household SID
// comes from the resolved household, not the recipe row.
func FromRecipe(r *recipe.Recipe, householdSID string) RecipeResponse {
	return RecipeResponse{
		ID:           r.SID(),
		HouseholdID:  householdSID,
		Name:         r.Name(),
		Description:  r.Description(),
		Servings:     r.Servings(),
		Instructions: r.Instructions(),
		Notes:        r.Notes(),
		CreatedAt:    commonDTO.FormatTime(r.CreatedAt()),
		UpdatedAt:    commonDTO.FormatTime(r.UpdatedAt()),
		Ingredients:  fromLines(r.Ingredients()),
	}
}

// FromRecipes builds the wire representation of a recipe list.
func FromRecipes(recipes []*recipe.Recipe, householdSID string) []RecipeResponse {
	result := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, FromRecipe(r, householdSID))
	}
	return result
}

// FromRecipeIngredients builds the replacement response shape.
func FromRecipeIngredients(r *recipe.Recipe) RecipeIngredientsResponse {
	return RecipeIngredientsResponse{
		ID:           r.SID(),
		Name:         r.Name(),
		Description:  r.Description(),
		Servings:     r.Servings(),
		Instructions: r.Instructions(),
		Notes:        r.Notes(),
		CreatedAt:    commonDTO.FormatTime(r.CreatedAt()),
		UpdatedAt:    commonDTO.FormatTime(r.UpdatedAt()),
		Ingredients:  fromLines(r.Ingredients()),
	}
}
