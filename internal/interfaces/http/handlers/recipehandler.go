package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/recipe/dto"
	"larder/internal/application/recipe/usecases"
	"larder/internal/domain/recipe"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

// RecipeHandler serves the household recipe collection.
type RecipeHandler struct {
	listRecipesUC        *usecases.ListRecipesUseCase
	createRecipeUC       *usecases.CreateRecipeUseCase
	getRecipeUC          *usecases.GetRecipeUseCase
	updateRecipeUC       *usecases.UpdateRecipeUseCase
	deleteRecipeUC       *usecases.DeleteRecipeUseCase
	replaceIngredientsUC *usecases.ReplaceIngredientsUseCase
	logger               logger.Interface
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(
	listRecipesUC *usecases.ListRecipesUseCase,
	createRecipeUC *usecases.CreateRecipeUseCase,
	getRecipeUC *usecases.GetRecipeUseCase,
	updateRecipeUC *usecases.UpdateRecipeUseCase,
	deleteRecipeUC *usecases.DeleteRecipeUseCase,
	replaceIngredientsUC *usecases.ReplaceIngredientsUseCase,
) *RecipeHandler {
	return &RecipeHandler{
		listRecipesUC:        listRecipesUC,
		createRecipeUC:       createRecipeUC,
		getRecipeUC:          getRecipeUC,
		updateRecipeUC:       updateRecipeUC,
		deleteRecipeUC:       deleteRecipeUC,
		replaceIngredientsUC: replaceIngredientsUC,
		logger:               logger.NewLogger(),
	}
}

// ListRecipes returns the household's recipes ordered by name.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	result, err := h.listRecipesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// parseIngredientLines validates the elements of an ingredients array and
// converts them into line requests. The per-item messages use the
// "ingredients[]." prefix.
func parseIngredientLines(elems []*jsonbody.Body) ([]dto.IngredientLineRequest, error) {
	lines := make([]dto.IngredientLineRequest, 0, len(elems))
	for _, elem := range elems {
		ingredientID, err := elem.String("ingredientId", "ingredients[].ingredientId")
		if err != nil {
			return nil, err
		}
		quantity, err := elem.PositiveNumber("quantity", "ingredients[].quantity")
		if err != nil {
			return nil, err
		}
		var unit *string
		if elem.Has("unit") {
			unit, err = elem.NullableText("unit", "ingredients[].unit")
			if err != nil {
				return nil, err
			}
		}
		lines = append(lines, dto.IngredientLineRequest{
			IngredientID: ingredientID,
			Quantity:     quantity,
			Unit:         unit,
		})
	}
	return lines, nil
}

// mapLineError maps ingredient-list errors onto their contract responses.
func mapLineError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, recipe.ErrDuplicateIngredient):
		utils.ErrorResponse(c, http.StatusBadRequest, "Duplicate ingredientId in ingredients list")
	case errors.Is(err, recipe.ErrUnknownIngredient):
		utils.ErrorResponse(c, http.StatusBadRequest, "One or more ingredientId are invalid")
	default:
		return false
	}
	return true
}

// CreateRecipe creates a recipe together with its ingredient list.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := body.String("name", "name"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	servings, err := body.PositiveNumber("servings", "servings")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if _, err := body.String("instructions", "instructions"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	description, err := body.NullableText("description", "description")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	notes, err := body.NullableText("notes", "notes")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	elems, err := body.Objects("ingredients", "ingredients")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	name, err := body.TrimmedString("name", "name")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	instructions, err := body.TrimmedString("instructions", "instructions")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	lines, err := parseIngredientLines(elems)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createRecipeUC.Execute(c.Request.Context(), dto.CreateRecipeRequest{
		Name:         name,
		Description:  description,
		Servings:     servings,
		Instructions: instructions,
		Notes:        notes,
		Ingredients:  lines,
	})
	if err != nil {
		if mapLineError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}

// GetRecipe returns one recipe with its ingredient list.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	result, err := h.getRecipeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateRecipe applies a partial update to the recipe's scalar fields.
// Validation runs before the existence check.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateRecipeRequest

	if body.Has("name") {
		name, err := body.TrimmedString("name", "name")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Name = &name
	}
	if body.Has("description") {
		description, err := body.NullableText("description", "description")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Description = description
		req.DescriptionSet = true
	}
	if body.Has("servings") {
		servings, err := body.PositiveNumber("servings", "servings")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Servings = &servings
	}
	if body.Has("instructions") {
		instructions, err := body.TrimmedString("instructions", "instructions")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Instructions = &instructions
	}
	if body.Has("notes") {
		notes, err := body.NullableText("notes", "notes")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Notes = notes
		req.NotesSet = true
	}

	if req.Empty() {
		utils.ErrorResponse(c, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	result, err := h.updateRecipeUC.Execute(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteRecipe removes a recipe, its ingredient rows and any plan items
// referencing it.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.deleteRecipeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DeletedResponse(c)
}

// ReplaceIngredients atomically replaces the recipe's ingredient list.
// The recipe lookup runs before the body is parsed.
func (h *RecipeHandler) ReplaceIngredients(c *gin.Context) {
	if _, err := h.getRecipeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	elems, err := body.Objects("ingredients", "ingredients")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	lines, err := parseIngredientLines(elems)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.replaceIngredientsUC.Execute(c.Request.Context(), c.Param("id"), lines)
	if err != nil {
		if mapLineError(c, err) {
			return
		}
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
