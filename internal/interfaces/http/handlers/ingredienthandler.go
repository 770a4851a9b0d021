package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/ingredient/dto"
	"larder/internal/application/ingredient/usecases"
	"larder/internal/domain/catalog"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

// IngredientHandler serves the shared ingredient catalog.
type IngredientHandler struct {
	listIngredientsUC  *usecases.ListIngredientsUseCase
	createIngredientUC *usecases.CreateIngredientUseCase
	logger             logger.Interface
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(
	listIngredientsUC *usecases.ListIngredientsUseCase,
	createIngredientUC *usecases.CreateIngredientUseCase,
) *IngredientHandler {
	return &IngredientHandler{
		listIngredientsUC:  listIngredientsUC,
		createIngredientUC: createIngredientUC,
		logger:             logger.NewLogger(),
	}
}

// ListIngredients returns the catalog ordered by name.
func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	result, err := h.listIngredientsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateIngredient adds an ingredient to the catalog. Names are unique
// case-insensitively.
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Type errors for both fields are reported before the empty checks.
	if _, err := body.String("name", "name"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if _, err := body.String("unit", "unit"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	name, err := body.TrimmedString("name", "name")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	unit, err := body.TrimmedString("unit", "unit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createIngredientUC.Execute(c.Request.Context(), dto.CreateIngredientRequest{
		Name: name,
		Unit: unit,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNameExists) {
			utils.ErrorResponse(c, http.StatusConflict, "Ingredient name already exists")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}
