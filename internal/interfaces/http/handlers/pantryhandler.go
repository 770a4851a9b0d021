package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/pantry/dto"
	"larder/internal/application/pantry/usecases"
	"larder/internal/domain/catalog"
	"larder/internal/domain/pantry"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

const availabilityMessage = "availability must be HAVE, LOW, or OUT"

// PantryHandler serves the household pantry.
type PantryHandler struct {
	listPantryUC       *usecases.ListPantryUseCase
	createPantryItemUC *usecases.CreatePantryItemUseCase
	updatePantryItemUC *usecases.UpdatePantryItemUseCase
	logger             logger.Interface
}

// NewPantryHandler creates a new PantryHandler.
func NewPantryHandler(
	listPantryUC *usecases.ListPantryUseCase,
	createPantryItemUC *usecases.CreatePantryItemUseCase,
	updatePantryItemUC *usecases.UpdatePantryItemUseCase,
) *PantryHandler {
	return &PantryHandler{
		listPantryUC:       listPantryUC,
		createPantryItemUC: createPantryItemUC,
		updatePantryItemUC: updatePantryItemUC,
		logger:             logger.NewLogger(),
	}
}

// ListPantry returns the pantry ordered by ingredient name.
func (h *PantryHandler) ListPantry(c *gin.Context) {
	result, err := h.listPantryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreatePantryItem adds a catalog ingredient to the pantry. Availability
// defaults to HAVE when absent.
func (h *PantryHandler) CreatePantryItem(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ingredientID, err := body.String("ingredientId", "ingredientId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	availability := pantry.AvailabilityHave
	if body.Has("availability") {
		value, err := body.Enum("availability", availabilityMessage, "HAVE", "LOW", "OUT")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		availability = pantry.Availability(value)
	}

	result, err := h.createPantryItemUC.Execute(c.Request.Context(), dto.CreatePantryItemRequest{
		IngredientID: ingredientID,
		Availability: availability,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrIngredientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "ingredientId not found")
			return
		}
		if errors.Is(err, pantry.ErrAlreadyInPantry) {
			utils.ErrorResponse(c, http.StatusConflict, "Ingredient already in pantry")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}

// UpdatePantryItem changes the availability of a pantry item. The value is
// validated before the item is looked up.
func (h *PantryHandler) UpdatePantryItem(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	value, err := body.Enum("availability", availabilityMessage, "HAVE", "LOW", "OUT")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePantryItemUC.Execute(c.Request.Context(), c.Param("id"), pantry.Availability(value))
	if err != nil {
		if errors.Is(err, pantry.ErrPantryItemNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Pantry item not found")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
