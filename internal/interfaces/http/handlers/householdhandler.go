package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/household/usecases"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

// HouseholdHandler serves the single-household endpoints.
type HouseholdHandler struct {
	getHouseholdUC    *usecases.GetHouseholdUseCase
	renameHouseholdUC *usecases.RenameHouseholdUseCase
	logger            logger.Interface
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(
	getHouseholdUC *usecases.GetHouseholdUseCase,
	renameHouseholdUC *usecases.RenameHouseholdUseCase,
) *HouseholdHandler {
	return &HouseholdHandler{
		getHouseholdUC:    getHouseholdUC,
		renameHouseholdUC: renameHouseholdUC,
		logger:            logger.NewLogger(),
	}
}

// GetHousehold returns the default household, creating it on first access.
func (h *HouseholdHandler) GetHousehold(c *gin.Context) {
	result, err := h.getHouseholdUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// RenameHousehold replaces the household name.
func (h *HouseholdHandler) RenameHousehold(c *gin.Context) {
	body, err := jsonbody.Parse(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	name, err := body.TrimmedString("name", "name")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renameHouseholdUC.Execute(c.Request.Context(), name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}
