package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/mealplan/dto"
	"larder/internal/application/mealplan/usecases"
	"larder/internal/domain/mealplan"
	"larder/internal/domain/recipe"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

const (
	statusMessage   = "status must be one of: draft, active, completed"
	mealTypeMessage = "mealType must be one of: breakfast, lunch, dinner, snack"
)

// MealPlanHandler serves the plan, day and item endpoints.
type MealPlanHandler struct {
	listMealPlansUC  *usecases.ListMealPlansUseCase
	createMealPlanUC *usecases.CreateMealPlanUseCase
	getMealPlanUC    *usecases.GetMealPlanUseCase
	listDaysUC       *usecases.ListDaysUseCase
	createDayUC      *usecases.CreateDayUseCase
	getDayUC         *usecases.GetDayUseCase
	deleteDayUC      *usecases.DeleteDayUseCase
	createItemUC     *usecases.CreateItemUseCase
	getItemUC        *usecases.GetItemUseCase
	updateItemUC     *usecases.UpdateItemUseCase
	deleteItemUC     *usecases.DeleteItemUseCase
	logger           logger.Interface
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(
	listMealPlansUC *usecases.ListMealPlansUseCase,
	createMealPlanUC *usecases.CreateMealPlanUseCase,
	getMealPlanUC *usecases.GetMealPlanUseCase,
	listDaysUC *usecases.ListDaysUseCase,
	createDayUC *usecases.CreateDayUseCase,
	getDayUC *usecases.GetDayUseCase,
	deleteDayUC *usecases.DeleteDayUseCase,
	createItemUC *usecases.CreateItemUseCase,
	getItemUC *usecases.GetItemUseCase,
	updateItemUC *usecases.UpdateItemUseCase,
	deleteItemUC *usecases.DeleteItemUseCase,
) *MealPlanHandler {
	return &MealPlanHandler{
		listMealPlansUC:  listMealPlansUC,
		createMealPlanUC: createMealPlanUC,
		getMealPlanUC:    getMealPlanUC,
		listDaysUC:       listDaysUC,
		createDayUC:      createDayUC,
		getDayUC:         getDayUC,
		deleteDayUC:      deleteDayUC,
		createItemUC:     createItemUC,
		getItemUC:        getItemUC,
		updateItemUC:     updateItemUC,
		deleteItemUC:     deleteItemUC,
		logger:           logger.NewLogger(),
	}
}

// mapPlanPathError maps plan/day/item lookup errors onto their contract
// responses.
func mapPlanPathError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, mealplan.ErrMealPlanNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "MealPlan not found")
	case errors.Is(err, mealplan.ErrDayNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Day not found")
	case errors.Is(err, mealplan.ErrItemNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Item not found")
	default:
		return false
	}
	return true
}

// ListMealPlans returns the household's plans, newest first.
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	result, err := h.listMealPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateMealPlan creates an empty plan.
func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
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
	status, err := body.Enum("status", statusMessage, "draft", "active", "completed")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMealPlanUC.Execute(c.Request.Context(), dto.CreateMealPlanRequest{
		Name:   name,
		Status: mealplan.Status(status),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}

// GetMealPlan returns one plan.
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	result, err := h.getMealPlanUC.Execute(c.Request.Context(), c.Param("mealPlanId"))
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListDays returns the plan's days in date order with their items.
func (h *MealPlanHandler) ListDays(c *gin.Context) {
	result, err := h.listDaysUC.Execute(c.Request.Context(), c.Param("mealPlanId"))
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateDay adds a day to the plan. The plan lookup runs before the body
// is parsed.
func (h *MealPlanHandler) CreateDay(c *gin.Context) {
	if _, err := h.getMealPlanUC.Execute(c.Request.Context(), c.Param("mealPlanId")); err != nil {
		if mapPlanPathError(c, err) {
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

	date, err := body.TrimmedString("date", "date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := mealplan.ValidateDate(date); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "date must be an ISO date (YYYY-MM-DD)")
		return
	}

	result, err := h.createDayUC.Execute(c.Request.Context(), c.Param("mealPlanId"), dto.CreateDayRequest{Date: date})
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}

// DeleteDay removes a day and everything planned on it.
func (h *MealPlanHandler) DeleteDay(c *gin.Context) {
	err := h.deleteDayUC.Execute(c.Request.Context(), c.Param("mealPlanId"), c.Param("dayId"))
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DeletedResponse(c)
}

// CreateItem plans a recipe on a day. Plan and day lookups run before the
// body is parsed.
func (h *MealPlanHandler) CreateItem(c *gin.Context) {
	planSID := c.Param("mealPlanId")
	daySID := c.Param("dayId")

	if _, err := h.getDayUC.Execute(c.Request.Context(), planSID, daySID); err != nil {
		if mapPlanPathError(c, err) {
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

	recipeID, err := body.String("recipeId", "recipeId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	mealType, err := body.Enum("mealType", mealTypeMessage, "breakfast", "lunch", "dinner", "snack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	servings, err := body.PositiveNumber("servings", "servings")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createItemUC.Execute(c.Request.Context(), planSID, daySID, dto.CreateItemRequest{
		RecipeID: recipeID,
		MealType: mealplan.MealType(mealType),
		Servings: servings,
	})
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Recipe not found")
			return
		}
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}

// UpdateItem applies a partial update to a planned meal. The full path is
// resolved before the body is parsed.
func (h *MealPlanHandler) UpdateItem(c *gin.Context) {
	planSID := c.Param("mealPlanId")
	daySID := c.Param("dayId")
	itemSID := c.Param("itemId")

	if _, err := h.getItemUC.Execute(c.Request.Context(), planSID, daySID, itemSID); err != nil {
		if mapPlanPathError(c, err) {
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

	var req dto.UpdateItemRequest

	if body.Has("mealType") {
		value, err := body.Enum("mealType", mealTypeMessage, "breakfast", "lunch", "dinner", "snack")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		mealType := mealplan.MealType(value)
		req.MealType = &mealType
	}
	if body.Has("servings") {
		servings, err := body.PositiveNumber("servings", "servings")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		req.Servings = &servings
	}

	if req.Empty() {
		utils.ErrorResponse(c, http.StatusBadRequest, "No updatable fields provided")
		return
	}

	result, err := h.updateItemUC.Execute(c.Request.Context(), planSID, daySID, itemSID, req)
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteItem removes a planned meal from a day.
func (h *MealPlanHandler) DeleteItem(c *gin.Context) {
	err := h.deleteItemUC.Execute(c.Request.Context(), c.Param("mealPlanId"), c.Param("dayId"), c.Param("itemId"))
	if err != nil {
		if mapPlanPathError(c, err) {
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.DeletedResponse(c)
}
