package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/application/person/dto"
	"larder/internal/application/person/usecases"
	"larder/internal/domain/person"
	"larder/internal/shared/jsonbody"
	"larder/internal/shared/logger"
	"larder/internal/shared/utils"
)

// PersonHandler serves the household member endpoints.
type PersonHandler struct {
	listPeopleUC   *usecases.ListPeopleUseCase
	createPersonUC *usecases.CreatePersonUseCase
	logger         logger.Interface
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(
	listPeopleUC *usecases.ListPeopleUseCase,
	createPersonUC *usecases.CreatePersonUseCase,
) *PersonHandler {
	return &PersonHandler{
		listPeopleUC:   listPeopleUC,
		createPersonUC: createPersonUC,
		logger:         logger.NewLogger(),
	}
}

// ListPeople returns the household's members ordered by name.
func (h *PersonHandler) ListPeople(c *gin.Context) {
	result, err := h.listPeopleUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreatePerson adds a member. The portion factor defaults to 1.
func (h *PersonHandler) CreatePerson(c *gin.Context) {
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

	portionFactor := person.DefaultPortionFactor
	if body.Has("portionFactor") {
		value, err := body.Number("portionFactor", "portionFactor")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		if value <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "portionFactor must be > 0")
			return
		}
		portionFactor = value
	}

	result, err := h.createPersonUC.Execute(c.Request.Context(), dto.CreatePersonRequest{
		Name:          name,
		PortionFactor: portionFactor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, result)
}
