package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/shared/utils"
)

// AssistantStubResult is the capability flag returned while the meal
// planning assistant is switched off.
type AssistantStubResult struct {
	Enabled bool        `json:"enabled"`
	Reason  string      `json:"reason"`
	Value   interface{} `json:"value"`
}

// AssistantHandler exposes the assistant capability flag.
type AssistantHandler struct{}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{}
}

// GetStatus reports that the assistant is disabled by configuration.
func (h *AssistantHandler) GetStatus(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, AssistantStubResult{
		Enabled: false,
		Reason:  "disabled_by_config",
		Value:   nil,
	})
}
