// Package utils contains HTTP response helpers shared by all handlers.
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"larder/internal/shared/errors"
)

// OKResponse holds the body of a successful delete.
type OKResponse struct {
	OK bool `json:"ok"`
}

// MessageResponse is the error body rendered to clients.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse sends a payload as-is with the given status code.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// DeletedResponse sends the {"ok": true} body of a successful delete.
func DeletedResponse(c *gin.Context) {
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// ErrorResponse sends an error body with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseWithError maps an error to a response. AppErrors carry
// their own status and message; anything else is an internal error.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
