// Package response contains the gin JSON helpers used by every handler.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit-platform/service-sharing/internal/apperror"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes a 200 with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error maps an application error to its HTTP status. Unclassified errors
// become a 500 with a generic message so internals never leak to clients.
func Error(c *gin.Context, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		c.JSON(http.StatusBadRequest, ErrorBody{Error: err.Error()})
	case apperror.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorBody{Error: err.Error()})
	case apperror.KindForbidden:
		c.JSON(http.StatusForbidden, ErrorBody{Error: err.Error()})
	case apperror.KindConflict:
		c.JSON(http.StatusConflict, ErrorBody{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
	}
}
