package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope returned by every failing route.
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Kind    string `json:"kind" example:"not_found"`
	Message string `json:"message" example:"User not found"`
}

const (
	KindValidation   = "validation"
	KindUnauthorized = "unauthorized"
	KindForbidden    = "forbidden"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindInternal     = "internal"
)

// Error sends an error envelope with the given status code, kind and message
func Error(c *gin.Context, statusCode int, kind, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   true,
		Kind:    kind,
		Message: message,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, KindValidation, message)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, KindUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, KindForbidden, message)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, KindNotFound, message)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, KindConflict, message)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, KindInternal, message)
}
