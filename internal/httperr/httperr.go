package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError maps use case errors to responses. Backend failures keep their raw
// message so the dashboard can show it as is.
func FromError(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    ve.Code,
			Field:   ve.Field,
			Message: ve.Error(),
		})
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		Write(c, statusForCode(be.Code), be.Code, be.Code)
		return
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "not_found", err.Error())
	case IsExclusionConflict(err), IsUniqueViolation(err):
		Conflict(c, "conflict", err.Error())
	case IsForeignKeyViolation(err):
		Conflict(c, "referenced_record", err.Error())
	default:
		Internal(c, "backend_error", err.Error())
	}
}

func statusForCode(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "invalid_state",
		code == "venue_unavailable",
		code == "venue_in_maintenance":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
