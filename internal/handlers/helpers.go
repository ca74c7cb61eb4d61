package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// bindJSON writes the 400 itself; callers just return on false.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.JSON(http.StatusBadRequest, httperr.HTTPError{
			Code:    "invalid_" + fe.Tag(),
			Field:   fe.Field(),
			Message: fe.Error(),
		})
		return false
	}

	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
	return false
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// uintQuery returns 0 when the parameter is absent.
func uintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperr.HTTPError{
			Code:    "invalid_" + name,
			Field:   name,
			Message: "Parâmetro inválido.",
		})
		return 0, false
	}
	return uint(v), true
}

func invalidField(c *gin.Context, field, code string) {
	httperr.FromError(c, httperr.ErrValidation(field, code))
}
