package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/uistate"
)

type MeHandler struct {
	db      *gorm.DB
	uiState *uistate.Service
}

func NewMeHandler(db *gorm.DB, uiState *uistate.Service) *MeHandler {
	return &MeHandler{db: db, uiState: uiState}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		httperr.FromError(c, httperr.OrNotFound(err, "user_not_found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(&user)})
}

// ======================================================
// UI STATE
// ======================================================

func (h *MeHandler) GetUIState(c *gin.Context) {
	s, err := h.uiState.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *MeHandler) PutUIState(c *gin.Context) {
	var req uistate.State
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.uiState.Put(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
