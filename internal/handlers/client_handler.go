package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"max=20"`
	Company string `json:"company" binding:"max=100"`
	Notes   string `json:"notes" binding:"max=255"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Company *string `json:"company,omitempty" binding:"omitempty,max=100"`
	Notes   *string `json:"notes,omitempty" binding:"omitempty,max=255"`
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context())

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client := models.Client{
		Name:    strings.TrimSpace(req.Name),
		Email:   validators.NormalizeEmail(req.Email),
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	var client models.Client
	if err := h.db.WithContext(c.Request.Context()).First(&client, id).Error; err != nil {
		httperr.FromError(c, httperr.OrNotFound(err, "client_not_found"))
		return
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		client.Email = validators.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&client).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	httpresp.OK(c, client)
}
