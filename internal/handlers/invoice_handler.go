package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
	ucInvoice "github.com/BruksfildServices01/banquet-admin/internal/usecase/invoice"
)

type InvoiceHandler struct {
	create   *ucInvoice.CreateInvoice
	update   *ucInvoice.UpdateInvoice
	delete   *ucInvoice.DeleteInvoice
	get      *ucInvoice.GetInvoice
	list     *ucInvoice.ListInvoices
	timezone string
}

func NewInvoiceHandler(
	create *ucInvoice.CreateInvoice,
	update *ucInvoice.UpdateInvoice,
	del *ucInvoice.DeleteInvoice,
	get *ucInvoice.GetInvoice,
	list *ucInvoice.ListInvoices,
	tz string,
) *InvoiceHandler {
	return &InvoiceHandler{
		create:   create,
		update:   update,
		delete:   del,
		get:      get,
		list:     list,
		timezone: tz,
	}
}

// --------- Requests ---------

type CreateInvoiceRequest struct {
	BookingID *uint    `json:"booking_id"`
	ClientID  *uint    `json:"client_id"`
	Amount    *float64 `json:"amount" binding:"omitempty,min=0"`
	TaxRate   *float64 `json:"tax_rate" binding:"omitempty,min=0"`
	DueDate   *string  `json:"due_date" binding:"omitempty,isodate"`
	Status    string   `json:"status" binding:"omitempty,invoicestatus"`
	Notes     string   `json:"notes" binding:"max=255"`
}

type UpdateInvoiceRequest struct {
	Amount       *float64 `json:"amount,omitempty" binding:"omitempty,min=0"`
	TaxRate      *float64 `json:"tax_rate,omitempty" binding:"omitempty,min=0"`
	DueDate      *string  `json:"due_date,omitempty" binding:"omitempty,isodate"`
	ClearDueDate bool     `json:"clear_due_date"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,invoicestatus"`
	Notes        *string  `json:"notes,omitempty" binding:"omitempty,max=255"`
}

// --------- Handlers ---------

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	due, err := parseOptionalDateOrTime(h.timezone, req.DueDate)
	if err != nil {
		invalidField(c, "due_date", "invalid_date")
		return
	}

	inv, err := h.create.Execute(c.Request.Context(), ucInvoice.CreateInvoiceInput{
		UserID:    currentUserID(c),
		BookingID: req.BookingID,
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		TaxRate:   req.TaxRate,
		DueDate:   due,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}

	due, err := parseOptionalDateOrTime(h.timezone, req.DueDate)
	if err != nil {
		invalidField(c, "due_date", "invalid_date")
		return
	}

	inv, err := h.update.Execute(c.Request.Context(), ucInvoice.UpdateInvoiceInput{
		UserID:    currentUserID(c),
		InvoiceID: id,
		Amount:    req.Amount,
		TaxRate:   req.TaxRate,
		DueDate:   due,
		ClearDue:  req.ClearDueDate,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	bookingID, ok := uintQuery(c, "booking_id")
	if !ok {
		return
	}
	clientID, ok := uintQuery(c, "client_id")
	if !ok {
		return
	}

	dueFrom, dueTo, err := dayBounds(h.timezone, c.Query("due_from"), c.Query("due_to"))
	if err != nil {
		invalidField(c, "due_from", "invalid_date")
		return
	}

	invoices, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		BookingID: bookingID,
		ClientID:  clientID,
		Status:    c.Query("status"),
		DueFrom:   dueFrom,
		DueTo:     dueTo,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, invoices)
}
