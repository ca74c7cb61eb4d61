package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/banquet-admin/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	update   *ucBooking.UpdateBooking
	confirm  *ucBooking.ConfirmBooking
	cancel   *ucBooking.CancelBooking
	delete   *ucBooking.DeleteBooking
	get      *ucBooking.GetBooking
	list     *ucBooking.ListBookings
	calendar *ucBooking.Calendar
	timezone string
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	update *ucBooking.UpdateBooking,
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	del *ucBooking.DeleteBooking,
	get *ucBooking.GetBooking,
	list *ucBooking.ListBookings,
	calendar *ucBooking.Calendar,
	tz string,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		update:   update,
		confirm:  confirm,
		cancel:   cancel,
		delete:   del,
		get:      get,
		list:     list,
		calendar: calendar,
		timezone: tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	VenueID   uint   `json:"venue_id" binding:"required"`
	EventName string `json:"event_name" binding:"max=150"`

	StartDate string  `json:"start_date" binding:"required,isodate|datetime=2006-01-02T15:04:05Z07:00"`
	EndDate   *string `json:"end_date" binding:"omitempty,isodate|datetime=2006-01-02T15:04:05Z07:00"`

	GuestCount int    `json:"guest_count" binding:"min=0"`
	Status     string `json:"status" binding:"omitempty,bookingstatus"`

	TotalAmount   *float64 `json:"total_amount" binding:"omitempty,min=0"`
	DepositAmount float64  `json:"deposit_amount" binding:"min=0"`
	DepositPaid   bool     `json:"deposit_paid"`

	Notes string `json:"notes" binding:"max=255"`
}

type UpdateBookingRequest struct {
	ClientID  *uint   `json:"client_id,omitempty"`
	VenueID   *uint   `json:"venue_id,omitempty"`
	EventName *string `json:"event_name,omitempty" binding:"omitempty,max=150"`

	StartDate    *string `json:"start_date,omitempty" binding:"omitempty,isodate|datetime=2006-01-02T15:04:05Z07:00"`
	EndDate      *string `json:"end_date,omitempty" binding:"omitempty,isodate|datetime=2006-01-02T15:04:05Z07:00"`
	ClearEndDate bool    `json:"clear_end_date"`

	GuestCount    *int     `json:"guest_count,omitempty" binding:"omitempty,min=0"`
	TotalAmount   *float64 `json:"total_amount,omitempty" binding:"omitempty,min=0"`
	DepositAmount *float64 `json:"deposit_amount,omitempty" binding:"omitempty,min=0"`
	DepositPaid   *bool    `json:"deposit_paid,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=255"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	start, err := parseDateOrTime(h.timezone, req.StartDate)
	if err != nil {
		invalidField(c, "start_date", "invalid_date")
		return
	}
	end, err := parseOptionalDateOrTime(h.timezone, req.EndDate)
	if err != nil {
		invalidField(c, "end_date", "invalid_date")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:        currentUserID(c),
		ClientID:      req.ClientID,
		VenueID:       req.VenueID,
		EventName:     req.EventName,
		StartDate:     start,
		EndDate:       end,
		GuestCount:    req.GuestCount,
		Status:        req.Status,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		DepositPaid:   req.DepositPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	start, err := parseOptionalDateOrTime(h.timezone, req.StartDate)
	if err != nil {
		invalidField(c, "start_date", "invalid_date")
		return
	}
	end, err := parseOptionalDateOrTime(h.timezone, req.EndDate)
	if err != nil {
		invalidField(c, "end_date", "invalid_date")
		return
	}

	res, err := h.update.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		UserID:        currentUserID(c),
		BookingID:     id,
		ClientID:      req.ClientID,
		VenueID:       req.VenueID,
		EventName:     req.EventName,
		StartDate:     start,
		EndDate:       end,
		ClearEnd:      req.ClearEndDate,
		GuestCount:    req.GuestCount,
		TotalAmount:   req.TotalAmount,
		DepositAmount: req.DepositAmount,
		DepositPaid:   req.DepositPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

// ======================================================
// DELETE (cascade)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.delete.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	venueID, ok := uintQuery(c, "venue_id")
	if !ok {
		return
	}
	clientID, ok := uintQuery(c, "client_id")
	if !ok {
		return
	}

	from, to, err := dayBounds(h.timezone, c.Query("from"), c.Query("to"))
	if err != nil {
		invalidField(c, "from", "invalid_date")
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		VenueID:  venueID,
		ClientID: clientID,
		Status:   c.Query("status"),
		From:     from,
		To:       to,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// Calendar answers ?date= for one day or ?from=&to= for a range.
func (h *BookingHandler) Calendar(c *gin.Context) {
	venueID, ok := uintQuery(c, "venue_id")
	if !ok {
		return
	}

	q := ucBooking.CalendarQuery{
		From:    c.Query("from"),
		To:      c.Query("to"),
		VenueID: venueID,
	}
	if date := c.Query("date"); date != "" {
		q.From, q.To = date, date
	}
	if q.From == "" {
		invalidField(c, "date", "required")
		return
	}

	entries, err := h.calendar.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, entries)
}
