package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/httpresp"
	ucVenue "github.com/BruksfildServices01/banquet-admin/internal/usecase/venue"
)

type VenueHandler struct {
	list         *ucVenue.ListVenues
	create       *ucVenue.CreateVenue
	update       *ucVenue.UpdateVenue
	availability *ucVenue.CheckAvailability
}

func NewVenueHandler(
	list *ucVenue.ListVenues,
	create *ucVenue.CreateVenue,
	update *ucVenue.UpdateVenue,
	availability *ucVenue.CheckAvailability,
) *VenueHandler {
	return &VenueHandler{
		list:         list,
		create:       create,
		update:       update,
		availability: availability,
	}
}

// --------- Requests ---------

type CreateVenueRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  string  `json:"description" binding:"max=255"`
	Capacity     int     `json:"capacity" binding:"min=0"`
	HourlyRate   float64 `json:"hourly_rate" binding:"min=0"`
	Availability string  `json:"availability"`
}

type UpdateVenueRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Capacity     *int     `json:"capacity,omitempty" binding:"omitempty,min=0"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty" binding:"omitempty,min=0"`
	Availability *string  `json:"availability,omitempty"`
}

// --------- Handlers ---------

func (h *VenueHandler) List(c *gin.Context) {
	venues, err := h.list.Execute(c.Request.Context(), strings.TrimSpace(c.Query("query")))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, venues)
}

func (h *VenueHandler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.create.Execute(c.Request.Context(), ucVenue.CreateVenueInput{
		UserID:       currentUserID(c),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Capacity:     req.Capacity,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, v)
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVenueRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.update.Execute(c.Request.Context(), ucVenue.UpdateVenueInput{
		UserID:       currentUserID(c),
		VenueID:      id,
		Name:         req.Name,
		Description:  req.Description,
		Capacity:     req.Capacity,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

// Availability answers ?date= or ?from=&to=; no parameters means today.
func (h *VenueHandler) Availability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if date := c.Query("date"); date != "" {
		from, to = date, date
	}

	res, err := h.availability.Execute(c.Request.Context(), id, from, to)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}
