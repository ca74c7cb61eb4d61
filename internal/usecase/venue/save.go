package venue

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// ======================================================
// CREATE
// ======================================================

type CreateVenueInput struct {
	UserID uint

	Name         string
	Description  string
	Capacity     int
	HourlyRate   float64
	Availability string
}

type CreateVenue struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewCreateVenue(repo domain.Repository, audit *audit.Dispatcher, tz string) *CreateVenue {
	return &CreateVenue{repo: repo, audit: audit, timezone: tz}
}

func (uc *CreateVenue) Execute(ctx context.Context, in CreateVenueInput) (*dto.VenueDTO, error) {
	if err := validateFields(in.Name, in.Capacity, in.HourlyRate); err != nil {
		return nil, err
	}

	manual, err := domain.ValidateManual(in.Availability)
	if err != nil {
		return nil, err
	}

	v := &models.Venue{
		Name:         in.Name,
		Description:  in.Description,
		Capacity:     in.Capacity,
		HourlyRate:   in.HourlyRate,
		Availability: string(manual),
	}

	if err := uc.repo.CreateVenue(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "venue_created",
		Entity:   "venue",
		EntityID: &v.ID,
	})

	// a new venue has no bookings yet
	out := toDTO(*v, manual)
	return &out, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateVenueInput struct {
	UserID  uint
	VenueID uint

	Name         *string
	Description  *string
	Capacity     *int
	HourlyRate   *float64
	Availability *string
}

type UpdateVenue struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateVenue(repo domain.Repository, audit *audit.Dispatcher, tz string) *UpdateVenue {
	return &UpdateVenue{repo: repo, audit: audit, timezone: tz}
}

// Execute saves the manual availability and answers with the effective one,
// so saving "available" on a venue booked today still reports "booked".
func (uc *UpdateVenue) Execute(ctx context.Context, in UpdateVenueInput) (*dto.VenueDTO, error) {
	v, err := uc.repo.GetVenue(ctx, in.VenueID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "venue_not_found")
	}

	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.Description != nil {
		v.Description = *in.Description
	}
	if in.Capacity != nil {
		v.Capacity = *in.Capacity
	}
	if in.HourlyRate != nil {
		v.HourlyRate = *in.HourlyRate
	}
	if in.Availability != nil {
		manual, err := domain.ValidateManual(*in.Availability)
		if err != nil {
			return nil, err
		}
		v.Availability = string(manual)
	}

	if err := validateFields(v.Name, v.Capacity, v.HourlyRate); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateVenue(ctx, v); err != nil {
		return nil, err
	}

	today := timezone.Today(uc.timezone)
	day, err := timezone.ParseDate(uc.timezone, today)
	if err != nil {
		return nil, err
	}
	from, to := dayWindow(day, day)

	bookings, err := uc.repo.ListConfirmedForVenues(ctx, []uint{v.ID}, from, to)
	if err != nil {
		return nil, err
	}
	effective := domain.ResolveOn(v.Availability, bookings, today, timezone.Location(uc.timezone))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "venue_updated",
		Entity:   "venue",
		EntityID: &v.ID,
		Metadata: map[string]any{"availability": v.Availability, "effective": effective},
	})

	out := toDTO(*v, effective)
	return &out, nil
}
