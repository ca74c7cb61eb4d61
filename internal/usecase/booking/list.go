package booking

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, httperr.OrNotFound(err, "booking_not_found")
	}
	return b, nil
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context, f domain.ListFilter) ([]models.Booking, error) {
	if f.Status != "" && !domain.IsValidStatus(f.Status) {
		return nil, httperr.ErrValidation("status", "invalid_status")
	}
	return uc.repo.ListBookings(ctx, f)
}
