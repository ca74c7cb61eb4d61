package venue

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type Repository interface {
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	ListVenues(ctx context.Context, query string) ([]models.Venue, error)
	CreateVenue(ctx context.Context, v *models.Venue) error
	UpdateVenue(ctx context.Context, v *models.Venue) error

	// Confirmed bookings for the given venues that may touch [from, to).
	ListConfirmedForVenues(
		ctx context.Context,
		venueIDs []uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
