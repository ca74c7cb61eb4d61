package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type ListFilter struct {
	VenueID  uint
	ClientID uint
	Status   string

	// Bookings whose [start, end] touches [From, To).
	From *time.Time
	To   *time.Time
}

type Repository interface {
	// -------- References --------
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)

	// LockVenue loads the venue with a row lock. Inside WithinTx it
	// serialises booking writes on the same venue until commit.
	LockVenue(ctx context.Context, id uint) (*models.Venue, error)

	// -------- Booking --------
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, b *models.Booking) error
	UpdateBooking(ctx context.Context, b *models.Booking) error
	ListBookings(ctx context.Context, f ListFilter) ([]models.Booking, error)

	// Confirmed bookings of a venue that may touch [from, to). The caller
	// narrows the result with Conflicts.
	ListConfirmedForVenue(
		ctx context.Context,
		venueID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// -------- Cascade --------
	ListInvoiceIDsForBooking(ctx context.Context, bookingID uint) ([]uint, error)
	DeleteInvoice(ctx context.Context, id uint) error
	DeleteBooking(ctx context.Context, id uint) error

	// WithinTx runs fn against a repository bound to one transaction. Any
	// error from fn rolls the whole transaction back.
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
}
