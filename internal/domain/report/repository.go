package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type Repository interface {
	// Bookings that may touch [from, to).
	ListBookingsForPeriod(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	// Invoices created or due inside [from, to).
	ListInvoicesForPeriod(ctx context.Context, from, to time.Time) ([]models.Invoice, error)
}
