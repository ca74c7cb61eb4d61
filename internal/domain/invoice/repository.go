package invoice

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type ListFilter struct {
	BookingID uint
	ClientID  uint
	Status    string
	DueFrom   *time.Time
	DueTo     *time.Time
}

type Repository interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)

	GetInvoice(ctx context.Context, id uint) (*models.Invoice, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	UpdateInvoice(ctx context.Context, inv *models.Invoice) error
	DeleteInvoice(ctx context.Context, id uint) error
	ListInvoices(ctx context.Context, f ListFilter) ([]models.Invoice, error)
}
