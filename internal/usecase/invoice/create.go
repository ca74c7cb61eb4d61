package invoice

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateInvoiceInput struct {
	UserID uint

	BookingID *uint
	ClientID  *uint

	// nil takes the booking total when a booking is given
	Amount  *float64
	TaxRate *float64

	DueDate *time.Time
	Status  string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateInvoice struct {
	repo           domain.Repository
	audit          *audit.Dispatcher
	timezone       string
	defaultTaxRate float64
}

func NewCreateInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
	defaultTaxRate float64,
) *CreateInvoice {
	return &CreateInvoice{
		repo:           repo,
		audit:          audit,
		timezone:       tz,
		defaultTaxRate: defaultTaxRate,
	}
}

func (uc *CreateInvoice) Execute(
	ctx context.Context,
	in CreateInvoiceInput,
) (*dto.InvoiceDTO, error) {

	status := domain.StatusDraft
	if in.Status != "" {
		if !domain.IsValidStatus(in.Status) {
			return nil, httperr.ErrValidation("status", "invalid_status")
		}
		status = domain.Status(in.Status)
	}

	inv := &models.Invoice{
		BookingID: in.BookingID,
		ClientID:  in.ClientID,
		DueDate:   in.DueDate,
		Notes:     in.Notes,
	}

	// --------------------------------------------------
	// 1. Booking defaults
	// --------------------------------------------------
	var amount float64
	switch {
	case in.BookingID != nil:
		b, err := uc.repo.GetBooking(ctx, *in.BookingID)
		if err != nil {
			return nil, httperr.OrNotFound(err, "booking_not_found")
		}
		if inv.ClientID == nil {
			clientID := b.ClientID
			inv.ClientID = &clientID
		}
		amount = b.TotalAmount
		if in.Amount != nil {
			amount = *in.Amount
		}
	case in.Amount != nil:
		amount = *in.Amount
	default:
		return nil, httperr.ErrValidation("amount", "required")
	}

	// --------------------------------------------------
	// 2. Financials
	// --------------------------------------------------
	fin, err := billing.DeriveWithDefault(amount, in.TaxRate, uc.defaultTaxRate)
	if err != nil {
		return nil, err
	}
	inv.Amount = fin.Amount
	inv.TaxRate = fin.TaxRatePercent
	inv.TaxAmount = fin.TaxAmount
	inv.TotalAmount = fin.TotalAmount

	now := timezone.NowIn(uc.timezone)
	inv.InvoiceNumber = newInvoiceNumber(now)
	domain.ApplyStatus(inv, status, now)

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "invoice_created",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"invoice_number": inv.InvoiceNumber, "total_amount": inv.TotalAmount},
	})

	out := toDTO(*inv, timezone.Today(uc.timezone), timezone.Location(uc.timezone))
	return &out, nil
}
