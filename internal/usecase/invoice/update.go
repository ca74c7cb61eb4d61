package invoice

import (
	"context"
	"time"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	"github.com/BruksfildServices01/banquet-admin/internal/domain/billing"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type UpdateInvoiceInput struct {
	UserID    uint
	InvoiceID uint

	Amount  *float64
	TaxRate *float64

	DueDate  *time.Time
	ClearDue bool

	Status *string
	Notes  *string
}

type UpdateInvoice struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateInvoice(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateInvoice {
	return &UpdateInvoice{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

func (uc *UpdateInvoice) Execute(
	ctx context.Context,
	in UpdateInvoiceInput,
) (*dto.InvoiceDTO, error) {

	inv, err := uc.repo.GetInvoice(ctx, in.InvoiceID)
	if err != nil {
		return nil, httperr.OrNotFound(err, "invoice_not_found")
	}

	if in.Amount != nil || in.TaxRate != nil {
		amount := inv.Amount
		if in.Amount != nil {
			amount = *in.Amount
		}
		rate := inv.TaxRate
		if in.TaxRate != nil {
			rate = *in.TaxRate
		}

		fin, err := billing.Derive(amount, &rate)
		if err != nil {
			return nil, err
		}
		inv.Amount = fin.Amount
		inv.TaxRate = fin.TaxRatePercent
		inv.TaxAmount = fin.TaxAmount
		inv.TotalAmount = fin.TotalAmount
	}

	if in.ClearDue {
		inv.DueDate = nil
	} else if in.DueDate != nil {
		due := *in.DueDate
		inv.DueDate = &due
	}

	if in.Notes != nil {
		inv.Notes = *in.Notes
	}

	if in.Status != nil {
		if !domain.IsValidStatus(*in.Status) {
			return nil, httperr.ErrValidation("status", "invalid_status")
		}
		domain.ApplyStatus(inv, domain.Status(*in.Status), timezone.NowIn(uc.timezone))
	}

	// last write wins
	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "invoice_updated",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{"status": inv.Status, "total_amount": inv.TotalAmount},
	})

	out := toDTO(*inv, timezone.Today(uc.timezone), timezone.Location(uc.timezone))
	return &out, nil
}
