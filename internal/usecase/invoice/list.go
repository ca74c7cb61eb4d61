package invoice

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/dto"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type GetInvoice struct {
	repo     domain.Repository
	timezone string
}

func NewGetInvoice(repo domain.Repository, tz string) *GetInvoice {
	return &GetInvoice{repo: repo, timezone: tz}
}

func (uc *GetInvoice) Execute(ctx context.Context, id uint) (*dto.InvoiceDTO, error) {
	inv, err := uc.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, httperr.OrNotFound(err, "invoice_not_found")
	}
	out := toDTO(*inv, timezone.Today(uc.timezone), timezone.Location(uc.timezone))
	return &out, nil
}

// ListInvoices filters on the effective status, so "overdue" also matches
// pending invoices past their due date and "pending" excludes them.
type ListInvoices struct {
	repo     domain.Repository
	timezone string
}

func NewListInvoices(repo domain.Repository, tz string) *ListInvoices {
	return &ListInvoices{repo: repo, timezone: tz}
}

func (uc *ListInvoices) Execute(ctx context.Context, f domain.ListFilter) ([]dto.InvoiceDTO, error) {
	want := f.Status
	if want != "" && !domain.IsValidStatus(want) {
		return nil, httperr.ErrValidation("status", "invalid_status")
	}

	switch domain.Status(want) {
	case domain.StatusPending, domain.StatusOverdue:
		f.Status = ""
	}

	invoices, err := uc.repo.ListInvoices(ctx, f)
	if err != nil {
		return nil, err
	}

	today := timezone.Today(uc.timezone)
	loc := timezone.Location(uc.timezone)

	out := make([]dto.InvoiceDTO, 0, len(invoices))
	for _, inv := range invoices {
		d := toDTO(inv, today, loc)
		if want != "" && d.Status != want {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
