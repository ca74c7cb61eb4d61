package invoice

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
)

type DeleteInvoice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteInvoice(repo domain.Repository, audit *audit.Dispatcher) *DeleteInvoice {
	return &DeleteInvoice{repo: repo, audit: audit}
}

func (uc *DeleteInvoice) Execute(ctx context.Context, userID, invoiceID uint) error {
	inv, err := uc.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return httperr.OrNotFound(err, "invoice_not_found")
	}

	if err := uc.repo.DeleteInvoice(ctx, invoiceID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "invoice_deleted",
		Entity:   "invoice",
		EntityID: &invoiceID,
		Metadata: map[string]any{"invoice_number": inv.InvoiceNumber},
	})
	return nil
}
