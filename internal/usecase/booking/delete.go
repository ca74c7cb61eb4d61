package booking

import (
	"context"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
)

type DeleteResult struct {
	BookingID         uint   `json:"booking_id"`
	DeletedInvoiceIDs []uint `json:"deleted_invoice_ids"`
}

// DeleteBooking removes the invoices that reference a booking and then the
// booking itself, all inside one transaction. Any failure rolls everything
// back; nothing is retried.
type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*DeleteResult, error) {

	res := &DeleteResult{
		BookingID:         bookingID,
		DeletedInvoiceIDs: []uint{},
	}

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetBooking(ctx, bookingID); err != nil {
			return httperr.OrNotFound(err, "booking_not_found")
		}

		invoiceIDs, err := tx.ListInvoiceIDsForBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		for _, id := range invoiceIDs {
			if err := tx.DeleteInvoice(ctx, id); err != nil {
				return err
			}
			res.DeletedInvoiceIDs = append(res.DeletedInvoiceIDs, id)
		}

		return tx.DeleteBooking(ctx, bookingID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &bookingID,
		Metadata: map[string]any{"deleted_invoice_ids": res.DeletedInvoiceIDs},
	})

	return res, nil
}
