package report

import (
	"context"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/report"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/timezone"
)

type GetSummary struct {
	repo     domain.Repository
	timezone string
}

func NewGetSummary(repo domain.Repository, tz string) *GetSummary {
	return &GetSummary{repo: repo, timezone: tz}
}

// Execute summarises the inclusive day range [from, to]. Both default to
// the first and last day of the current month.
func (uc *GetSummary) Execute(ctx context.Context, from, to string) (*domain.Summary, error) {
	now := timezone.NowIn(uc.timezone)
	if from == "" {
		from = now.AddDate(0, 0, 1-now.Day()).Format("2006-01-02")
	}

	fromDay, err := timezone.ParseDate(uc.timezone, from)
	if err != nil {
		return nil, httperr.ErrValidation("from", "invalid_date")
	}
	if to == "" {
		to = fromDay.AddDate(0, 1, -1).Format("2006-01-02")
	}
	toDay, err := timezone.ParseDate(uc.timezone, to)
	if err != nil {
		return nil, httperr.ErrValidation("to", "invalid_date")
	}
	if toDay.Before(fromDay) {
		return nil, httperr.ErrValidation("to", "before_from")
	}

	end := toDay.AddDate(0, 0, 1)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, fromDay.AddDate(0, 0, -1), end.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	invoices, err := uc.repo.ListInvoicesForPeriod(ctx, fromDay, end)
	if err != nil {
		return nil, err
	}

	s := domain.Summarize(
		bookings,
		invoices,
		from,
		to,
		timezone.Today(uc.timezone),
		timezone.Location(uc.timezone),
	)
	return &s, nil
}
