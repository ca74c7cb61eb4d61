package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/report"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("start_date < ? AND COALESCE(end_date, start_date) >= ?", to, from).
		Order("start_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *ReportGormRepository) ListInvoicesForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Where(
			"(created_at >= ? AND created_at < ?) OR (due_date >= ? AND due_date < ?)",
			from, to, from, to,
		).
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
