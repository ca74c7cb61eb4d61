package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/venue"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

type VenueGormRepository struct {
	db *gorm.DB
}

func NewVenueGormRepository(db *gorm.DB) *VenueGormRepository {
	return &VenueGormRepository{db: db}
}

func (r *VenueGormRepository) GetVenue(
	ctx context.Context,
	id uint,
) (*models.Venue, error) {

	var v models.Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueGormRepository) ListVenues(
	ctx context.Context,
	query string,
) ([]models.Venue, error) {

	q := r.db.WithContext(ctx)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var venues []models.Venue
	if err := q.Order("name ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueGormRepository) CreateVenue(
	ctx context.Context,
	v *models.Venue,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueGormRepository) UpdateVenue(
	ctx context.Context,
	v *models.Venue,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VenueGormRepository) ListConfirmedForVenues(
	ctx context.Context,
	venueIDs []uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Client").
		Where(
			"venue_id IN ? AND status = 'confirmed' AND start_date < ? AND COALESCE(end_date, start_date) >= ?",
			venueIDs,
			to,
			from,
		).
		Order("start_date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*VenueGormRepository)(nil)
