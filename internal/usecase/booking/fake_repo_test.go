package booking

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/banquet-admin/internal/audit"
	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// fakeRepo is an in-memory store. WithinTx snapshots every table and restores
// the snapshot when the callback fails, mimicking a rollback.
type fakeRepo struct {
	venues   map[uint]models.Venue
	clients  map[uint]models.Client
	bookings map[uint]models.Booking
	invoices map[uint]models.Invoice
	nextID   uint

	calls []string

	failDeleteInvoice map[uint]error
	failDeleteBooking error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		venues:            map[uint]models.Venue{},
		clients:           map[uint]models.Client{},
		bookings:          map[uint]models.Booking{},
		invoices:          map[uint]models.Invoice{},
		nextID:            100,
		failDeleteInvoice: map[uint]error{},
	}
}

func (r *fakeRepo) GetVenue(_ context.Context, id uint) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *fakeRepo) LockVenue(ctx context.Context, id uint) (*models.Venue, error) {
	r.calls = append(r.calls, fmt.Sprintf("lock_venue:%d", id))
	return r.GetVenue(ctx, id)
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.nextID++
	b.ID = r.nextID
	r.bookings[b.ID] = *b
	r.calls = append(r.calls, fmt.Sprintf("create_booking:%d", b.ID))
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.bookings[b.ID] = *b
	r.calls = append(r.calls, fmt.Sprintf("update_booking:%d", b.ID))
	return nil
}

func (r *fakeRepo) sortedBookings() []models.Booking {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if v, ok := r.venues[b.VenueID]; ok {
			b.Venue = v
		}
		if c, ok := r.clients[b.ClientID]; ok {
			b.Client = c
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRepo) ListBookings(_ context.Context, f domain.ListFilter) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.sortedBookings() {
		if f.VenueID != 0 && b.VenueID != f.VenueID {
			continue
		}
		if f.ClientID != 0 && b.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.From != nil && f.To != nil && !touches(b, *f.From, *f.To) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// touches mirrors the SQL prefilter:
// start_date < to AND COALESCE(end_date, start_date) >= from.
func touches(b models.Booking, from, to time.Time) bool {
	end := b.StartDate
	if b.EndDate != nil {
		end = *b.EndDate
	}
	return b.StartDate.Before(to) && !end.Before(from)
}

func (r *fakeRepo) ListConfirmedForVenue(_ context.Context, venueID uint, from, to time.Time) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.sortedBookings() {
		if b.VenueID == venueID && b.Status == "confirmed" && touches(b, from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListInvoiceIDsForBooking(_ context.Context, bookingID uint) ([]uint, error) {
	ids := []uint{}
	for id, inv := range r.invoices {
		if inv.BookingID != nil && *inv.BookingID == bookingID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeRepo) DeleteInvoice(_ context.Context, id uint) error {
	r.calls = append(r.calls, fmt.Sprintf("delete_invoice:%d", id))
	if err := r.failDeleteInvoice[id]; err != nil {
		return err
	}
	delete(r.invoices, id)
	return nil
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	r.calls = append(r.calls, fmt.Sprintf("delete_booking:%d", id))
	if r.failDeleteBooking != nil {
		return r.failDeleteBooking
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) WithinTx(_ context.Context, fn func(repo domain.Repository) error) error {
	bookings := make(map[uint]models.Booking, len(r.bookings))
	for k, v := range r.bookings {
		bookings[k] = v
	}
	invoices := make(map[uint]models.Invoice, len(r.invoices))
	for k, v := range r.invoices {
		invoices[k] = v
	}

	if err := fn(r); err != nil {
		r.bookings = bookings
		r.invoices = invoices
		r.calls = append(r.calls, "rollback")
		return err
	}
	r.calls = append(r.calls, "commit")
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// helpers
// --------------------------------------------------

func newDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)
	return d
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func ptrTime(t time.Time) *time.Time { return &t }

func f64(v float64) *float64 { return &v }

func seed(r *fakeRepo) {
	r.venues[1] = models.Venue{ID: 1, Name: "Grand Hall", Capacity: 200, HourlyRate: 100, Availability: "available"}
	r.venues[2] = models.Venue{ID: 2, Name: "Garden", Capacity: 80, HourlyRate: 50, Availability: "maintenance"}
	r.clients[1] = models.Client{ID: 1, Name: "Ana Souza"}
}

func invoiceFor(bookingID uint) models.Invoice {
	id := bookingID
	return models.Invoice{BookingID: &id, Status: "pending"}
}
