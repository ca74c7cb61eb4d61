package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/banquet-admin/internal/domain/booking"
	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
	"github.com/BruksfildServices01/banquet-admin/internal/models"
)

// ======================================================
// CREATE
// ======================================================

func TestCreateBookingDerivesTotalFromHourlyRate(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	start := time.Date(2025, 4, 5, 18, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Hour)

	res, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:     1,
		ClientID:   1,
		VenueID:    1,
		EventName:  "Wedding",
		StartDate:  start,
		EndDate:    &end,
		GuestCount: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", res.Booking.Status)
	assert.Equal(t, 500.0, res.Booking.TotalAmount)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, repo.bookings, res.Booking.ID)
}

func TestCreateBookingClampsDepositWithWarning(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	res, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:      1,
		VenueID:       1,
		StartDate:     date("2025-04-05"),
		TotalAmount:   f64(100),
		DepositAmount: 150,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Booking.DepositAmount)
	assert.Equal(t, []string{"deposit_exceeds_total"}, res.Warnings)
}

func TestCreateBookingPricesDateOnlySpanAsWholeDays(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")
	ctx := context.Background()

	res, err := uc.Execute(ctx, CreateBookingInput{
		ClientID:      1,
		VenueID:       1,
		StartDate:     date("2025-04-05"),
		EndDate:       datePtr("2025-04-05"),
		DepositAmount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, res.Booking.TotalAmount)
	assert.Equal(t, 500.0, res.Booking.DepositAmount)
	assert.Empty(t, res.Warnings)

	res, err = uc.Execute(ctx, CreateBookingInput{
		ClientID:      1,
		VenueID:       1,
		StartDate:     date("2025-04-10"),
		DepositAmount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, res.Booking.TotalAmount)
	assert.Equal(t, 500.0, res.Booking.DepositAmount)

	res, err = uc.Execute(ctx, CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-20"),
		EndDate:   datePtr("2025-04-21"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4800.0, res.Booking.TotalAmount)
}

func TestCreateBookingChecksAndWritesInOneTransaction(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	res, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-05"),
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"lock_venue:1",
		fmt.Sprintf("create_booking:%d", res.Booking.ID),
		"commit",
	}, repo.calls)

	repo.calls = nil
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-05"),
	})
	assert.True(t, httperr.IsBusiness(err, "venue_unavailable"))
	assert.Equal(t, []string{"lock_venue:1", "rollback"}, repo.calls)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingRejectsOverlapWithConfirmed(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "confirmed", StartDate: date("2025-04-04"), EndDate: datePtr("2025-04-06")}
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-06"),
	})
	assert.True(t, httperr.IsBusiness(err, "venue_unavailable"))
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBookingIgnoresPendingAndCancelledNeighbours(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, Status: "pending", StartDate: date("2025-04-05")}
	repo.bookings[2] = models.Booking{ID: 2, VenueID: 1, Status: "cancelled", StartDate: date("2025-04-05")}
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	res, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-05"),
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Booking.Status)
	assert.NotNil(t, res.Booking.ConfirmedAt)
}

func TestCreateBookingNextDayIsFree(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, Status: "confirmed", StartDate: date("2025-04-05"), EndDate: datePtr("2025-04-05")}
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:  1,
		VenueID:   1,
		StartDate: date("2025-04-06"),
	})
	require.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	uc := NewCreateBooking(repo, newDispatcher(t), "UTC")
	ctx := context.Background()

	_, err := uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 2, StartDate: date("2025-04-05")})
	assert.True(t, httperr.IsBusiness(err, "venue_in_maintenance"))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 9, StartDate: date("2025-04-05")})
	assert.True(t, httperr.IsBusiness(err, "venue_not_found"))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 9, VenueID: 1, StartDate: date("2025-04-05")})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: date("2025-04-05"), GuestCount: 201})
	assert.True(t, httperr.IsBusiness(err, "guest_count_exceeds_capacity"))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: date("2025-04-05"), EndDate: datePtr("2025-04-04")})
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: date("2025-04-05"), Status: "done"})
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: date("2025-04-05"), DepositAmount: -5})
	assert.True(t, httperr.IsValidation(err))

	assert.Empty(t, repo.bookings)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateBookingExcludesItselfFromConflicts(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "confirmed", StartDate: date("2025-04-05"), TotalAmount: 1000}
	uc := NewUpdateBooking(repo, newDispatcher(t), "UTC")

	guests := 90
	res, err := uc.Execute(context.Background(), UpdateBookingInput{BookingID: 1, GuestCount: &guests, DepositAmount: f64(1500)})
	require.NoError(t, err)

	assert.Equal(t, 90, repo.bookings[1].GuestCount)
	assert.Equal(t, 1000.0, repo.bookings[1].DepositAmount)
	assert.Equal(t, []string{"deposit_exceeds_total"}, res.Warnings)
}

func TestUpdateBookingRejectsMoveOntoConfirmedDay(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	repo.bookings[2] = models.Booking{ID: 2, VenueID: 1, ClientID: 1, Status: "pending", StartDate: date("2025-04-10")}
	uc := NewUpdateBooking(repo, newDispatcher(t), "UTC")

	_, err := uc.Execute(context.Background(), UpdateBookingInput{BookingID: 2, StartDate: datePtr("2025-04-05")})
	assert.True(t, httperr.IsBusiness(err, "venue_unavailable"))
	assert.Equal(t, date("2025-04-10"), repo.bookings[2].StartDate)
}

func TestUpdateBookingRepricesWhenScheduleOrVenueChanges(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.venues[3] = models.Venue{ID: 3, Name: "Terrace", Capacity: 50, HourlyRate: 50, Availability: "available"}
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "pending", StartDate: date("2025-04-05"), TotalAmount: 2400, DepositAmount: 300}
	uc := NewUpdateBooking(repo, newDispatcher(t), "UTC")
	ctx := context.Background()

	_, err := uc.Execute(ctx, UpdateBookingInput{BookingID: 1, EndDate: datePtr("2025-04-06")})
	require.NoError(t, err)
	assert.Equal(t, 4800.0, repo.bookings[1].TotalAmount)
	assert.Equal(t, 300.0, repo.bookings[1].DepositAmount)

	venueID := uint(3)
	_, err = uc.Execute(ctx, UpdateBookingInput{BookingID: 1, VenueID: &venueID})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, repo.bookings[1].TotalAmount)

	_, err = uc.Execute(ctx, UpdateBookingInput{BookingID: 1, StartDate: datePtr("2025-04-04"), TotalAmount: f64(1000)})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, repo.bookings[1].TotalAmount)

	notes := "vegan menu"
	_, err = uc.Execute(ctx, UpdateBookingInput{BookingID: 1, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, repo.bookings[1].TotalAmount)
}

func TestUpdateBookingNotFound(t *testing.T) {
	uc := NewUpdateBooking(newFakeRepo(), newDispatcher(t), "UTC")

	_, err := uc.Execute(context.Background(), UpdateBookingInput{BookingID: 5})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// ======================================================
// CONFIRM / CANCEL
// ======================================================

func TestConfirmBooking(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, Status: "pending", StartDate: date("2025-04-05")}
	uc := NewConfirmBooking(repo, newDispatcher(t), "UTC")

	b, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, "confirmed", repo.bookings[1].Status)

	_, err = uc.Execute(context.Background(), 1, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmBookingConflictLeavesBookingPending(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	repo.bookings[2] = models.Booking{ID: 2, VenueID: 1, Status: "pending", StartDate: date("2025-04-05")}
	uc := NewConfirmBooking(repo, newDispatcher(t), "UTC")

	_, err := uc.Execute(context.Background(), 1, 2)
	assert.True(t, httperr.IsBusiness(err, "venue_unavailable"))
	assert.Equal(t, "pending", repo.bookings[2].Status)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	uc := NewCancelBooking(repo, newDispatcher(t), "UTC")

	b, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
	assert.NotNil(t, repo.bookings[1].CancelledAt)

	_, err = uc.Execute(context.Background(), 1, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// ======================================================
// CASCADE DELETE
// ======================================================

func TestDeleteBookingRemovesInvoicesThenBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = models.Booking{ID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	repo.bookings[2] = models.Booking{ID: 2, Status: "pending", StartDate: date("2025-04-06")}
	repo.invoices[10] = invoiceFor(1)
	repo.invoices[11] = invoiceFor(1)
	repo.invoices[12] = invoiceFor(1)
	repo.invoices[13] = invoiceFor(2)
	repo.invoices[14] = models.Invoice{Status: "draft"}
	uc := NewDeleteBooking(repo, newDispatcher(t))

	res, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []uint{10, 11, 12}, res.DeletedInvoiceIDs)
	assert.Equal(t, []string{
		"delete_invoice:10",
		"delete_invoice:11",
		"delete_invoice:12",
		"delete_booking:1",
		"commit",
	}, repo.calls)
	assert.NotContains(t, repo.bookings, uint(1))
	assert.Contains(t, repo.bookings, uint(2))
	assert.Len(t, repo.invoices, 2)
}

func TestDeleteBookingWithoutInvoices(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = models.Booking{ID: 1, Status: "pending", StartDate: date("2025-04-05")}
	uc := NewDeleteBooking(repo, newDispatcher(t))

	res, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Empty(t, res.DeletedInvoiceIDs)
	assert.Equal(t, []string{"delete_booking:1", "commit"}, repo.calls)
}

func TestDeleteBookingInvoiceFailureKeepsBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = models.Booking{ID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	repo.invoices[10] = invoiceFor(1)
	repo.invoices[11] = invoiceFor(1)
	repo.failDeleteInvoice[11] = errors.New("permission denied for table invoices")
	uc := NewDeleteBooking(repo, newDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, "permission denied for table invoices", err.Error())

	assert.Contains(t, repo.bookings, uint(1))
	assert.Len(t, repo.invoices, 2, "rollback restores the invoice deleted before the failure")
	assert.NotContains(t, repo.calls, "delete_booking:1")
	assert.Equal(t, "rollback", repo.calls[len(repo.calls)-1])
}

func TestDeleteBookingFailureOnBookingRollsBackInvoices(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = models.Booking{ID: 1, Status: "confirmed", StartDate: date("2025-04-05")}
	repo.invoices[10] = invoiceFor(1)
	repo.failDeleteBooking = errors.New("deadlock detected")
	uc := NewDeleteBooking(repo, newDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 1)
	require.Error(t, err)

	assert.Contains(t, repo.bookings, uint(1))
	assert.Contains(t, repo.invoices, uint(10))
}

func TestDeleteBookingNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteBooking(repo, newDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 99)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.Equal(t, []string{"rollback"}, repo.calls)
}

// ======================================================
// CALENDAR / LIST
// ======================================================

func TestCalendarDayAndRange(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, EventName: "Gala", Status: "confirmed", StartDate: date("2025-04-05")}
	repo.bookings[2] = models.Booking{ID: 2, VenueID: 1, ClientID: 1, Status: "pending", StartDate: date("2025-04-03"), EndDate: datePtr("2025-04-07")}
	repo.bookings[3] = models.Booking{ID: 3, VenueID: 2, ClientID: 1, Status: "pending", StartDate: date("2025-04-20")}
	uc := NewCalendar(repo, "UTC")
	ctx := context.Background()

	entries, err := uc.Execute(ctx, CalendarQuery{From: "2025-04-05"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Gala", entries[0].EventName)
	assert.Equal(t, "Grand Hall", entries[0].VenueName)
	assert.Equal(t, "Ana Souza", entries[0].ClientName)
	assert.Equal(t, "2025-04-03", entries[1].StartDay)
	assert.Equal(t, "2025-04-07", entries[1].EndDay)

	entries, err = uc.Execute(ctx, CalendarQuery{From: "2025-04-06"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(2), entries[0].ID)

	entries, err = uc.Execute(ctx, CalendarQuery{From: "2025-04-01", To: "2025-04-30", VenueID: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(3), entries[0].ID)

	_, err = uc.Execute(ctx, CalendarQuery{From: "2025-04-30", To: "2025-04-01"})
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(ctx, CalendarQuery{From: "yesterday"})
	assert.True(t, httperr.IsValidation(err))
}

// Bookings late in the evening of a UTC+9 day sit near the edge of the SQL
// prefilter window and must still land on their local day.
func TestCalendarKeepsLateEveningBookingsOutsideUTC(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "confirmed", StartDate: time.Date(2025, 4, 5, 23, 30, 0, 0, tokyo)}
	repo.bookings[2] = models.Booking{ID: 2, VenueID: 1, ClientID: 1, Status: "pending", StartDate: time.Date(2025, 4, 6, 0, 0, 0, 0, tokyo)}
	repo.bookings[3] = models.Booking{ID: 3, VenueID: 1, ClientID: 1, Status: "pending", StartDate: time.Date(2025, 4, 3, 12, 0, 0, 0, tokyo), EndDate: ptrTime(time.Date(2025, 4, 5, 0, 30, 0, 0, tokyo))}
	uc := NewCalendar(repo, "Asia/Tokyo")

	entries, err := uc.Execute(context.Background(), CalendarQuery{From: "2025-04-05"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(1), entries[0].ID)
	assert.Equal(t, "2025-04-05", entries[0].StartDay)
	assert.Equal(t, uint(3), entries[1].ID)
	assert.Equal(t, "2025-04-05", entries[1].EndDay)

	entries, err = uc.Execute(context.Background(), CalendarQuery{From: "2025-04-06"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(2), entries[0].ID)
}

func TestCreateBookingConflictsOnLocalDayOutsideUTC(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	repo := newFakeRepo()
	seed(repo)
	repo.bookings[1] = models.Booking{ID: 1, VenueID: 1, ClientID: 1, Status: "confirmed", StartDate: time.Date(2025, 4, 5, 23, 30, 0, 0, tokyo)}
	uc := NewCreateBooking(repo, newDispatcher(t), "Asia/Tokyo")
	ctx := context.Background()

	_, err = uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: time.Date(2025, 4, 5, 0, 0, 0, 0, tokyo)})
	assert.True(t, httperr.IsBusiness(err, "venue_unavailable"))

	res, err := uc.Execute(ctx, CreateBookingInput{ClientID: 1, VenueID: 1, StartDate: time.Date(2025, 4, 6, 0, 0, 0, 0, tokyo)})
	require.NoError(t, err)
	assert.Equal(t, 2400.0, res.Booking.TotalAmount)
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	uc := NewListBookings(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.ListFilter{Status: "archived"})
	assert.True(t, httperr.IsValidation(err))

	out, err := uc.Execute(context.Background(), domain.ListFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, out)
}
