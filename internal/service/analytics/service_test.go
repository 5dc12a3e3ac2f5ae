package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByHostID(context.Context, int64) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakePropertyRepo struct {
	properties []*domain.Property
}

func (f *fakePropertyRepo) GetByHostID(context.Context, int64) ([]*domain.Property, error) {
	return f.properties, nil
}

type fakeCalendarRepo struct {
	// daysByProperty записанные дни календаря на объявление
	daysByProperty map[int64][]domain.CalendarDay
}

func (f *fakeCalendarRepo) GetRange(_ context.Context, propertyID int64, _, _ time.Time) ([]domain.CalendarDay, error) {
	return f.daysByProperty[propertyID], nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookingWithStatus(status domain.BookingStatus, price float64) *domain.Booking {
	return &domain.Booking{
		PropertyID: 10,
		GuestID:    100,
		TotalPrice: price,
		Status:     status,
	}
}

func bookedDays(propertyID int64, from time.Time, count int) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, domain.CalendarDay{
			PropertyID: propertyID,
			Day:        from.AddDate(0, 0, i),
			Status:     domain.DateBooked,
		})
	}
	return days
}

func TestService_HostSummary(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	today := domain.DateOnly(now)

	propertyRepo := &fakePropertyRepo{properties: []*domain.Property{
		{ID: 10, HostID: 1},
		{ID: 11, HostID: 1},
	}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingWithStatus(domain.StatusPending, 100),
		bookingWithStatus(domain.StatusConfirmed, 200),
		bookingWithStatus(domain.StatusModificationRequested, 300),
		bookingWithStatus(domain.StatusCancelled, 400),
		bookingWithStatus(domain.StatusCompleted, 500),
	}}
	calendarRepo := &fakeCalendarRepo{daysByProperty: map[int64][]domain.CalendarDay{
		// 12 занятых дней из 60 возможных (2 объявления x 30 дней)
		10: bookedDays(10, today, 9),
		11: bookedDays(11, today, 3),
	}}

	svc := NewService(bookingRepo, propertyRepo, calendarRepo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}

	summary, err := svc.HostSummary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Properties)
	assert.Equal(t, 5, summary.TotalBookings)
	assert.Equal(t, 1, summary.PendingBookings)
	// modification_requested считается подтверждённым: даты заняты
	assert.Equal(t, 2, summary.ConfirmedBookings)
	assert.Equal(t, 1, summary.CancelledBookings)
	assert.Equal(t, 1, summary.CompletedBookings)

	// Выручка без отменённого бронирования
	assert.Equal(t, float64(1100), summary.TotalRevenue)
	assert.InDelta(t, 0.2, summary.CancellationRate, 0.0001)

	assert.Equal(t, 30, summary.OccupancyHorizon)
	assert.InDelta(t, 0.2, summary.OccupancyRate, 0.0001)
}

func TestService_HostSummary_NoProperties(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakePropertyRepo{}, &fakeCalendarRepo{}, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}

	summary, err := svc.HostSummary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Properties)
	assert.Equal(t, 0, summary.TotalBookings)
	assert.Equal(t, float64(0), summary.CancellationRate)
	assert.Equal(t, float64(0), summary.OccupancyRate)
}

func TestService_HostSummary_UnwrittenDaysCountAsFree(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	propertyRepo := &fakePropertyRepo{properties: []*domain.Property{{ID: 10, HostID: 1}}}
	// Календарь пуст: занятость нулевая, а не ошибка
	calendarRepo := &fakeCalendarRepo{daysByProperty: map[int64][]domain.CalendarDay{}}

	svc := NewService(&fakeBookingRepo{}, propertyRepo, calendarRepo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}

	summary, err := svc.HostSummary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, float64(0), summary.OccupancyRate)
}
