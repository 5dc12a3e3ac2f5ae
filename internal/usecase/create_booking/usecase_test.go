package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = 42
	f.created = &stored
	return &stored, nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakeCalendarRepo struct {
	hasCalendar bool
	days        []domain.CalendarDay

	seeded       bool
	markedStart  time.Time
	markedEnd    time.Time
	markedCalled bool
}

func (f *fakeCalendarRepo) HasCalendar(context.Context, int64) (bool, error) {
	return f.hasCalendar, nil
}

func (f *fakeCalendarRepo) Seed(_ context.Context, _ int64, _ time.Time, _ int) error {
	f.seeded = true
	return nil
}

func (f *fakeCalendarRepo) GetRange(context.Context, int64, time.Time, time.Time) ([]domain.CalendarDay, error) {
	return f.days, nil
}

func (f *fakeCalendarRepo) MarkRangeBooked(_ context.Context, _ int64, start, end time.Time) error {
	f.markedCalled = true
	f.markedStart = start
	f.markedEnd = end
	return nil
}

type fakePublisher struct {
	eventType events.EventType
	bookingID int64
	called    bool
}

func (f *fakePublisher) Publish(eventType events.EventType, bookingID, _ int64, _ map[string]interface{}) {
	f.called = true
	f.eventType = eventType
	f.bookingID = bookingID
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func availableDays(propertyID int64, start, end time.Time) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0)
	for _, day := range domain.DaysInRange(start, end) {
		days = append(days, domain.CalendarDay{
			PropertyID: propertyID,
			Day:        day,
			Status:     domain.DateAvailable,
		})
	}
	return days
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	propertyRepo *fakePropertyRepo,
	calendarRepo *fakeCalendarRepo,
	publisher *fakePublisher,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, propertyRepo, calendarRepo, publisher, fakeTxManager{}, 365, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	bookingRepo := &fakeBookingRepo{}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		HostID:        1,
		PricePerNight: 100,
		MaxGuests:     4,
	}}
	calendarRepo := &fakeCalendarRepo{
		hasCalendar: true,
		days:        availableDays(10, checkIn, checkOut),
	}
	publisher := &fakePublisher{}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, publisher, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 10,
		GuestID:    100,
		GuestName:  "Alice",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 3, resp.Nights)
	// 3 ночи по 100
	assert.Equal(t, float64(300), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	assert.True(t, calendarRepo.markedCalled)
	assert.Equal(t, checkIn, calendarRepo.markedStart)
	assert.Equal(t, checkOut, calendarRepo.markedEnd)

	require.True(t, publisher.called)
	assert.Equal(t, events.BookingCreated, publisher.eventType)
	assert.Equal(t, int64(42), publisher.bookingID)
}

func TestUseCase_Execute_InstantBookConfirms(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	bookingRepo := &fakeBookingRepo{}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		PricePerNight: 100,
		MaxGuests:     4,
		InstantBook:   true,
	}}
	calendarRepo := &fakeCalendarRepo{
		hasCalendar: true,
		days:        availableDays(10, checkIn, checkOut),
	}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, &fakePublisher{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: 10,
		GuestID:    100,
		GuestName:  "Alice",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestUseCase_Execute_SeedsCalendarLazily(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		PricePerNight: 100,
		MaxGuests:     4,
	}}
	calendarRepo := &fakeCalendarRepo{
		hasCalendar: false,
		days:        availableDays(10, checkIn, checkOut),
	}

	uc := newTestUseCase(&fakeBookingRepo{}, propertyRepo, calendarRepo, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 10,
		GuestID:    100,
		GuestName:  "Alice",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
	})

	require.NoError(t, err)
	assert.True(t, calendarRepo.seeded)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		PricePerNight: 100,
		MaxGuests:     4,
	}}

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			"checkout not after checkin",
			&Request{PropertyID: 10, GuestID: 100, GuestName: "Alice", Guests: 2,
				CheckIn:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)},
			ErrInvalidRange,
		},
		{
			"checkin in the past",
			&Request{PropertyID: 10, GuestID: 100, GuestName: "Alice", Guests: 2,
				CheckIn:  time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC)},
			ErrDateInPast,
		},
		{
			"missing guest name",
			&Request{PropertyID: 10, GuestID: 100, Guests: 2,
				CheckIn:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)},
			ErrInvalidInput,
		},
		{
			"guests above hard upper bound",
			&Request{PropertyID: 10, GuestID: 100, GuestName: "Alice", Guests: 51,
				CheckIn:  time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)},
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, propertyRepo, &fakeCalendarRepo{}, &fakePublisher{}, now)

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_TooManyGuestsForProperty(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		PricePerNight: 100,
		MaxGuests:     4,
	}}

	uc := newTestUseCase(&fakeBookingRepo{}, propertyRepo, &fakeCalendarRepo{}, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		PropertyID: 10,
		GuestID:    100,
		GuestName:  "Alice",
		CheckIn:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		Guests:     5,
	})

	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestUseCase_Execute_DatesUnavailable(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	propertyRepo := &fakePropertyRepo{property: &domain.Property{
		ID:            10,
		PricePerNight: 100,
		MaxGuests:     4,
	}}

	days := availableDays(10, checkIn, checkOut)
	// Один день диапазона занят
	days[1].Status = domain.DateBooked

	tests := []struct {
		name string
		days []domain.CalendarDay
	}{
		{"one day booked", days},
		{"day missing from calendar", days[:2]},
		{"empty calendar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendarRepo := &fakeCalendarRepo{hasCalendar: true, days: tt.days}
			publisher := &fakePublisher{}
			uc := newTestUseCase(&fakeBookingRepo{}, propertyRepo, calendarRepo, publisher, now)

			_, err := uc.Execute(context.Background(), &Request{
				PropertyID: 10,
				GuestID:    100,
				GuestName:  "Alice",
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Guests:     2,
			})

			assert.ErrorIs(t, err, ErrDatesUnavailable)
			assert.False(t, calendarRepo.markedCalled)
			assert.False(t, publisher.called)
		})
	}
}
