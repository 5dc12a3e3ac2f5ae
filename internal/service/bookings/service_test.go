package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepoErrs "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepoErrs "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	guestBookings []*domain.Booking
	statusErr     error
	statusSet     domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByGuestID(context.Context, int64, *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.guestBookings, nil
}

func (f *fakeBookingRepo) GetByPropertyID(context.Context, int64) ([]*domain.Booking, error) {
	return f.guestBookings, nil
}

func (f *fakeBookingRepo) GetByHostID(context.Context, int64) ([]*domain.Booking, error) {
	return f.guestBookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, _ ...domain.BookingStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusSet = status
	return nil
}

func (f *fakeBookingRepo) Delete(context.Context, int64) error {
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, f.err
}

type fakePublisher struct {
	eventType events.EventType
	called    bool
}

func (f *fakePublisher) Publish(eventType events.EventType, _, _ int64, _ map[string]interface{}) {
	f.called = true
	f.eventType = eventType
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(bookingRepo *fakeBookingRepo, propertyRepo *fakePropertyRepo, publisher *fakePublisher, now time.Time) *Service {
	svc := NewService(bookingRepo, propertyRepo, publisher, domain.DefaultPolicy(), nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: 10,
		GuestID:    100,
		CheckIn:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		TotalPrice: 300,
		Status:     status,
	}
}

func TestService_GetByID_Access(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}

	svc := newTestService(bookingRepo, propertyRepo, &fakePublisher{}, now)

	t.Run("guest has access", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 42, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("host has access", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 42, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("stranger has no access", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 42, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetByID_NotFound(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{getErr: bookingRepoErrs.ErrBookingNotFound}

	svc := newTestService(bookingRepo, &fakePropertyRepo{}, &fakePublisher{}, now)

	_, err := svc.GetByID(context.Background(), 42, 100)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetGuestBookings_StatusValidation(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, &fakePropertyRepo{}, &fakePublisher{}, now)

	valid := domain.StatusConfirmed
	_, err := svc.GetGuestBookings(context.Background(), domain.GuestBookingsFilter{GuestID: 100, Status: &valid})
	require.NoError(t, err)

	unknown := domain.BookingStatus("archived")
	_, err = svc.GetGuestBookings(context.Background(), domain.GuestBookingsFilter{GuestID: 100, Status: &unknown})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetPropertyBookings(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("host only", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{guestBookings: []*domain.Booking{testBooking(domain.StatusConfirmed)}}
		propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}
		svc := newTestService(bookingRepo, propertyRepo, &fakePublisher{}, now)

		list, err := svc.GetPropertyBookings(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = svc.GetPropertyBookings(context.Background(), 10, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("property not found", func(t *testing.T) {
		propertyRepo := &fakePropertyRepo{err: propertyRepoErrs.ErrPropertyNotFound}
		svc := newTestService(&fakeBookingRepo{}, propertyRepo, &fakePublisher{}, now)

		_, err := svc.GetPropertyBookings(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}

func TestService_CanCancel(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	booking := testBooking(domain.StatusConfirmed)
	booking.CheckIn = now.Add(50 * time.Hour)
	bookingRepo := &fakeBookingRepo{booking: booking}

	svc := newTestService(bookingRepo, &fakePropertyRepo{}, &fakePublisher{}, now)

	assessment, err := svc.CanCancel(context.Background(), 42, 100)

	require.NoError(t, err)
	assert.True(t, assessment.CanCancel)
	assert.Equal(t, 100, assessment.RefundPercent)

	// Оценка доступна только гостю
	_, err = svc.CanCancel(context.Background(), 42, 999)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Approve(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending becomes confirmed", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}
		publisher := &fakePublisher{}

		svc := newTestService(bookingRepo, propertyRepo, publisher, now)

		got, err := svc.Approve(context.Background(), 42, 1)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, got.Status)
		assert.Equal(t, domain.StatusConfirmed, bookingRepo.statusSet)

		require.True(t, publisher.called)
		assert.Equal(t, events.BookingStatusChanged, publisher.eventType)
	})

	t.Run("only host can approve", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{booking: testBooking(domain.StatusPending)}
		propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}

		svc := newTestService(bookingRepo, propertyRepo, &fakePublisher{}, now)

		_, err := svc.Approve(context.Background(), 42, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("only pending can be approved", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
		propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1}}
		publisher := &fakePublisher{}

		svc := newTestService(bookingRepo, propertyRepo, publisher, now)

		_, err := svc.Approve(context.Background(), 42, 1)
		assert.ErrorIs(t, err, ErrStatusConflict)
		assert.False(t, publisher.called)
	})
}
