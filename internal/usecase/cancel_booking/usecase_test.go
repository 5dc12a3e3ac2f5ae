package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepoErrs "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	cancelledID     int64
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string, _ time.Time) error {
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fakeCalendarRepo struct {
	releasedStart time.Time
	releasedEnd   time.Time
	released      bool
}

func (f *fakeCalendarRepo) ReleaseRange(_ context.Context, _ int64, start, end time.Time) error {
	f.released = true
	f.releasedStart = start
	f.releasedEnd = end
	return nil
}

type fakePublisher struct {
	eventType events.EventType
	called    bool
}

func (f *fakePublisher) Publish(eventType events.EventType, _, _ int64, _ map[string]interface{}) {
	f.called = true
	f.eventType = eventType
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

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	calendarRepo *fakeCalendarRepo,
	publisher *fakePublisher,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, calendarRepo, publisher, fakeTxManager{}, domain.DefaultPolicy(), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func confirmedBooking(checkIn time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: 10,
		GuestID:    100,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		TotalPrice: 300,
		Status:     domain.StatusConfirmed,
	}
}

func TestUseCase_Execute_RefundTiers(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		hoursBefore time.Duration
		wantPercent int
		wantAmount  float64
		wantReason  string
	}{
		{"full refund with 50h notice", 50 * time.Hour, 100, 300, domain.ReasonFullRefund},
		{"partial refund with 30h notice", 30 * time.Hour, 50, 150, domain.ReasonPartialRefund},
		{"no refund with 10h notice", 10 * time.Hour, 0, 0, domain.ReasonNoRefund},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &fakeBookingRepo{booking: confirmedBooking(now.Add(tt.hoursBefore))}
			calendarRepo := &fakeCalendarRepo{}
			publisher := &fakePublisher{}

			uc := newTestUseCase(bookingRepo, calendarRepo, publisher, now)

			resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, GuestID: 100})

			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusCancelled), resp.Status)
			assert.Equal(t, tt.wantPercent, resp.RefundPercent)
			assert.Equal(t, tt.wantAmount, resp.RefundAmount)
			assert.Equal(t, tt.wantReason, resp.Reason)

			assert.Equal(t, int64(42), bookingRepo.cancelledID)
			assert.Equal(t, tt.wantReason, bookingRepo.cancelledReason)

			assert.True(t, calendarRepo.released)
			assert.Equal(t, bookingRepo.booking.CheckIn, calendarRepo.releasedStart)
			assert.Equal(t, bookingRepo.booking.CheckOut, calendarRepo.releasedEnd)

			require.True(t, publisher.called)
			assert.Equal(t, events.BookingCancelled, publisher.eventType)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{getErr: bookingRepoErrs.ErrBookingNotFound}

	uc := newTestUseCase(bookingRepo, &fakeCalendarRepo{}, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, GuestID: 100})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{booking: confirmedBooking(now.Add(100 * time.Hour))}
	publisher := &fakePublisher{}

	uc := newTestUseCase(bookingRepo, &fakeCalendarRepo{}, publisher, now)

	// Чужой гость
	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, GuestID: 999})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, publisher.called)
}

func TestUseCase_Execute_TerminalBooking(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range domain.TerminalStatuses {
		t.Run(string(status), func(t *testing.T) {
			booking := confirmedBooking(now.Add(100 * time.Hour))
			booking.Status = status
			bookingRepo := &fakeBookingRepo{booking: booking}
			calendarRepo := &fakeCalendarRepo{}

			uc := newTestUseCase(bookingRepo, calendarRepo, &fakePublisher{}, now)

			_, err := uc.Execute(context.Background(), &Request{BookingID: 42, GuestID: 100})

			assert.ErrorIs(t, err, ErrAlreadyFinished)
			assert.False(t, calendarRepo.released)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCalendarRepo{}, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, GuestID: 100})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 42, GuestID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
