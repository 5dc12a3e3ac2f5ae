package request_modification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
)

type fakeBookingRepo struct {
	booking *domain.Booking

	upserted     *domain.ModificationRequest
	statusSet    domain.BookingStatus
	statusCalled bool
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus, _ ...domain.BookingStatus) error {
	f.statusCalled = true
	f.statusSet = status
	return nil
}

func (f *fakeBookingRepo) UpsertModification(_ context.Context, mod *domain.ModificationRequest) (*domain.ModificationRequest, error) {
	stored := *mod
	stored.ID = 7
	f.upserted = &stored
	return &stored, nil
}

type fakePropertyRepo struct {
	property *domain.Property
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, nil
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

func newTestUseCase(bookingRepo *fakeBookingRepo, propertyRepo *fakePropertyRepo, publisher *fakePublisher, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, propertyRepo, publisher, fakeTxManager{}, domain.DefaultPolicy(), nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func testBooking(checkIn time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: 10,
		GuestID:    100,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		TotalPrice: 300,
		Status:     status,
	}
}

func validRequest() *Request {
	return &Request{
		BookingID: 42,
		GuestID:   100,
		CheckIn:   time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC),
		Guests:    3,
		Reason:    "Need one more night",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{booking: testBooking(now.Add(100*time.Hour), domain.StatusConfirmed)}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, MaxGuests: 4}}
	publisher := &fakePublisher{}

	uc := newTestUseCase(bookingRepo, propertyRepo, publisher, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ModificationID)
	assert.Equal(t, string(domain.ModificationPending), resp.Status)
	assert.Equal(t, string(domain.StatusModificationRequested), resp.BookingStatus)

	require.NotNil(t, bookingRepo.upserted)
	assert.Equal(t, 3, bookingRepo.upserted.RequestedGuests)

	assert.True(t, bookingRepo.statusCalled)
	assert.Equal(t, domain.StatusModificationRequested, bookingRepo.statusSet)

	require.True(t, publisher.called)
	assert.Equal(t, events.BookingModificationRequested, publisher.eventType)
}

func TestUseCase_Execute_RepeatRequestKeepsStatus(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	// Бронирование уже ожидает решения по предыдущему запросу
	bookingRepo := &fakeBookingRepo{booking: testBooking(now.Add(100*time.Hour), domain.StatusModificationRequested)}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, MaxGuests: 4}}

	uc := newTestUseCase(bookingRepo, propertyRepo, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Новый запрос замещает старый, статус бронирования не трогаем
	require.NotNil(t, bookingRepo.upserted)
	assert.False(t, bookingRepo.statusCalled)
}

func TestUseCase_Execute_NotAllowed(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking *domain.Booking
	}{
		{"too little notice", testBooking(now.Add(70*time.Hour), domain.StatusConfirmed)},
		{"cancelled booking", testBooking(now.Add(100*time.Hour), domain.StatusCancelled)},
		{"completed booking", testBooking(now.Add(100*time.Hour), domain.StatusCompleted)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &fakeBookingRepo{booking: tt.booking}
			propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, MaxGuests: 4}}
			publisher := &fakePublisher{}

			uc := newTestUseCase(bookingRepo, propertyRepo, publisher, now)

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrModificationNotAllowed)
			assert.Nil(t, bookingRepo.upserted)
			assert.False(t, publisher.called)
		})
	}
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{booking: testBooking(now.Add(100*time.Hour), domain.StatusConfirmed)}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, MaxGuests: 4}}

	uc := newTestUseCase(bookingRepo, propertyRepo, &fakePublisher{}, now)

	req := validRequest()
	req.GuestID = 999

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_TooManyGuests(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{booking: testBooking(now.Add(100*time.Hour), domain.StatusConfirmed)}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, MaxGuests: 2}}

	uc := newTestUseCase(bookingRepo, propertyRepo, &fakePublisher{}, now)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePropertyRepo{}, &fakePublisher{}, now)

	t.Run("invalid range", func(t *testing.T) {
		req := validRequest()
		req.CheckOut = req.CheckIn

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("reason too long", func(t *testing.T) {
		req := validRequest()
		req.Reason = strings.Repeat("x", domain.MaxModificationReasonLength+1)

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
