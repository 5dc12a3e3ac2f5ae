package approve_modification

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
	booking      *domain.Booking
	modification *domain.ModificationRequest

	resolvedStatus domain.ModificationStatus
	resolvedCalled bool
	appliedCheckIn time.Time
	appliedGuests  int
	appliedCalled  bool
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) GetModificationByID(context.Context, int64, int64) (*domain.ModificationRequest, error) {
	return f.modification, nil
}

func (f *fakeBookingRepo) ResolveModification(_ context.Context, _ int64, status domain.ModificationStatus, _ *string, _ time.Time) error {
	f.resolvedCalled = true
	f.resolvedStatus = status
	return nil
}

func (f *fakeBookingRepo) ApplyModification(_ context.Context, _ int64, checkIn, _ time.Time, guests int) error {
	f.appliedCalled = true
	f.appliedCheckIn = checkIn
	f.appliedGuests = guests
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, nil
}

type fakeCalendarRepo struct {
	days []domain.CalendarDay

	releasedCalled bool
	markedCalled   bool
	markedStart    time.Time
	markedEnd      time.Time
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

func (f *fakeCalendarRepo) ReleaseRange(context.Context, int64, time.Time, time.Time) error {
	f.releasedCalled = true
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

var (
	oldCheckIn  = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	oldCheckOut = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	newCheckIn  = time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)
	newCheckOut = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:         42,
		PropertyID: 10,
		GuestID:    100,
		CheckIn:    oldCheckIn,
		CheckOut:   oldCheckOut,
		Guests:     2,
		TotalPrice: 300,
		Status:     domain.StatusModificationRequested,
	}
}

func pendingModification() *domain.ModificationRequest {
	return &domain.ModificationRequest{
		ID:                7,
		BookingID:         42,
		RequestedCheckIn:  newCheckIn,
		RequestedCheckOut: newCheckOut,
		RequestedGuests:   3,
		Status:            domain.ModificationPending,
	}
}

// calendarFor строит календарь, где старый диапазон занят самим
// бронированием, а остальные дни свободны
func calendarFor(start, end time.Time) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0)
	owned := make(map[string]bool)
	for _, d := range domain.DaysInRange(oldCheckIn, oldCheckOut) {
		owned[d.Format(domain.DateFormat)] = true
	}
	for _, d := range domain.DaysInRange(start, end) {
		status := domain.DateAvailable
		if owned[d.Format(domain.DateFormat)] {
			status = domain.DateBooked
		}
		days = append(days, domain.CalendarDay{PropertyID: 10, Day: d, Status: status})
	}
	return days
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	propertyRepo *fakePropertyRepo,
	calendarRepo *fakeCalendarRepo,
	publisher *fakePublisher,
) *UseCase {
	uc := NewUseCase(bookingRepo, propertyRepo, calendarRepo, publisher, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: pendingModification()}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}
	calendarRepo := &fakeCalendarRepo{days: calendarFor(newCheckIn, newCheckOut)}
	publisher := &fakePublisher{}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, publisher)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 1})

	require.NoError(t, err)
	assert.Equal(t, newCheckIn, resp.CheckIn)
	assert.Equal(t, newCheckOut, resp.CheckOut)
	assert.Equal(t, 3, resp.Guests)
	// Цена фиксируется при создании бронирования
	assert.Equal(t, float64(300), resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	assert.True(t, calendarRepo.releasedCalled)
	assert.True(t, calendarRepo.markedCalled)
	assert.Equal(t, newCheckIn, calendarRepo.markedStart)
	assert.Equal(t, newCheckOut, calendarRepo.markedEnd)

	assert.True(t, bookingRepo.resolvedCalled)
	assert.Equal(t, domain.ModificationApproved, bookingRepo.resolvedStatus)
	assert.True(t, bookingRepo.appliedCalled)
	assert.Equal(t, newCheckIn, bookingRepo.appliedCheckIn)
	assert.Equal(t, 3, bookingRepo.appliedGuests)

	require.True(t, publisher.called)
	assert.Equal(t, events.BookingModificationApproved, publisher.eventType)
}

func TestUseCase_Execute_OwnBookedDaysAreAcceptable(t *testing.T) {
	// Новый диапазон целиком перекрывает старый: все дни booked,
	// но заняты этим же бронированием
	mod := pendingModification()
	mod.RequestedCheckIn = oldCheckIn
	mod.RequestedCheckOut = oldCheckOut

	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: mod}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}
	calendarRepo := &fakeCalendarRepo{days: calendarFor(oldCheckIn, oldCheckOut)}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 1})

	require.NoError(t, err)
}

func TestUseCase_Execute_ForeignBookedDayConflicts(t *testing.T) {
	days := calendarFor(newCheckIn, newCheckOut)
	// Последний день нового диапазона занят чужим бронированием
	days[len(days)-1].Status = domain.DateBooked

	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: pendingModification()}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}
	calendarRepo := &fakeCalendarRepo{days: days}
	publisher := &fakePublisher{}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, publisher)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 1})

	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.False(t, calendarRepo.releasedCalled)
	assert.False(t, bookingRepo.appliedCalled)
	assert.False(t, publisher.called)
}

func TestUseCase_Execute_BlockedDayConflicts(t *testing.T) {
	days := calendarFor(newCheckIn, newCheckOut)
	days[len(days)-1].Status = domain.DateBlocked

	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: pendingModification()}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}
	calendarRepo := &fakeCalendarRepo{days: days}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 1})

	assert.ErrorIs(t, err, ErrDatesUnavailable)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: pendingModification()}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}

	uc := newTestUseCase(bookingRepo, propertyRepo, &fakeCalendarRepo{}, &fakePublisher{})

	// Чужой хост
	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 999})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_AlreadyResolved(t *testing.T) {
	mod := pendingModification()
	mod.Status = domain.ModificationDenied

	bookingRepo := &fakeBookingRepo{booking: testBooking(), modification: mod}
	propertyRepo := &fakePropertyRepo{property: &domain.Property{ID: 10, HostID: 1, MaxGuests: 4}}
	calendarRepo := &fakeCalendarRepo{}

	uc := newTestUseCase(bookingRepo, propertyRepo, calendarRepo, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, ModificationID: 7, HostID: 1})

	assert.ErrorIs(t, err, ErrNotPending)
	assert.False(t, calendarRepo.markedCalled)
}
