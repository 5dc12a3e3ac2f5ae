package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	propertyRepoErrs "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

type fakeCalendarRepo struct {
	hasCalendar bool
	monthDays   []domain.CalendarDay
	date        *domain.CalendarDay

	seedCalls int
	seedFrom  time.Time
	seedDays  int
	setDay    time.Time
	setStatus domain.DateStatus
	setCalled bool
}

func (f *fakeCalendarRepo) HasCalendar(context.Context, int64) (bool, error) {
	return f.hasCalendar, nil
}

func (f *fakeCalendarRepo) Seed(_ context.Context, _ int64, from time.Time, horizonDays int) error {
	f.seedCalls++
	f.seedFrom = from
	f.seedDays = horizonDays
	return nil
}

func (f *fakeCalendarRepo) GetMonth(context.Context, int64, time.Time, time.Time) ([]domain.CalendarDay, error) {
	return f.monthDays, nil
}

func (f *fakeCalendarRepo) GetDate(context.Context, int64, time.Time) (*domain.CalendarDay, error) {
	return f.date, nil
}

func (f *fakeCalendarRepo) SetDate(_ context.Context, _ int64, day time.Time, status domain.DateStatus) error {
	f.setCalled = true
	f.setDay = day
	f.setStatus = status
	return nil
}

type fakePropertyRepo struct {
	property *domain.Property
	err      error
}

func (f *fakePropertyRepo) GetByID(context.Context, int64) (*domain.Property, error) {
	return f.property, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(calendarRepo *fakeCalendarRepo, propertyRepo *fakePropertyRepo, now time.Time) *Service {
	svc := NewService(calendarRepo, propertyRepo, 365, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func TestService_Initialize_SeedsOnce(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	calendarRepo := &fakeCalendarRepo{hasCalendar: false}
	svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

	require.NoError(t, svc.Initialize(context.Background(), 10))

	assert.Equal(t, 1, calendarRepo.seedCalls)
	assert.Equal(t, 365, calendarRepo.seedDays)
	// Засев начинается с сегодняшней даты, не с момента времени
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), calendarRepo.seedFrom)
}

func TestService_Initialize_Idempotent(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	calendarRepo := &fakeCalendarRepo{hasCalendar: true}
	svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

	require.NoError(t, svc.Initialize(context.Background(), 10))

	assert.Equal(t, 0, calendarRepo.seedCalls)
}

func TestService_GetMonth(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	calendarRepo := &fakeCalendarRepo{
		hasCalendar: true,
		monthDays: []domain.CalendarDay{
			{PropertyID: 10, Day: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Status: domain.DateAvailable},
			{PropertyID: 10, Day: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), Status: domain.DateBooked},
		},
	}
	svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

	got, err := svc.GetMonth(context.Background(), 10, 2025, time.October)

	require.NoError(t, err)
	// Незаписанные дни не возвращаются
	assert.Len(t, got, 2)
	assert.Equal(t, domain.DateAvailable, got["2025-10-15"])
	assert.Equal(t, domain.DateBooked, got["2025-10-16"])
}

func TestService_GetMonth_PropertyNotFound(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	svc := newTestService(&fakeCalendarRepo{}, &fakePropertyRepo{err: propertyRepoErrs.ErrPropertyNotFound}, now)

	_, err := svc.GetMonth(context.Background(), 10, 2025, time.October)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_UpdateDate(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	calendarRepo := &fakeCalendarRepo{hasCalendar: true}
	svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

	day := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.UpdateDate(context.Background(), 10, day, domain.DateBlocked))

	assert.True(t, calendarRepo.setCalled)
	assert.Equal(t, domain.DateBlocked, calendarRepo.setStatus)
}

func TestService_UpdateDate_InvalidStatus(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	calendarRepo := &fakeCalendarRepo{hasCalendar: true}
	svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

	day := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	err := svc.UpdateDate(context.Background(), 10, day, "unavailable")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	// Статус проверяется до какой-либо записи
	assert.False(t, calendarRepo.setCalled)
}

func TestService_IsAvailable(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	day := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date *domain.CalendarDay
		want bool
	}{
		{"available day", &domain.CalendarDay{Day: day, Status: domain.DateAvailable}, true},
		{"blocked day", &domain.CalendarDay{Day: day, Status: domain.DateBlocked}, false},
		{"booked day", &domain.CalendarDay{Day: day, Status: domain.DateBooked}, false},
		{"missing day means unavailable", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calendarRepo := &fakeCalendarRepo{date: tt.date}
			svc := newTestService(calendarRepo, &fakePropertyRepo{property: &domain.Property{ID: 10}}, now)

			got, err := svc.IsAvailable(context.Background(), 10, day)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
