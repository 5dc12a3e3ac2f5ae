package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// Service сервис календаря доступности
// Отвечает за инициализацию календаря, месячные выборки и ручные
// переключения статусов дат хостом
type Service struct {
	calendarRepo CalendarRepository
	propertyRepo PropertyRepository
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
// horizonDays - глубина автозаполнения календаря статусом available
func NewService(
	calendarRepo CalendarRepository,
	propertyRepo PropertyRepository,
	horizonDays int,
	logger Logger,
) *Service {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultCalendarHorizonDays
	}
	return &Service{
		calendarRepo: calendarRepo,
		propertyRepo: propertyRepo,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Initialize инициализирует календарь объявления, если он ещё пуст
// Идемпотентна: повторный вызов ничего не меняет
func (s *Service) Initialize(ctx context.Context, propertyID int64) error {
	has, err := s.calendarRepo.HasCalendar(ctx, propertyID)
	if err != nil {
		s.logger.Error("Initialize: repository error for property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: Initialize - repository error: %v", ErrInternal, err)
	}
	if has {
		return nil
	}

	today := domain.DateOnly(s.timeProvider.Now())
	if err := s.calendarRepo.Seed(ctx, propertyID, today, s.horizonDays); err != nil {
		s.logger.Error("Initialize: failed to seed calendar for property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: Initialize - failed to seed calendar: %v", ErrInternal, err)
	}

	s.logger.Info("Initialize: seeded calendar for property=%d, horizon=%d days", propertyID, s.horizonDays)
	return nil
}

// GetMonth возвращает статусы дат объявления за месяц
// Возвращаются только записанные дни: отсутствующие даты трактуются
// вызывающей стороной как "не задано" (хост) или "недоступно" (гость)
// Календарь лениво инициализируется при первом обращении
func (s *Service) GetMonth(ctx context.Context, propertyID int64, year int, month time.Month) (map[string]domain.DateStatus, error) {
	s.logger.Info("GetMonth: property=%d, year=%d, month=%d", propertyID, year, int(month))

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetMonth: property=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetMonth: failed to get property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetMonth - failed to get property: %v", ErrInternal, err)
	}

	if err := s.Initialize(ctx, propertyID); err != nil {
		return nil, err
	}

	monthStart, monthEnd := domain.MonthBounds(year, month)

	days, err := s.calendarRepo.GetMonth(ctx, propertyID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("GetMonth: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetMonth - repository error: %v", ErrInternal, err)
	}

	result := make(map[string]domain.DateStatus, len(days))
	for _, day := range days {
		result[day.Day.Format(domain.DateFormat)] = day.Status
	}

	return result, nil
}

// UpdateDate выставляет статус одной даты (ручное переключение хостом)
// Нераспознанный статус отклоняется до какой-либо записи
func (s *Service) UpdateDate(ctx context.Context, propertyID int64, day time.Time, status domain.DateStatus) error {
	s.logger.Info("UpdateDate: property=%d, day=%s, status=%s",
		propertyID, day.Format(domain.DateFormat), status)

	if !domain.IsValidDateStatus(status) {
		s.logger.Warn("UpdateDate: invalid status=%q for property=%d", status, propertyID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("UpdateDate: property=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("UpdateDate: failed to get property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: UpdateDate - failed to get property: %v", ErrInternal, err)
	}

	if err := s.calendarRepo.SetDate(ctx, propertyID, day, status); err != nil {
		s.logger.Error("UpdateDate: repository error for property=%d: %v", propertyID, err)
		return fmt.Errorf("%w: UpdateDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// IsAvailable проверяет, что дата имеет статус строго available
// Отсутствие записи означает недоступность
func (s *Service) IsAvailable(ctx context.Context, propertyID int64, day time.Time) (bool, error) {
	cd, err := s.calendarRepo.GetDate(ctx, propertyID, day)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - repository error: %v", ErrInternal, err)
	}
	if cd == nil {
		return false, nil
	}
	return cd.Status == domain.DateAvailable, nil
}
