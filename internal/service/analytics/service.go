package analytics

import (
	"context"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/service/analytics/models"
)

// Горизонт расчёта занятости по умолчанию
const occupancyHorizonDays = 30

// Service сервис аналитики хоста
type Service struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	calendarRepo CalendarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	calendarRepo CalendarRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		calendarRepo: calendarRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// HostSummary собирает сводку хоста: счётчики бронирований по статусам,
// выручку неотменённых бронирований, долю отмен и занятость календарей
// на ближайшие 30 дней
func (s *Service) HostSummary(ctx context.Context, hostID int64) (*models.HostSummary, error) {
	s.logger.Info("HostSummary: building summary for host=%d", hostID)

	properties, err := s.propertyRepo.GetByHostID(ctx, hostID)
	if err != nil {
		s.logger.Error("HostSummary: failed to get properties for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: HostSummary - failed to get properties: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByHostID(ctx, hostID)
	if err != nil {
		s.logger.Error("HostSummary: failed to get bookings for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: HostSummary - failed to get bookings: %v", ErrInternal, err)
	}

	summary := &models.HostSummary{
		Properties:       len(properties),
		OccupancyHorizon: occupancyHorizonDays,
	}

	for _, b := range bookings {
		summary.TotalBookings++
		switch b.Status {
		case domain.StatusPending:
			summary.PendingBookings++
		case domain.StatusConfirmed, domain.StatusModificationRequested:
			summary.ConfirmedBookings++
		case domain.StatusCancelled:
			summary.CancelledBookings++
		case domain.StatusCompleted:
			summary.CompletedBookings++
		}
		if b.Status != domain.StatusCancelled {
			summary.TotalRevenue += b.TotalPrice
		}
	}

	if summary.TotalBookings > 0 {
		summary.CancellationRate = float64(summary.CancelledBookings) / float64(summary.TotalBookings)
	}

	occupancy, err := s.occupancy(ctx, properties)
	if err != nil {
		return nil, err
	}
	summary.OccupancyRate = occupancy

	s.logger.Info("HostSummary: host=%d, properties=%d, bookings=%d, occupancy=%.2f",
		hostID, summary.Properties, summary.TotalBookings, summary.OccupancyRate)

	return summary, nil
}

// occupancy считает долю дней booked на горизонте по всем объявлениям
// Знаменатель - полный горизонт на каждое объявление: незаполненные дни
// календаря считаются свободными
func (s *Service) occupancy(ctx context.Context, properties []*domain.Property) (float64, error) {
	if len(properties) == 0 {
		return 0, nil
	}

	from := domain.DateOnly(s.timeProvider.Now())
	to := from.AddDate(0, 0, occupancyHorizonDays-1)

	booked := 0
	for _, p := range properties {
		days, err := s.calendarRepo.GetRange(ctx, p.ID, from, to)
		if err != nil {
			s.logger.Error("occupancy: failed to get calendar for property=%d: %v", p.ID, err)
			return 0, fmt.Errorf("%w: occupancy - failed to get calendar: %v", ErrInternal, err)
		}
		for _, day := range days {
			if day.Status == domain.DateBooked {
				booked++
			}
		}
	}

	total := len(properties) * occupancyHorizonDays
	return float64(booked) / float64(total), nil
}
