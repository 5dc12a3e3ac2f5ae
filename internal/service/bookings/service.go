package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// Service сервис чтения и статусных переходов бронирований
// Создание, отмена и изменение дат живут в соответствующих usecase-пакетах:
// эти сценарии требуют транзакций с календарём доступности
type Service struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	publisher    EventPublisher
	policy       domain.Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	publisher EventPublisher,
	policy domain.Policy,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по идентификатору
// Доступ имеют гость бронирования и хост объявления
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.fetchBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.GuestID != userID {
		property, err := s.fetchProperty(ctx, booking.PropertyID)
		if err != nil {
			return nil, err
		}
		if property.HostID != userID {
			s.logger.Warn("GetByID: user=%d has no access to booking=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	return booking, nil
}

// GetGuestBookings возвращает бронирования гостя, опционально по статусу
func (s *Service) GetGuestBookings(ctx context.Context, filter domain.GuestBookingsFilter) ([]*domain.Booking, error) {
	s.logger.Info("GetGuestBookings: fetching bookings for guest=%d", filter.GuestID)

	if filter.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guest_id must be positive", ErrInvalidInput)
	}
	if filter.Status != nil {
		switch *filter.Status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled,
			domain.StatusCompleted, domain.StatusModificationRequested:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
		}
	}

	list, err := s.bookingRepo.GetByGuestID(ctx, filter.GuestID, filter.Status)
	if err != nil {
		s.logger.Error("GetGuestBookings: failed to get bookings for guest=%d: %v", filter.GuestID, err)
		return nil, fmt.Errorf("%w: GetGuestBookings - failed to get bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// GetPropertyBookings возвращает бронирования объявления
// Список доступен только хосту объявления
func (s *Service) GetPropertyBookings(ctx context.Context, propertyID, hostID int64) ([]*domain.Booking, error) {
	s.logger.Info("GetPropertyBookings: fetching bookings for property=%d", propertyID)

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetPropertyBookings: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetPropertyBookings: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyBookings - failed to get property: %v", ErrInternal, err)
	}
	if property.HostID != hostID {
		s.logger.Warn("GetPropertyBookings: user=%d is not the host of property=%d", hostID, propertyID)
		return nil, ErrAccessDenied
	}

	list, err := s.bookingRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		s.logger.Error("GetPropertyBookings: failed to get bookings for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyBookings - failed to get bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// GetHostBookings возвращает бронирования всех объявлений хоста
func (s *Service) GetHostBookings(ctx context.Context, hostID int64) ([]*domain.Booking, error) {
	s.logger.Info("GetHostBookings: fetching bookings for host=%d", hostID)

	list, err := s.bookingRepo.GetByHostID(ctx, hostID)
	if err != nil {
		s.logger.Error("GetHostBookings: failed to get bookings for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: GetHostBookings - failed to get bookings: %v", ErrInternal, err)
	}

	return list, nil
}

// CanCancel возвращает оценку отмены: разрешение и процент возврата
// Проверка доступна только гостю бронирования
func (s *Service) CanCancel(ctx context.Context, bookingID, guestID int64) (*domain.CancellationAssessment, error) {
	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != guestID {
		s.logger.Warn("CanCancel: user=%d is not the guest of booking=%d", guestID, bookingID)
		return nil, ErrAccessDenied
	}

	assessment := s.policy.AssessCancellation(s.timeProvider.Now(), booking)
	return &assessment, nil
}

// CanModify возвращает оценку допустимости запроса на изменение дат
// Проверка доступна только гостю бронирования
func (s *Service) CanModify(ctx context.Context, bookingID, guestID int64) (*domain.ModificationAssessment, error) {
	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != guestID {
		s.logger.Warn("CanModify: user=%d is not the guest of booking=%d", guestID, bookingID)
		return nil, ErrAccessDenied
	}

	assessment := s.policy.AssessModification(s.timeProvider.Now(), booking)
	return &assessment, nil
}

// Approve подтверждает ожидающее бронирование (операция хоста)
// Переход допустим только из статуса pending
func (s *Service) Approve(ctx context.Context, bookingID, hostID int64) (*domain.Booking, error) {
	s.logger.Info("Approve: approving booking id=%d by host=%d", bookingID, hostID)

	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	property, err := s.fetchProperty(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.HostID != hostID {
		s.logger.Warn("Approve: user=%d is not the host of property=%d", hostID, booking.PropertyID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeApproved() {
		s.logger.Warn("Approve: booking=%d has status=%s, cannot approve", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: only pending bookings can be approved", ErrStatusConflict)
	}

	err = s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed, domain.StatusPending)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			return nil, fmt.Errorf("%w: only pending bookings can be approved", ErrStatusConflict)
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("Approve: failed to update booking=%d: %v", bookingID, err)
			return nil, fmt.Errorf("%w: Approve - failed to update status: %v", ErrInternal, err)
		}
	}

	booking.Status = domain.StatusConfirmed

	s.publishStatusChanged(booking, domain.StatusPending, domain.StatusConfirmed)

	s.logger.Info("Approve: booking id=%d confirmed", bookingID)
	return booking, nil
}

// Delete физически удаляет бронирование (админская операция)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to delete booking: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) fetchBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("fetchBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("fetchBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) fetchProperty(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("fetchProperty: property id=%d not found", id)
			return nil, fmt.Errorf("%w: property for booking not found", ErrInternal)
		}
		s.logger.Error("fetchProperty: failed to get property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}
	return property, nil
}

// publishStatusChanged отправляет событие смены статуса
// Публикация best-effort и не влияет на результат бизнес-операции
func (s *Service) publishStatusChanged(booking *domain.Booking, from, to domain.BookingStatus) {
	s.publisher.Publish(events.BookingStatusChanged, booking.ID, booking.PropertyID, map[string]interface{}{
		"from": string(from),
		"to":   string(to),
	})
}
