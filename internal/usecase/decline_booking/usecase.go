package decline_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case для отклонения ожидающего бронирования хостом
// Отклонение моделируется как отмена с причиной "Declined by host"
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	calendarRepo CalendarRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	calendarRepo CalendarRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		calendarRepo: calendarRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отклонения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeclineBooking: booking=%d, host=%d", req.BookingID, req.HostID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.HostID <= 0 {
		return nil, fmt.Errorf("%w: hostID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var declined *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DeclineBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DeclineBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отклонить бронирование может только хост объявления
		property, err := uc.propertyRepo.GetByID(txCtx, booking.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				uc.logger.Error("DeclineBooking: property id=%d for booking=%d not found",
					booking.PropertyID, req.BookingID)
				return fmt.Errorf("%w: property for booking not found", ErrInternal)
			}
			uc.logger.Error("DeclineBooking: failed to get property id=%d: %v", booking.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		if property.HostID != req.HostID {
			uc.logger.Warn("DeclineBooking: host=%d is not the owner of property=%d", req.HostID, property.ID)
			return ErrAccessDenied
		}

		// 2.3. Отклонить можно только ожидающее бронирование
		if !booking.CanBeApproved() {
			uc.logger.Warn("DeclineBooking: booking=%d has status=%s, cannot decline", req.BookingID, booking.Status)
			return ErrNotPending
		}

		// 2.4. Отменяем бронирование от имени хоста
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, domain.ReasonDeclinedByHost, now); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrNotPending
			}
			uc.logger.Error("DeclineBooking: failed to cancel booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// 2.5. Освобождаем даты в календаре
		if err := uc.calendarRepo.ReleaseRange(txCtx, booking.PropertyID, booking.CheckIn, booking.CheckOut); err != nil {
			uc.logger.Error("DeclineBooking: failed to release calendar range for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to release calendar range: %v", ErrInternal, err)
		}

		declined = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeclineBooking: booking id=%d declined by host=%d", req.BookingID, req.HostID)

	uc.publisher.Publish(events.BookingCancelled, declined.ID, declined.PropertyID, map[string]interface{}{
		"reason": domain.ReasonDeclinedByHost,
	})

	return &Response{
		BookingID:   declined.ID,
		Status:      string(domain.StatusCancelled),
		Reason:      domain.ReasonDeclinedByHost,
		CancelledAt: now,
	}, nil
}
