package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
)

// UseCase use case для отмены бронирования гостем
type UseCase struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	publisher    EventPublisher
	txManager    TransactionManager
	policy       domain.Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	policy domain.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		publisher:    publisher,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
// Отмена разрешена для любого нефинального бронирования: политика влияет
// только на процент возврата. Смена статуса и освобождение дат календаря
// выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, guest=%d", req.BookingID, req.GuestID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.GuestID <= 0 {
		return nil, fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var response *Response
	var cancelled *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отменить бронирование может только его гость
		if booking.GuestID != req.GuestID {
			uc.logger.Warn("CancelBooking: guest=%d is not the owner of booking=%d", req.GuestID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Финальные статусы отменить нельзя
		if booking.IsTerminal() {
			uc.logger.Warn("CancelBooking: booking=%d is already %s", req.BookingID, booking.Status)
			return ErrAlreadyFinished
		}

		// 2.4. Считаем уровень возврата по политике
		assessment := uc.policy.AssessCancellation(now, booking)
		uc.logger.Info("CancelBooking: booking=%d, hours_until_check_in=%.1f, refund=%d%%",
			req.BookingID, assessment.HoursUntilCheckIn, assessment.RefundPercent)

		// 2.5. Отменяем бронирование с причиной соответствующего уровня
		if err := uc.bookingRepo.Cancel(txCtx, req.BookingID, assessment.Reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrAlreadyFinished
			}
			uc.logger.Error("CancelBooking: failed to cancel booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// 2.6. Освобождаем даты в календаре
		if err := uc.calendarRepo.ReleaseRange(txCtx, booking.PropertyID, booking.CheckIn, booking.CheckOut); err != nil {
			uc.logger.Error("CancelBooking: failed to release calendar range for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to release calendar range: %v", ErrInternal, err)
		}

		cancelled = booking
		response = &Response{
			BookingID:     booking.ID,
			Status:        string(domain.StatusCancelled),
			RefundPercent: assessment.RefundPercent,
			RefundAmount:  booking.TotalPrice * float64(assessment.RefundPercent) / 100,
			Reason:        assessment.Reason,
			CancelledAt:   now,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, refund=%d%%", response.BookingID, response.RefundPercent)

	uc.publisher.Publish(events.BookingCancelled, cancelled.ID, cancelled.PropertyID, map[string]interface{}{
		"refundPercent": response.RefundPercent,
		"refundAmount":  response.RefundAmount,
		"reason":        response.Reason,
	})

	return response, nil
}
