package approve_modification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case для одобрения хостом запроса на изменение
// Перенос дат в календаре и обновление бронирования выполняются в одной
// сериализуемой транзакции с повторной проверкой доступности новых дат
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

// Execute выполняет use case одобрения изменения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveModification: booking=%d, modification=%d, host=%d",
		req.BookingID, req.ModificationID, req.HostID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.ModificationID <= 0 {
		return nil, fmt.Errorf("%w: modificationID must be positive", ErrInvalidInput)
	}
	if req.HostID <= 0 {
		return nil, fmt.Errorf("%w: hostID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	var response *Response
	var approved *domain.ModificationRequest
	var propertyID int64

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ApproveModification: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ApproveModification: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Одобрить изменение может только хост объявления
		property, err := uc.propertyRepo.GetByID(txCtx, booking.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				uc.logger.Error("ApproveModification: property id=%d for booking=%d not found",
					booking.PropertyID, req.BookingID)
				return fmt.Errorf("%w: property for booking not found", ErrInternal)
			}
			uc.logger.Error("ApproveModification: failed to get property id=%d: %v", booking.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		if property.HostID != req.HostID {
			uc.logger.Warn("ApproveModification: host=%d is not the owner of property=%d", req.HostID, property.ID)
			return ErrAccessDenied
		}
		propertyID = property.ID

		// 2.3. Получаем запрос на изменение с блокировкой
		mod, err := uc.bookingRepo.GetModificationByID(txCtx, req.BookingID, req.ModificationID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrModificationNotFound) {
				uc.logger.Warn("ApproveModification: modification id=%d not found for booking=%d",
					req.ModificationID, req.BookingID)
				return ErrModificationNotFound
			}
			uc.logger.Error("ApproveModification: failed to get modification id=%d: %v", req.ModificationID, err)
			return fmt.Errorf("%w: failed to get modification: %v", ErrInternal, err)
		}
		if !mod.IsPending() {
			uc.logger.Warn("ApproveModification: modification id=%d has status=%s", req.ModificationID, mod.Status)
			return ErrNotPending
		}

		// 2.4. Повторно проверяем доступность новых дат: чужие брони и
		// блокировки хоста могли появиться после подачи запроса. Даты,
		// занятые самим бронированием, считаются допустимыми
		if err := uc.checkNewRange(txCtx, booking, mod); err != nil {
			return err
		}

		// 2.5. Переносим занятость календаря со старых дат на новые
		if err := uc.calendarRepo.ReleaseRange(txCtx, booking.PropertyID, booking.CheckIn, booking.CheckOut); err != nil {
			uc.logger.Error("ApproveModification: failed to release old range for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to release old calendar range: %v", ErrInternal, err)
		}
		if err := uc.calendarRepo.MarkRangeBooked(txCtx, booking.PropertyID, mod.RequestedCheckIn, mod.RequestedCheckOut); err != nil {
			uc.logger.Error("ApproveModification: failed to mark new range for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to mark new calendar range: %v", ErrInternal, err)
		}

		// 2.6. Помечаем запрос одобренным
		if err := uc.bookingRepo.ResolveModification(txCtx, req.ModificationID, domain.ModificationApproved, nil, now); err != nil {
			if errors.Is(err, bookingRepo.ErrModificationNotFound) {
				return ErrNotPending
			}
			uc.logger.Error("ApproveModification: failed to resolve modification id=%d: %v", req.ModificationID, err)
			return fmt.Errorf("%w: failed to resolve modification: %v", ErrInternal, err)
		}

		// 2.7. Копируем новые даты в бронирование и возвращаем его
		// в статус confirmed. Цена не пересчитывается
		err = uc.bookingRepo.ApplyModification(txCtx, req.BookingID,
			mod.RequestedCheckIn, mod.RequestedCheckOut, mod.RequestedGuests)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrNotPending
			}
			uc.logger.Error("ApproveModification: failed to apply modification to booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to apply modification: %v", ErrInternal, err)
		}

		approved = mod
		response = &Response{
			BookingID:  booking.ID,
			CheckIn:    mod.RequestedCheckIn,
			CheckOut:   mod.RequestedCheckOut,
			Guests:     mod.RequestedGuests,
			TotalPrice: booking.TotalPrice,
			Status:     string(domain.StatusConfirmed),
			ResolvedAt: now,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveModification: modification id=%d approved for booking=%d",
		req.ModificationID, req.BookingID)

	uc.publisher.Publish(events.BookingModificationApproved, req.BookingID, propertyID, map[string]interface{}{
		"modificationId": approved.ID,
		"checkIn":        approved.RequestedCheckIn.Format(domain.DateFormat),
		"checkOut":       approved.RequestedCheckOut.Format(domain.DateFormat),
		"guests":         approved.RequestedGuests,
	})

	return response, nil
}

// checkNewRange проверяет доступность запрошенного диапазона
// Дни из старого диапазона бронирования помечены booked самим бронированием
// и не считаются конфликтом
func (uc *UseCase) checkNewRange(ctx context.Context, booking *domain.Booking, mod *domain.ModificationRequest) error {
	days, err := uc.calendarRepo.GetRange(ctx, booking.PropertyID, mod.RequestedCheckIn, mod.RequestedCheckOut)
	if err != nil {
		uc.logger.Error("ApproveModification: failed to get calendar range for booking=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to get calendar range: %v", ErrInternal, err)
	}

	byDay := make(map[string]domain.DateStatus, len(days))
	for _, d := range days {
		byDay[d.Day.Format(domain.DateFormat)] = d.Status
	}

	ownDays := make(map[string]bool)
	for _, d := range domain.DaysInRange(booking.CheckIn, booking.CheckOut) {
		ownDays[d.Format(domain.DateFormat)] = true
	}

	for _, day := range domain.DaysInRange(mod.RequestedCheckIn, mod.RequestedCheckOut) {
		key := day.Format(domain.DateFormat)
		status, ok := byDay[key]
		if !ok {
			// Незаполненный день недоступен для гостя
			if ownDays[key] {
				continue
			}
			return ErrDatesUnavailable
		}
		switch status {
		case domain.DateAvailable:
		case domain.DateBooked:
			if !ownDays[key] {
				return ErrDatesUnavailable
			}
		default:
			return ErrDatesUnavailable
		}
	}

	return nil
}

