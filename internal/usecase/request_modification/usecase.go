package request_modification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case для подачи гостем запроса на изменение бронирования
// Новый запрос замещает предыдущий нерассмотренный: у бронирования не
// бывает двух активных запросов одновременно
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	publisher    EventPublisher
	txManager    TransactionManager
	policy       domain.Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	policy domain.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подачи запроса на изменение
// Календарь на этом шаге не трогаем: даты перебрасываются только после
// одобрения хостом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestModification: booking=%d, guest=%d, check_in=%s, check_out=%s, guests=%d",
		req.BookingID, req.GuestID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestModification: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	now := uc.timeProvider.Now()

	if !checkOut.After(checkIn) {
		uc.logger.Warn("RequestModification: invalid range for booking=%d", req.BookingID)
		return nil, ErrInvalidRange
	}

	var result *domain.ModificationRequest
	var propertyID int64

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RequestModification: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RequestModification: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Запросить изменение может только гость бронирования
		if booking.GuestID != req.GuestID {
			uc.logger.Warn("RequestModification: guest=%d is not the owner of booking=%d", req.GuestID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Политика: достаточный запас времени и нефинальный статус
		assessment := uc.policy.AssessModification(now, booking)
		if !assessment.CanModify {
			uc.logger.Warn("RequestModification: booking=%d not modifiable: %s", req.BookingID, assessment.Reason)
			return fmt.Errorf("%w: %s", ErrModificationNotAllowed, assessment.Reason)
		}

		// 2.4. Новое количество гостей не должно превышать вместимость
		property, err := uc.propertyRepo.GetByID(txCtx, booking.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				uc.logger.Error("RequestModification: property id=%d for booking=%d not found",
					booking.PropertyID, req.BookingID)
				return fmt.Errorf("%w: property for booking not found", ErrInternal)
			}
			uc.logger.Error("RequestModification: failed to get property id=%d: %v", booking.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		if req.Guests > property.MaxGuests {
			uc.logger.Warn("RequestModification: guests=%d exceeds capacity=%d of property=%d",
				req.Guests, property.MaxGuests, property.ID)
			return fmt.Errorf("%w: property accommodates up to %d guests", ErrTooManyGuests, property.MaxGuests)
		}
		propertyID = property.ID

		// 2.5. Записываем запрос, замещая предыдущий нерассмотренный
		mod := &domain.ModificationRequest{
			BookingID:         req.BookingID,
			RequestedCheckIn:  checkIn,
			RequestedCheckOut: checkOut,
			RequestedGuests:   req.Guests,
			Reason:            req.Reason,
			Status:            domain.ModificationPending,
		}
		created, err := uc.bookingRepo.UpsertModification(txCtx, mod)
		if err != nil {
			uc.logger.Error("RequestModification: failed to upsert modification for booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to save modification request: %v", ErrInternal, err)
		}

		// 2.6. Переводим бронирование в статус modification_requested
		// Повторный запрос для бронирования, уже ожидающего решения,
		// статус не меняет
		if booking.Status != domain.StatusModificationRequested {
			err = uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusModificationRequested,
				domain.StatusPending, domain.StatusConfirmed)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrStatusConflict) {
					return fmt.Errorf("%w: booking status changed concurrently", ErrModificationNotAllowed)
				}
				uc.logger.Error("RequestModification: failed to update booking=%d status: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestModification: created modification id=%d for booking=%d", result.ID, result.BookingID)

	uc.publisher.Publish(events.BookingModificationRequested, result.BookingID, propertyID, map[string]interface{}{
		"modificationId": result.ID,
		"checkIn":        result.RequestedCheckIn.Format(domain.DateFormat),
		"checkOut":       result.RequestedCheckOut.Format(domain.DateFormat),
		"guests":         result.RequestedGuests,
	})

	return &Response{
		ModificationID: result.ID,
		BookingID:      result.BookingID,
		CheckIn:        result.RequestedCheckIn,
		CheckOut:       result.RequestedCheckOut,
		Guests:         result.RequestedGuests,
		Reason:         result.Reason,
		Status:         string(result.Status),
		BookingStatus:  string(domain.StatusModificationRequested),
		CreatedAt:      result.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if len(req.Reason) > domain.MaxModificationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxModificationReasonLength)
	}

	return nil
}
