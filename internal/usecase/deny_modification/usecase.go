package deny_modification

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case для отклонения хостом запроса на изменение
// Бронирование остаётся на исходных датах и возвращается в confirmed,
// календарь не меняется
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отклонения изменения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DenyModification: booking=%d, modification=%d, host=%d",
		req.BookingID, req.ModificationID, req.HostID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DenyModification: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var propertyID int64

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DenyModification: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DenyModification: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отклонить изменение может только хост объявления
		property, err := uc.propertyRepo.GetByID(txCtx, booking.PropertyID)
		if err != nil {
			if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
				uc.logger.Error("DenyModification: property id=%d for booking=%d not found",
					booking.PropertyID, req.BookingID)
				return fmt.Errorf("%w: property for booking not found", ErrInternal)
			}
			uc.logger.Error("DenyModification: failed to get property id=%d: %v", booking.PropertyID, err)
			return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
		}
		if property.HostID != req.HostID {
			uc.logger.Warn("DenyModification: host=%d is not the owner of property=%d", req.HostID, property.ID)
			return ErrAccessDenied
		}
		propertyID = property.ID

		// 2.3. Получаем запрос на изменение с блокировкой
		mod, err := uc.bookingRepo.GetModificationByID(txCtx, req.BookingID, req.ModificationID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrModificationNotFound) {
				uc.logger.Warn("DenyModification: modification id=%d not found for booking=%d",
					req.ModificationID, req.BookingID)
				return ErrModificationNotFound
			}
			uc.logger.Error("DenyModification: failed to get modification id=%d: %v", req.ModificationID, err)
			return fmt.Errorf("%w: failed to get modification: %v", ErrInternal, err)
		}
		if !mod.IsPending() {
			uc.logger.Warn("DenyModification: modification id=%d has status=%s", req.ModificationID, mod.Status)
			return ErrNotPending
		}

		// 2.4. Помечаем запрос отклонённым
		if err := uc.bookingRepo.ResolveModification(txCtx, req.ModificationID, domain.ModificationDenied, req.Reason, now); err != nil {
			if errors.Is(err, bookingRepo.ErrModificationNotFound) {
				return ErrNotPending
			}
			uc.logger.Error("DenyModification: failed to resolve modification id=%d: %v", req.ModificationID, err)
			return fmt.Errorf("%w: failed to resolve modification: %v", ErrInternal, err)
		}

		// 2.5. Возвращаем бронирование в confirmed на исходных датах
		err = uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusConfirmed,
			domain.StatusModificationRequested)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrNotPending
			}
			uc.logger.Error("DenyModification: failed to update booking=%d status: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DenyModification: modification id=%d denied for booking=%d", req.ModificationID, req.BookingID)

	payload := map[string]interface{}{
		"modificationId": req.ModificationID,
	}
	if req.Reason != nil {
		payload["reason"] = *req.Reason
	}
	uc.publisher.Publish(events.BookingModificationDenied, req.BookingID, propertyID, payload)

	return &Response{
		BookingID:      req.BookingID,
		ModificationID: req.ModificationID,
		BookingStatus:  string(domain.StatusConfirmed),
		ResolvedAt:     now,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ModificationID <= 0 {
		return fmt.Errorf("%w: modificationID must be positive", ErrInvalidInput)
	}

	if req.HostID <= 0 {
		return fmt.Errorf("%w: hostID must be positive", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxModificationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxModificationReasonLength)
	}

	return nil
}
