package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
	propertyRepo "github.com/m04kA/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	calendarRepo CalendarRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	calendarRepo CalendarRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultCalendarHorizonDays
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		calendarRepo: calendarRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности дат и запись в календарь выполняются в одной
// сериализуемой транзакции, чтобы два гостя не заняли одни и те же даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: guest=%d, property=%d, check_in=%s, check_out=%s, guests=%d",
		req.GuestID, req.PropertyID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем даты к UTC-полуночи
	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	now := uc.timeProvider.Now()

	// 3. Валидация диапазона дат
	if err := validateRange(checkIn, checkOut, now); err != nil {
		uc.logger.Warn("CreateBooking: range validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем объявление
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 5. Проверяем вместимость
	if req.Guests > property.MaxGuests {
		uc.logger.Warn("CreateBooking: guests=%d exceeds capacity=%d of property=%d",
			req.Guests, property.MaxGuests, req.PropertyID)
		return nil, fmt.Errorf("%w: property accommodates up to %d guests", ErrTooManyGuests, property.MaxGuests)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Календарь мог ещё не создаваться - инициализируем лениво
		has, err := uc.calendarRepo.HasCalendar(txCtx, req.PropertyID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check calendar: %v", err)
			return fmt.Errorf("%w: failed to check calendar: %v", ErrInternal, err)
		}
		if !has {
			if err := uc.calendarRepo.Seed(txCtx, req.PropertyID, domain.DateOnly(now), uc.horizonDays); err != nil {
				uc.logger.Error("CreateBooking: failed to seed calendar: %v", err)
				return fmt.Errorf("%w: failed to seed calendar: %v", ErrInternal, err)
			}
			uc.logger.Info("CreateBooking: seeded calendar for property=%d", req.PropertyID)
		}

		// 6.2. Читаем диапазон с блокировкой (FOR UPDATE)
		// День выезда тоже входит в диапазон бронирования
		days, err := uc.calendarRepo.GetRange(txCtx, req.PropertyID, checkIn, checkOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get calendar range: %v", err)
			return fmt.Errorf("%w: failed to get calendar range: %v", ErrInternal, err)
		}

		// 6.3. Каждая дата диапазона должна быть строго available
		if !allAvailable(days, checkIn, checkOut) {
			uc.logger.Warn("CreateBooking: dates not available for property=%d, range=%s..%s",
				req.PropertyID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrDatesUnavailable
		}

		// 6.4. Цена фиксируется при создании и далее не пересчитывается
		booking := &domain.Booking{
			PropertyID: req.PropertyID,
			GuestID:    req.GuestID,
			GuestName:  req.GuestName,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     req.Guests,
			Status:     domain.StatusPending,
		}
		booking.TotalPrice = float64(booking.Nights()) * property.PricePerNight

		// Instant book пропускает подтверждение хостом
		if property.InstantBook {
			booking.Status = domain.StatusConfirmed
		}

		// 6.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6.6. Помечаем диапазон занятым
		if err := uc.calendarRepo.MarkRangeBooked(txCtx, req.PropertyID, checkIn, checkOut); err != nil {
			uc.logger.Error("CreateBooking: failed to mark calendar range: %v", err)
			return fmt.Errorf("%w: failed to mark calendar range: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	uc.publisher.Publish(events.BookingCreated, result.ID, result.PropertyID, map[string]interface{}{
		"guestId":    result.GuestID,
		"checkIn":    result.CheckIn.Format(domain.DateFormat),
		"checkOut":   result.CheckOut.Format(domain.DateFormat),
		"totalPrice": result.TotalPrice,
		"status":     string(result.Status),
	})

	// Конвертируем в response
	return &Response{
		ID:         result.ID,
		PropertyID: result.PropertyID,
		GuestID:    result.GuestID,
		GuestName:  result.GuestName,
		CheckIn:    result.CheckIn,
		CheckOut:   result.CheckOut,
		Guests:     result.Guests,
		Nights:     result.Nights(),
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
