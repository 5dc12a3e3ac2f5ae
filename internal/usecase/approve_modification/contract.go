package approve_modification

import (
	"context"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetModificationByID(ctx context.Context, bookingID, modificationID int64) (*domain.ModificationRequest, error)
	ResolveModification(ctx context.Context, modificationID int64, status domain.ModificationStatus, denialReason *string, resolvedAt time.Time) error
	ApplyModification(ctx context.Context, id int64, checkIn, checkOut time.Time, guests int) error
}

// PropertyRepository интерфейс репозитория объявлений
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// CalendarRepository интерфейс репозитория календаря доступности
type CalendarRepository interface {
	GetRange(ctx context.Context, propertyID int64, start, end time.Time) ([]domain.CalendarDay, error)
	MarkRangeBooked(ctx context.Context, propertyID int64, start, end time.Time) error
	ReleaseRange(ctx context.Context, propertyID int64, start, end time.Time) error
}

// EventPublisher интерфейс публикации событий жизненного цикла бронирования
type EventPublisher interface {
	Publish(eventType events.EventType, bookingID, propertyID int64, payload map[string]interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
