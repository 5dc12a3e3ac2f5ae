package analytics

import (
	"context"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByHostID(ctx context.Context, hostID int64) ([]*domain.Booking, error)
}

// PropertyRepository интерфейс репозитория объявлений
type PropertyRepository interface {
	GetByHostID(ctx context.Context, hostID int64) ([]*domain.Property, error)
}

// CalendarRepository интерфейс репозитория календаря доступности
type CalendarRepository interface {
	GetRange(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.CalendarDay, error)
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
