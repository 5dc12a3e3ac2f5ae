package availability

import (
	"context"
	"time"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря доступности
type CalendarRepository interface {
	HasCalendar(ctx context.Context, propertyID int64) (bool, error)
	Seed(ctx context.Context, propertyID int64, from time.Time, horizonDays int) error
	GetMonth(ctx context.Context, propertyID int64, monthStart, monthEnd time.Time) ([]domain.CalendarDay, error)
	GetDate(ctx context.Context, propertyID int64, day time.Time) (*domain.CalendarDay, error)
	SetDate(ctx context.Context, propertyID int64, day time.Time, status domain.DateStatus) error
}

// PropertyRepository интерфейс репозитория объявлений
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
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
