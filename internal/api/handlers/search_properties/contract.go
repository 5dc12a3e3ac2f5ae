package search_properties

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
)

type PropertiesService interface {
	Search(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
