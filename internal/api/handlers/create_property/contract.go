package create_property

import (
	"context"

	"github.com/m04kA/VRM-BookingService/internal/domain"
	"github.com/m04kA/VRM-BookingService/internal/service/properties/models"
)

type PropertiesService interface {
	Create(ctx context.Context, in models.CreatePropertyInput) (*domain.Property, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
