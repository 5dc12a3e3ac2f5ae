package request_modification

import (
	"context"

	requestModification "github.com/m04kA/VRM-BookingService/internal/usecase/request_modification"
)

type RequestModificationUseCase interface {
	Execute(ctx context.Context, req *requestModification.Request) (*requestModification.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
