package verify_otp

import (
	"context"

	startEditSession "github.com/avdeez/Shop-SchedulerService/internal/usecase/start_edit_session"
)

type StartEditSessionUseCase interface {
	Execute(ctx context.Context, req *startEditSession.Request) (*startEditSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
