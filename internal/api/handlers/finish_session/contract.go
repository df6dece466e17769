package finish_session

import (
	"context"

	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
)

type SessionService interface {
	Finish(ctx context.Context, token string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
