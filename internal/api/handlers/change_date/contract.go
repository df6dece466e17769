package change_date

import (
	"context"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
)

type SessionService interface {
	ChangeDate(ctx context.Context, token string, date time.Time) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
