package pick_slot

import (
	"context"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

type SessionService interface {
	PickSlot(ctx context.Context, token string, date time.Time, slot types.TimeString) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
