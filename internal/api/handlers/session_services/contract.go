package session_services

import (
	"context"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
)

type SessionService interface {
	AddService(ctx context.Context, token string, line domain.ServiceLine) (*models.SessionResponse, error)
	RemoveService(ctx context.Context, token string, serviceID int64) (*models.SessionResponse, error)
	SetQuantity(ctx context.Context, token string, serviceID int64, quantity int) (*models.SessionResponse, error)
	GetByToken(ctx context.Context, token string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
