package sessions

import (
	"context"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// SessionRepository интерфейс репозитория сессий редактирования
type SessionRepository interface {
	Create(ctx context.Context, s *domain.EditSession) (*domain.EditSession, error)
	GetByToken(ctx context.Context, token string) (*domain.EditSession, error)
	Update(ctx context.Context, s *domain.EditSession) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ShopServiceClient интерфейс клиента бэкенда магазинов
type ShopServiceClient interface {
	GetDaySchedule(ctx context.Context, shopUsername, date string) (*shopapi.DaySchedule, error)
	GetAppointment(ctx context.Context, appointmentID int64) (*shopapi.Appointment, error)
	RequestChange(ctx context.Context, request shopapi.ChangeRequest) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
