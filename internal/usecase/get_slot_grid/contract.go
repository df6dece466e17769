package get_slot_grid

import (
	"context"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// SessionRepository интерфейс репозитория сессий редактирования
type SessionRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.EditSession, error)
}

// ShopServiceClient интерфейс клиента бэкенда магазинов
type ShopServiceClient interface {
	GetDaySchedule(ctx context.Context, shopUsername, date string) (*shopapi.DaySchedule, error)
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
