package create_reservation

import (
	"context"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// ShopServiceClient интерфейс клиента бэкенда магазинов
type ShopServiceClient interface {
	Reserve(ctx context.Context, shopUsername string, request shopapi.ReserveRequest) error
}

// OTPGate интерфейс реестра подтвержденных телефонов
type OTPGate interface {
	IsVerified(phone string) bool
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
