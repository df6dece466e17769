package start_edit_session

import (
	"context"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// SessionRepository интерфейс репозитория сессий редактирования
type SessionRepository interface {
	Create(ctx context.Context, s *domain.EditSession) (*domain.EditSession, error)
}

// ShopServiceClient интерфейс клиента бэкенда магазинов
type ShopServiceClient interface {
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*shopapi.VerifyOTPResult, error)
}

// OTPGate интерфейс реестра подтвержденных телефонов
type OTPGate interface {
	MarkVerified(phone string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
