package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// UseCase use case создания новой заявки в магазине
type UseCase struct {
	shopClient   ShopServiceClient
	otpGate      OTPGate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shopClient ShopServiceClient,
	otpGate OTPGate,
	logger Logger,
) *UseCase {
	return &UseCase{
		shopClient:   shopClient,
		otpGate:      otpGate,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: shop=%s, date=%s, time=%s, services=%d",
		req.ShopUsername, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 1. Валидация входных данных - до бэкенда некорректный запрос не доходит
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Телефон должен быть подтвержден кодом
	phone := domain.NormalizePhone(req.PhoneNumber)
	if !uc.otpGate.IsVerified(phone) {
		uc.logger.Warn("CreateReservation: phone=%s is not verified", phone)
		return nil, ErrPhoneNotVerified
	}

	// 3. Собираем запрос на бронирование
	services := make([]shopapi.ReserveServiceLine, len(req.Services))
	for i, line := range req.Services {
		services[i] = shopapi.ReserveServiceLine{ID: line.ServiceID, Quantity: line.Quantity}
	}

	dateTime := fmt.Sprintf("%s %s",
		req.Date.In(domain.BusinessZone).Format(domain.DateFormat), req.StartTime)

	reserveReq := shopapi.ReserveRequest{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		PhoneNumber: phone,
		Services:    services,
		Date:        dateTime,
	}

	// 4. Отправляем бронирование
	if err := uc.shopClient.Reserve(ctx, req.ShopUsername, reserveReq); err != nil {
		switch {
		case errors.Is(err, shopapi.ErrShopNotFound):
			uc.logger.Warn("CreateReservation: shop=%s not found", req.ShopUsername)
			return nil, ErrShopNotFound
		case errors.Is(err, shopapi.ErrSlotTaken):
			uc.logger.Warn("CreateReservation: slot taken for shop=%s: %v", req.ShopUsername, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		case errors.Is(err, shopapi.ErrRequestRejected):
			uc.logger.Warn("CreateReservation: rejected for shop=%s: %v", req.ShopUsername, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		default:
			uc.logger.Error("CreateReservation: shop backend error for shop=%s: %v", req.ShopUsername, err)
			return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
		}
	}

	uc.logger.Info("CreateReservation: reservation created for shop=%s at %s", req.ShopUsername, dateTime)

	return &Response{
		ShopUsername: req.ShopUsername,
		Date:         req.Date.In(domain.BusinessZone).Format(domain.DateFormat),
		Time:         req.StartTime.String(),
		Status:       string(domain.AppointmentPending),
	}, nil
}
