package request_otp

import (
	"net/http"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPhone       = "номер телефона обязателен"
	msgShopUnavailable    = "сервис магазинов временно недоступен, попробуйте позже"
)

type Handler struct {
	shopClient      ShopServiceClient
	otpGate         OTPGate
	cooldownSeconds int
	logger          Logger
}

func NewHandler(shopClient ShopServiceClient, otpGate OTPGate, cooldownSeconds int, logger Logger) *Handler {
	return &Handler{
		shopClient:      shopClient,
		otpGate:         otpGate,
		cooldownSeconds: cooldownSeconds,
		logger:          logger,
	}
}

// Handle POST /api/v1/otp/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RequestOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	phone := domain.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		h.logger.Warn("POST /otp/request - Missing phone number")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	// Кулдаун взводится локально: повторный запрос до его истечения
	// не уходит на бэкенд, клиент получает остаток в секундах
	if remaining, ok := h.otpGate.TryRequest(phone); !ok {
		h.logger.Info("POST /otp/request - Cooldown active: phone=%s, remaining=%ds", phone, remaining)
		handlers.RespondJSON(w, http.StatusTooManyRequests, RequestOTPResponse{
			PhoneNumber:     phone,
			CooldownSeconds: remaining,
		})
		return
	}

	if err := h.shopClient.RequestOTP(r.Context(), phone); err != nil {
		// Код не ушел - снимаем кулдаун, чтобы повтор был доступен сразу
		h.otpGate.Disarm(phone)
		h.logger.Error("POST /otp/request - Failed to request code: phone=%s, error=%v", phone, err)
		handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)
		return
	}

	h.logger.Info("POST /otp/request - Code requested: phone=%s", phone)
	handlers.RespondJSON(w, http.StatusOK, RequestOTPResponse{
		PhoneNumber:     phone,
		CooldownSeconds: h.cooldownSeconds,
	})
}
