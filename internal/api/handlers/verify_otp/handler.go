package verify_otp

import (
	"errors"
	"net/http"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	startEditSession "github.com/avdeez/Shop-SchedulerService/internal/usecase/start_edit_session"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "номер телефона и код обязательны"
	msgInvalidOTP          = "неверный код подтверждения"
	msgAppointmentNotFound = "активная заявка по этому номеру не найдена"
	msgShopUnavailable     = "сервис магазинов временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase StartEditSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartEditSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/verify
// Успешная проверка кода открывает сессию редактирования заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, startEditSession.ErrInvalidInput):
			h.logger.Warn("POST /otp/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, startEditSession.ErrInvalidOTP):
			h.logger.Warn("POST /otp/verify - Invalid code")
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidOTP)

		case errors.Is(err, startEditSession.ErrAppointmentNotFound):
			h.logger.Warn("POST /otp/verify - Appointment not found")
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, startEditSession.ErrShopUnavailable):
			h.logger.Error("POST /otp/verify - Shop backend unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)

		default:
			h.logger.Error("POST /otp/verify - Failed to start edit session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /otp/verify - Edit session opened: token=%s, appointment_id=%d",
		result.Token, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
