package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	createReservation "github.com/avdeez/Shop-SchedulerService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные данные заявки"
	msgNoServices         = "выберите хотя бы одну услугу"
	msgNoSlotSelected     = "выберите дату и время"
	msgDateInPast         = "дата уже прошла"
	msgPhoneNotVerified   = "номер телефона не подтвержден кодом"
	msgShopNotFound       = "магазин не найден"
	msgSlotTaken          = "выбранное время уже занято, выберите другое"
	msgRejected           = "магазин отклонил бронирование"
	msgShopUnavailable    = "сервис магазинов временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopUsername}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopUsername := mux.Vars(r)["shopUsername"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{username}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(shopUsername)
	if err != nil {
		h.logger.Warn("POST /shops/{username}/reservations - Failed to parse request: shop=%s, error=%v",
			shopUsername, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrNoServicesSelected):
			h.logger.Warn("POST /shops/{username}/reservations - No services selected: shop=%s", shopUsername)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, createReservation.ErrNoSlotSelected):
			h.logger.Warn("POST /shops/{username}/reservations - No slot selected: shop=%s", shopUsername)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /shops/{username}/reservations - Date in past: shop=%s", shopUsername)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /shops/{username}/reservations - Invalid input: shop=%s, error=%v",
				shopUsername, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrPhoneNotVerified):
			h.logger.Warn("POST /shops/{username}/reservations - Phone not verified: shop=%s", shopUsername)
			handlers.RespondForbidden(w, msgPhoneNotVerified)

		case errors.Is(err, createReservation.ErrShopNotFound):
			h.logger.Warn("POST /shops/{username}/reservations - Shop not found: shop=%s", shopUsername)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /shops/{username}/reservations - Slot taken: shop=%s", shopUsername)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrRejected):
			h.logger.Warn("POST /shops/{username}/reservations - Rejected: shop=%s", shopUsername)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		case errors.Is(err, createReservation.ErrShopUnavailable):
			h.logger.Error("POST /shops/{username}/reservations - Shop backend unavailable: shop=%s, error=%v",
				shopUsername, err)
			handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)

		default:
			h.logger.Error("POST /shops/{username}/reservations - Failed to create reservation: shop=%s, error=%v",
				shopUsername, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{username}/reservations - Reservation created: shop=%s, date=%s, time=%s",
		shopUsername, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
