package pick_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается дата YYYY-MM-DD и время HH:MM"
	msgSessionNotFound    = "сессия редактирования не найдена"
	msgInvalidState       = "сессия не в режиме редактирования"
	msgDateChanged        = "дата сессии изменилась, обновите сетку слотов"
	msgNoWorkingHours     = "магазин закрыт в выбранную дату"
	msgSlotNotInGrid      = "выбранное время отсутствует в сетке"
	msgSlotOccupied       = "выбранное время уже занято"
	msgNotEnoughSlots     = "недостаточно свободных слотов подряд для выбранных услуг"
	msgShopUnavailable    = "сервис магазинов временно недоступен, попробуйте позже"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{token}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req PickSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{token}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, slot, err := req.ToServiceArgs()
	if err != nil {
		h.logger.Warn("POST /sessions/{token}/slot - Failed to parse request: token=%s, error=%v", token, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PickSlot(r.Context(), token, date, slot)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{token}/slot - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("POST /sessions/{token}/slot - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrDateChanged):
			h.logger.Warn("POST /sessions/{token}/slot - Stale grid date: token=%s, date=%s", token, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateChanged)

		case errors.Is(err, sessions.ErrNoWorkingHours):
			h.logger.Warn("POST /sessions/{token}/slot - No working hours: token=%s, date=%s", token, req.Date)
			handlers.RespondBadRequest(w, msgNoWorkingHours)

		case errors.Is(err, sessions.ErrSlotNotInGrid):
			h.logger.Warn("POST /sessions/{token}/slot - Slot not in grid: token=%s, time=%s", token, req.Time)
			handlers.RespondBadRequest(w, msgSlotNotInGrid)

		case errors.Is(err, sessions.ErrSlotOccupied):
			h.logger.Warn("POST /sessions/{token}/slot - Slot occupied: token=%s, time=%s", token, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, sessions.ErrNotEnoughFreeSlots):
			h.logger.Warn("POST /sessions/{token}/slot - Not enough consecutive slots: token=%s, time=%s", token, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgNotEnoughSlots)

		case errors.Is(err, sessions.ErrShopUnavailable):
			h.logger.Error("POST /sessions/{token}/slot - Shop backend unavailable: token=%s, error=%v", token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)

		default:
			h.logger.Error("POST /sessions/{token}/slot - Failed to pick slot: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{token}/slot - Slot picked: token=%s, time=%q", token, result.EditTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
