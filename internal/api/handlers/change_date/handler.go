package change_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия редактирования не найдена"
	msgInvalidState       = "сессия не в режиме редактирования"
)

// ChangeDateRequest HTTP request model
type ChangeDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

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

// Handle POST /api/v1/sessions/{token}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req ChangeDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{token}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, domain.BusinessZone)
	if err != nil {
		h.logger.Warn("POST /sessions/{token}/date - Invalid date format: token=%s, date=%s", token, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ChangeDate(r.Context(), token, date)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{token}/date - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("POST /sessions/{token}/date - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		default:
			h.logger.Error("POST /sessions/{token}/date - Failed to change date: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{token}/date - Date changed: token=%s, date=%s", token, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
