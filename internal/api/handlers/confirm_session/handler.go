package confirm_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgSessionNotFound = "сессия редактирования не найдена"
	msgInvalidState    = "сессия не в режиме редактирования"
	msgNoSlotSelected  = "для новой даты нужно выбрать время"
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

// Handle POST /api/v1/sessions/{token}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.Confirm(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{token}/confirm - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("POST /sessions/{token}/confirm - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrNoSlotSelected):
			h.logger.Warn("POST /sessions/{token}/confirm - No slot selected for new date: token=%s", token)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		default:
			h.logger.Error("POST /sessions/{token}/confirm - Failed to confirm session: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{token}/confirm - Session confirmed: token=%s, has_changes=%t",
		token, result.HasChanges)
	handlers.RespondJSON(w, http.StatusOK, result)
}
