package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgMissingToken    = "токен сессии обязателен"
	msgSessionNotFound = "сессия редактирования не найдена"
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

// Handle GET /api/v1/sessions/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{token} - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{token} - Failed to load session: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{token} - Session loaded: token=%s, state=%s", token, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
