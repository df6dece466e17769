package finish_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgSessionNotFound = "сессия редактирования не найдена"
	msgInvalidState    = "сессия не подтверждена"
	msgNoChanges       = "нет изменений для отправки"
	msgSlotOccupied    = "выбранное время уже занято, выберите другое"
	msgChangeRejected  = "магазин отклонил запрос на изменение"
	msgShopUnavailable = "сервис магазинов временно недоступен, попробуйте позже"
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

// Handle POST /api/v1/sessions/{token}/submit
// При ошибке отправки сессия остается подтвержденной - клиент может
// повторить отправку или вернуться к редактированию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.Finish(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{token}/submit - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("POST /sessions/{token}/submit - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrNoChanges):
			h.logger.Warn("POST /sessions/{token}/submit - No changes to submit: token=%s", token)
			handlers.RespondBadRequest(w, msgNoChanges)

		case errors.Is(err, sessions.ErrSlotOccupied):
			h.logger.Warn("POST /sessions/{token}/submit - Slot taken on backend: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		case errors.Is(err, sessions.ErrChangeRejected):
			h.logger.Warn("POST /sessions/{token}/submit - Change rejected: token=%s", token)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgChangeRejected)

		case errors.Is(err, sessions.ErrShopUnavailable):
			h.logger.Error("POST /sessions/{token}/submit - Shop backend unavailable: token=%s, error=%v", token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)

		default:
			h.logger.Error("POST /sessions/{token}/submit - Failed to submit changes: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{token}/submit - Changes submitted: token=%s", token)
	handlers.RespondJSON(w, http.StatusOK, result)
}
