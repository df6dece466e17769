package session_services

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidServiceID    = "некорректный ID услуги"
	msgInvalidQuantity     = "количество должно быть положительным числом"
	msgSessionNotFound     = "сессия редактирования не найдена"
	msgInvalidState        = "сессия не в режиме редактирования"
	msgServiceAlreadyAdded = "услуга уже добавлена в заявку"
	msgServiceNotInSession = "услуги нет в заявке"
	msgServiceNameRequired = "название и длительность услуги обязательны"
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

// HandleAdd POST /api/v1/sessions/{token}/services
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{token}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	if req.Name == "" || req.DurationMinutes <= 0 {
		handlers.RespondBadRequest(w, msgServiceNameRequired)
		return
	}

	result, err := h.service.AddService(r.Context(), token, req.ToDomainLine())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{token}/services - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("POST /sessions/{token}/services - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrServiceAlreadyAdded):
			h.logger.Warn("POST /sessions/{token}/services - Service already added: token=%s, service_id=%d",
				token, req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceAlreadyAdded)

		default:
			h.logger.Error("POST /sessions/{token}/services - Failed to add service: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{token}/services - Service added: token=%s, service_id=%d", token, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRemove DELETE /api/v1/sessions/{token}/services/{serviceId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{token}/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.RemoveService(r.Context(), token, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{token}/services/{id} - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("DELETE /sessions/{token}/services/{id} - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrServiceNotInSession):
			h.logger.Warn("DELETE /sessions/{token}/services/{id} - Service not in session: token=%s, service_id=%d",
				token, serviceID)
			handlers.RespondNotFound(w, msgServiceNotInSession)

		default:
			h.logger.Error("DELETE /sessions/{token}/services/{id} - Failed to remove service: token=%s, error=%v",
				token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{token}/services/{id} - Service removed: token=%s, service_id=%d", token, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSetQuantity PATCH /api/v1/sessions/{token}/services/{serviceId}
// Количество приходит строкой из поля ввода: пустая строка не меняет
// сессию, нечисловое или неположительное значение отклоняется
func (h *Handler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{token}/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req SetQuantityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{token}/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Незавершенный ввод: возвращаем текущее состояние без изменений
	if strings.TrimSpace(req.Quantity) == "" {
		result, err := h.service.GetByToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, sessions.ErrSessionNotFound) {
				handlers.RespondNotFound(w, msgSessionNotFound)
				return
			}
			h.logger.Error("PATCH /sessions/{token}/services/{id} - Failed to load session: token=%s, error=%v",
				token, err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil || quantity < 1 {
		h.logger.Warn("PATCH /sessions/{token}/services/{id} - Invalid quantity: token=%s, quantity=%q",
			token, req.Quantity)
		handlers.RespondBadRequest(w, msgInvalidQuantity)
		return
	}

	result, err := h.service.SetQuantity(r.Context(), token, serviceID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{token}/services/{id} - Session not found: token=%s", token)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidState):
			h.logger.Warn("PATCH /sessions/{token}/services/{id} - Invalid state: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, sessions.ErrInvalidQuantity):
			h.logger.Warn("PATCH /sessions/{token}/services/{id} - Invalid quantity: token=%s, quantity=%d",
				token, quantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, sessions.ErrServiceNotInSession):
			h.logger.Warn("PATCH /sessions/{token}/services/{id} - Service not in session: token=%s, service_id=%d",
				token, serviceID)
			handlers.RespondNotFound(w, msgServiceNotInSession)

		default:
			h.logger.Error("PATCH /sessions/{token}/services/{id} - Failed to set quantity: token=%s, error=%v",
				token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{token}/services/{id} - Quantity set: token=%s, service_id=%d, quantity=%d",
		token, serviceID, quantity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
