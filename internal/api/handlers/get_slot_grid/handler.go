package get_slot_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdeez/Shop-SchedulerService/internal/api/handlers"
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	getSlotGrid "github.com/avdeez/Shop-SchedulerService/internal/usecase/get_slot_grid"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast       = "дата уже прошла"
	msgNoWorkingHours   = "магазин закрыт в выбранную дату"
	msgSessionNotFound  = "сессия редактирования не найдена"
	msgShopUnavailable  = "сервис магазинов временно недоступен, попробуйте позже"
	msgInvalidShopQuery = "некорректный запрос"
)

type Handler struct {
	useCase GetSlotGridUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopUsername}/slots
// Query params: date (required, YYYY-MM-DD), sessionToken (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopUsername := vars["shopUsername"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shops/{username}/slots - Missing date: shop=%s", shopUsername)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.BusinessZone)
	if err != nil {
		h.logger.Warn("GET /shops/{username}/slots - Invalid date format: shop=%s, date=%s", shopUsername, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := &getSlotGrid.Request{
		ShopUsername: shopUsername,
		Date:         date,
	}
	if token := r.URL.Query().Get("sessionToken"); token != "" {
		useCaseReq.SessionToken = &token
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrInvalidDate):
			h.logger.Warn("GET /shops/{username}/slots - Date in past: shop=%s, date=%s", shopUsername, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getSlotGrid.ErrNoWorkingHours):
			h.logger.Warn("GET /shops/{username}/slots - No working hours: shop=%s, date=%s", shopUsername, dateStr)
			handlers.RespondNotFound(w, msgNoWorkingHours)

		case errors.Is(err, getSlotGrid.ErrSessionNotFound):
			h.logger.Warn("GET /shops/{username}/slots - Session not found: shop=%s", shopUsername)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getSlotGrid.ErrShopUnavailable):
			h.logger.Error("GET /shops/{username}/slots - Shop backend unavailable: shop=%s, error=%v", shopUsername, err)
			handlers.RespondError(w, http.StatusBadGateway, msgShopUnavailable)

		case errors.Is(err, getSlotGrid.ErrInvalidInput):
			h.logger.Warn("GET /shops/{username}/slots - Invalid input: shop=%s, error=%v", shopUsername, err)
			handlers.RespondBadRequest(w, msgInvalidShopQuery)

		default:
			h.logger.Error("GET /shops/{username}/slots - Failed to build grid: shop=%s, date=%s, error=%v",
				shopUsername, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{username}/slots - Grid built: shop=%s, date=%s, slots=%d",
		shopUsername, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
