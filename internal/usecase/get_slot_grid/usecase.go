package get_slot_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	sessionRepo "github.com/avdeez/Shop-SchedulerService/internal/infra/storage/session"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
	"github.com/avdeez/Shop-SchedulerService/internal/scheduler"
)

// UseCase use case построения сетки слотов магазина на дату
type UseCase struct {
	sessionRepo  SessionRepository
	shopClient   ShopServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	shopClient ShopServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		shopClient:   shopClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotGrid: shop=%s, date=%s",
		req.ShopUsername, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetSlotGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Если передан токен сессии - достаем ее: собственная заявка
	// исключается из занятости, текущий выбор накладывается на сетку
	var session *domain.EditSession
	if req.SessionToken != nil {
		var err error
		session, err = uc.sessionRepo.GetByToken(ctx, *req.SessionToken)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				uc.logger.Warn("GetSlotGrid: session token=%s not found", *req.SessionToken)
				return nil, ErrSessionNotFound
			}
			uc.logger.Error("GetSlotGrid: repository error for token=%s: %v", *req.SessionToken, err)
			return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}
	}

	// 3. Получаем расписание магазина на дату
	date := req.Date.In(domain.BusinessZone).Format(domain.DateFormat)
	schedule, err := uc.shopClient.GetDaySchedule(ctx, req.ShopUsername, date)
	if err != nil {
		if errors.Is(err, shopapi.ErrNoWorkingHours) {
			uc.logger.Info("GetSlotGrid: shop=%s closed on %s", req.ShopUsername, date)
			return nil, ErrNoWorkingHours
		}
		uc.logger.Error("GetSlotGrid: shop backend error for shop=%s: %v", req.ShopUsername, err)
		return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
	}

	// 4. Строим сетку с учетом занятости
	var excludeID int64
	if session != nil {
		excludeID = session.AppointmentID
	}

	intervals, windows, err := schedule.ToDomain(req.Date, excludeID)
	if err != nil {
		uc.logger.Error("GetSlotGrid: malformed schedule for shop=%s: %v", req.ShopUsername, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	grid, err := scheduler.BuildGrid(intervals, windows)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoWorkingHours) {
			return nil, ErrNoWorkingHours
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Накладываем текущий выбор сессии, если сетка той же даты
	slotsNeeded := 0
	selected := ""
	if session != nil {
		slotsNeeded = scheduler.SlotsNeeded(session.EditTotalMinutes())
		if domain.SameDay(session.EditDate, req.Date) && session.HasSelection() {
			overlaid, ok := scheduler.Overlay(grid, session.EditTime, slotsNeeded)
			if ok {
				grid = overlaid
				selected = session.EditTime.String()
			}
		}
	}

	uc.logger.Info("GetSlotGrid: shop=%s date=%s: %d slots", req.ShopUsername, date, len(grid))
	return buildResponse(req.ShopUsername, date, grid, slotsNeeded, selected), nil
}

// buildResponse собирает ответ из сетки
func buildResponse(shopUsername, date string, grid []domain.TimeSlot, slotsNeeded int, selected string) *Response {
	slots := make([]SlotResponse, len(grid))
	for i, s := range grid {
		slots[i] = SlotResponse{
			Time:   s.Time.String(),
			Status: string(s.Status),
		}
	}

	return &Response{
		ShopUsername: shopUsername,
		Date:         date,
		Slots:        slots,
		SlotsNeeded:  slotsNeeded,
		SelectedTime: selected,
	}
}
