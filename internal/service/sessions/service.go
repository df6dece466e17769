package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	sessionRepo "github.com/avdeez/Shop-SchedulerService/internal/infra/storage/session"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
	"github.com/avdeez/Shop-SchedulerService/internal/scheduler"
	"github.com/avdeez/Shop-SchedulerService/internal/service/sessions/models"
	"github.com/avdeez/Shop-SchedulerService/pkg/ptr"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// Service сервис операций над сессиями редактирования заявок
type Service struct {
	sessionRepo SessionRepository
	shopClient  ShopServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	shopClient ShopServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		shopClient:  shopClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByToken получает текущее состояние сессии
func (s *Service) GetByToken(ctx context.Context, token string) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "GetByToken")
	if err != nil {
		return nil, err
	}

	return models.FromDomainSession(session), nil
}

// PickSlot применяет клик клиента по слоту сетки.
// date - дата, для которой клиент запрашивал сетку: если сессия к этому
// моменту редактирует другую дату, выбор отклоняется как устаревший
func (s *Service) PickSlot(ctx context.Context, token string, date time.Time, slot types.TimeString) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "PickSlot")
	if err != nil {
		return nil, err
	}

	if !session.CanEdit() {
		s.logger.Warn("PickSlot: session token=%s in state=%s", token, session.State)
		return nil, ErrInvalidState
	}

	if !domain.SameDay(date, session.EditDate) {
		s.logger.Warn("PickSlot: stale date for session token=%s: requested=%s, session=%s",
			token, date.Format(domain.DateFormat), session.EditDate.Format(domain.DateFormat))
		return nil, ErrDateChanged
	}

	grid, err := s.buildSessionGrid(ctx, session)
	if err != nil {
		return nil, err
	}

	slotsNeeded := scheduler.SlotsNeeded(session.EditTotalMinutes())
	newStart, _, err := scheduler.Select(grid, slot, slotsNeeded, session.EditTime)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrSlotOccupied):
			return nil, ErrSlotOccupied
		case errors.Is(err, scheduler.ErrNotEnoughConsecutive):
			return nil, ErrNotEnoughFreeSlots
		case errors.Is(err, scheduler.ErrSlotNotInGrid):
			return nil, ErrSlotNotInGrid
		default:
			return nil, fmt.Errorf("%w: PickSlot - selection: %v", ErrInternal, err)
		}
	}

	session.EditTime = newStart
	if err := s.updateSession(ctx, session, "PickSlot"); err != nil {
		return nil, err
	}

	s.logger.Info("PickSlot: session token=%s selected time=%q", token, newStart.String())
	return models.FromDomainSession(session), nil
}

// AddService добавляет услугу в рабочий список с количеством 1.
// Повторное добавление той же услуги отклоняется
func (s *Service) AddService(ctx context.Context, token string, line domain.ServiceLine) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "AddService")
	if err != nil {
		return nil, err
	}

	if !session.CanEdit() {
		return nil, ErrInvalidState
	}

	for _, existing := range session.EditServices {
		if existing.ServiceID == line.ServiceID {
			s.logger.Warn("AddService: service id=%d already in session token=%s", line.ServiceID, token)
			return nil, ErrServiceAlreadyAdded
		}
	}

	line.Quantity = 1
	before := scheduler.SlotsNeeded(session.EditTotalMinutes())
	session.EditServices = append(session.EditServices, line)
	s.invalidateSelectionIfResized(session, before)

	if err := s.updateSession(ctx, session, "AddService"); err != nil {
		return nil, err
	}

	s.logger.Info("AddService: session token=%s added service id=%d", token, line.ServiceID)
	return models.FromDomainSession(session), nil
}

// RemoveService убирает услугу из рабочего списка
func (s *Service) RemoveService(ctx context.Context, token string, serviceID int64) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "RemoveService")
	if err != nil {
		return nil, err
	}

	if !session.CanEdit() {
		return nil, ErrInvalidState
	}

	idx := -1
	for i, existing := range session.EditServices {
		if existing.ServiceID == serviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrServiceNotInSession
	}

	before := scheduler.SlotsNeeded(session.EditTotalMinutes())
	session.EditServices = append(session.EditServices[:idx], session.EditServices[idx+1:]...)
	s.invalidateSelectionIfResized(session, before)

	if err := s.updateSession(ctx, session, "RemoveService"); err != nil {
		return nil, err
	}

	s.logger.Info("RemoveService: session token=%s removed service id=%d", token, serviceID)
	return models.FromDomainSession(session), nil
}

// SetQuantity устанавливает количество услуги в рабочем списке
func (s *Service) SetQuantity(ctx context.Context, token string, serviceID int64, quantity int) (*models.SessionResponse, error) {
	if quantity < domain.MinServiceQuantity {
		return nil, ErrInvalidQuantity
	}

	session, err := s.loadSession(ctx, token, "SetQuantity")
	if err != nil {
		return nil, err
	}

	if !session.CanEdit() {
		return nil, ErrInvalidState
	}

	idx := -1
	for i, existing := range session.EditServices {
		if existing.ServiceID == serviceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrServiceNotInSession
	}

	before := scheduler.SlotsNeeded(session.EditTotalMinutes())
	session.EditServices[idx].Quantity = quantity
	s.invalidateSelectionIfResized(session, before)

	if err := s.updateSession(ctx, session, "SetQuantity"); err != nil {
		return nil, err
	}

	s.logger.Info("SetQuantity: session token=%s service id=%d quantity=%d", token, serviceID, quantity)
	return models.FromDomainSession(session), nil
}

// ChangeDate переводит сессию на другую дату. Выбранный слот при этом
// всегда сбрасывается - сетка новой даты еще не видела этот выбор
func (s *Service) ChangeDate(ctx context.Context, token string, date time.Time) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "ChangeDate")
	if err != nil {
		return nil, err
	}

	if !session.CanEdit() {
		return nil, ErrInvalidState
	}

	session.EditDate = date
	session.EditTime = ""

	if err := s.updateSession(ctx, session, "ChangeDate"); err != nil {
		return nil, err
	}

	s.logger.Info("ChangeDate: session token=%s moved to date=%s", token, date.Format(domain.DateFormat))
	return models.FromDomainSession(session), nil
}

// Confirm замораживает изменения сессии в снимок changed-полей.
// Если изменилась дата, слот на новой дате обязан быть выбран
func (s *Service) Confirm(ctx context.Context, token string) (*models.SessionResponse, error) {
	var confirmed *domain.EditSession

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		session, err := s.loadSession(txCtx, token, "Confirm")
		if err != nil {
			return err
		}

		if !session.CanConfirm() {
			s.logger.Warn("Confirm: session token=%s in state=%s", token, session.State)
			return ErrInvalidState
		}

		if session.DateChanged() && !session.HasSelection() {
			return ErrNoSlotSelected
		}

		// Снимок изменений: nil = поле не менялось
		session.ChangedDate = nil
		session.ChangedTime = nil
		session.ChangedServices = nil

		if session.DateChanged() {
			session.ChangedDate = ptr.Ptr(session.EditDate)
		}
		if session.TimeChanged() {
			session.ChangedTime = ptr.Ptr(session.EditTime)
		}
		if session.ServicesChanged() {
			session.ChangedServices = domain.CloneServiceLines(session.EditServices)
		}

		session.State = domain.SessionConfirmed

		if err := s.updateSession(txCtx, session, "Confirm"); err != nil {
			return err
		}

		confirmed = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: session token=%s confirmed, hasChanges=%v", token, confirmed.HasChanges())
	return models.FromDomainSession(confirmed), nil
}

// Finish отправляет подтвержденные изменения в бэкенд магазина.
// Доступно только из состояния confirmed и только при наличии изменений.
// При ошибке отправки сессия остается в confirmed - клиент может повторить
func (s *Service) Finish(ctx context.Context, token string) (*models.SessionResponse, error) {
	session, err := s.loadSession(ctx, token, "Finish")
	if err != nil {
		return nil, err
	}

	if session.State != domain.SessionConfirmed {
		s.logger.Warn("Finish: session token=%s in state=%s", token, session.State)
		return nil, ErrInvalidState
	}
	if !session.HasChanges() {
		return nil, ErrNoChanges
	}

	// Пока клиент редактировал, заявку могли отменить или завершить -
	// сверяемся с бэкендом перед отправкой изменений
	current, err := s.shopClient.GetAppointment(ctx, session.AppointmentID)
	if err != nil {
		if errors.Is(err, shopapi.ErrAppointmentNotFound) {
			s.logger.Warn("Finish: appointment id=%d not found, session token=%s", session.AppointmentID, token)
			return nil, fmt.Errorf("%w: appointment no longer exists", ErrChangeRejected)
		}
		s.logger.Error("Finish: shop backend error for session token=%s: %v", token, err)
		return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
	}
	appointment, err := current.ToDomainAppointment()
	if err != nil {
		return nil, fmt.Errorf("%w: Finish: %v", ErrInternal, err)
	}
	if !appointment.IsActive() {
		s.logger.Warn("Finish: appointment id=%d is %s, session token=%s",
			session.AppointmentID, appointment.Status, token)
		return nil, fmt.Errorf("%w: appointment is %s", ErrChangeRejected, appointment.Status)
	}

	request := buildChangeRequest(session)

	if err := s.shopClient.RequestChange(ctx, request); err != nil {
		switch {
		case errors.Is(err, shopapi.ErrSlotTaken):
			s.logger.Warn("Finish: slot taken for session token=%s: %v", token, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotOccupied, err)
		case errors.Is(err, shopapi.ErrRequestRejected):
			s.logger.Warn("Finish: change rejected for session token=%s: %v", token, err)
			return nil, fmt.Errorf("%w: %v", ErrChangeRejected, err)
		default:
			s.logger.Error("Finish: shop backend error for session token=%s: %v", token, err)
			return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
		}
	}

	session.State = domain.SessionSubmitted
	if err := s.updateSession(ctx, session, "Finish"); err != nil {
		return nil, err
	}

	s.logger.Info("Finish: session token=%s submitted change request for appointment id=%d",
		token, session.AppointmentID)
	return models.FromDomainSession(session), nil
}

// CleanupStale удаляет сессии, не обновлявшиеся дольше maxAge
func (s *Service) CleanupStale(ctx context.Context, maxAge time.Duration, now time.Time) (int64, error) {
	deleted, err := s.sessionRepo.DeleteOlderThan(ctx, now.Add(-maxAge))
	if err != nil {
		s.logger.Error("CleanupStale: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupStale - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupStale: removed %d stale sessions", deleted)
	}
	return deleted, nil
}

// buildSessionGrid строит сетку слотов на рабочую дату сессии,
// исключая собственную заявку клиента из занятости
func (s *Service) buildSessionGrid(ctx context.Context, session *domain.EditSession) ([]domain.TimeSlot, error) {
	date := session.EditDate.In(domain.BusinessZone).Format(domain.DateFormat)

	schedule, err := s.shopClient.GetDaySchedule(ctx, session.ShopUsername, date)
	if err != nil {
		if errors.Is(err, shopapi.ErrNoWorkingHours) {
			return nil, ErrNoWorkingHours
		}
		s.logger.Error("buildSessionGrid: shop backend error for shop=%s date=%s: %v",
			session.ShopUsername, date, err)
		return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
	}

	intervals, windows, err := schedule.ToDomain(session.EditDate, session.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: buildSessionGrid: %v", ErrInternal, err)
	}

	grid, err := scheduler.BuildGrid(intervals, windows)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoWorkingHours) {
			return nil, ErrNoWorkingHours
		}
		return nil, fmt.Errorf("%w: buildSessionGrid: %v", ErrInternal, err)
	}

	return grid, nil
}

// invalidateSelectionIfResized сбрасывает выбранный слот, если после
// изменения услуг требуется другое количество слотов - прежнее окно
// больше не соответствует длительности
func (s *Service) invalidateSelectionIfResized(session *domain.EditSession, slotsNeededBefore int) {
	if session.EditTime.IsZero() {
		return
	}
	if scheduler.SlotsNeeded(session.EditTotalMinutes()) != slotsNeededBefore {
		session.EditTime = ""
	}
}

func (s *Service) loadSession(ctx context.Context, token, op string) (*domain.EditSession, error) {
	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("%s: session token=%s not found", op, token)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("%s: repository error for token=%s: %v", op, token, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return session, nil
}

func (s *Service) updateSession(ctx context.Context, session *domain.EditSession, op string) error {
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("%s: failed to update session token=%s: %v", op, session.Token, err)
		return fmt.Errorf("%w: %s - update session: %v", ErrInternal, op, err)
	}
	return nil
}

// buildChangeRequest собирает запрос на изменение из снимка сессии
func buildChangeRequest(session *domain.EditSession) shopapi.ChangeRequest {
	request := shopapi.ChangeRequest{
		AppointmentID: session.AppointmentID,
		ClientName:    session.ClientName,
		ClientEmail:   session.ClientEmail,
		PhoneNumber:   session.PhoneNumber,
	}

	if session.ChangedDate != nil {
		request.RequestedDate = ptr.Ptr(session.ChangedDate.In(domain.BusinessZone).Format(domain.DateFormat))
	}
	if session.ChangedTime != nil {
		request.RequestedTime = ptr.Ptr(session.ChangedTime.String())
	}
	if session.ChangedServices != nil {
		lines := make([]shopapi.ReserveServiceLine, len(session.ChangedServices))
		total := 0
		count := 0
		for i, l := range session.ChangedServices {
			lines[i] = shopapi.ReserveServiceLine{ID: l.ServiceID, Quantity: l.Quantity}
			total += l.TotalMinutes()
			count += l.Quantity
		}
		request.RequestedServices = lines
		request.RequestedTotalServiceTime = ptr.Ptr(total)
		request.RequestedNumServices = ptr.Ptr(count)
	}

	return request
}

