package start_edit_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/integrations/shopapi"
)

// UseCase use case создания сессии редактирования: подтверждение кода,
// снимок заявки, запись сессии
type UseCase struct {
	sessionRepo SessionRepository
	shopClient  ShopServiceClient
	otpGate     OTPGate
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	shopClient ShopServiceClient,
	otpGate OTPGate,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		shopClient:  shopClient,
		otpGate:     otpGate,
		logger:      logger,
	}
}

// Execute выполняет use case создания сессии редактирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartEditSession: validation failed: %v", err)
		return nil, err
	}

	phone := domain.NormalizePhone(req.PhoneNumber)
	uc.logger.Info("StartEditSession: verifying otp for phone=%s", phone)

	// 2. Подтверждаем код на бэкенде и получаем снимок заявки
	result, err := uc.shopClient.VerifyOTP(ctx, phone, req.OTPCode)
	if err != nil {
		switch {
		case errors.Is(err, shopapi.ErrInvalidOTP):
			uc.logger.Warn("StartEditSession: invalid otp for phone=%s", phone)
			return nil, ErrInvalidOTP
		case errors.Is(err, shopapi.ErrAppointmentNotFound):
			uc.logger.Warn("StartEditSession: no appointment for phone=%s", phone)
			return nil, ErrAppointmentNotFound
		default:
			uc.logger.Error("StartEditSession: shop backend error for phone=%s: %v", phone, err)
			return nil, fmt.Errorf("%w: %v", ErrShopUnavailable, err)
		}
	}

	// 3. Конвертируем заявку в доменную модель
	appointment, err := result.Appointment.ToDomainAppointment()
	if err != nil {
		uc.logger.Error("StartEditSession: malformed appointment for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Создаем сессию: рабочая копия стартует с оригинала
	session := &domain.EditSession{
		Token:            uuid.NewString(),
		ShopUsername:     appointment.ShopUsername,
		PhoneNumber:      phone,
		AppointmentID:    appointment.ID,
		ClientName:       appointment.ClientName,
		ClientEmail:      appointment.ClientEmail,
		State:            domain.SessionEditing,
		OriginalDate:     appointment.Date,
		OriginalTime:     appointment.StartTime,
		OriginalServices: appointment.Services,
		EditDate:         appointment.Date,
		EditTime:         appointment.StartTime,
		EditServices:     domain.CloneServiceLines(appointment.Services),
	}

	if _, err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Error("StartEditSession: failed to create session for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}

	// 5. Помечаем телефон подтвержденным - нужен для создания новых заявок
	uc.otpGate.MarkVerified(phone)

	uc.logger.Info("StartEditSession: session token=%s created for appointment id=%d",
		session.Token, appointment.ID)

	return buildResponse(session, result.AvailableServices), nil
}

// buildResponse собирает ответ из созданной сессии и каталога магазина
func buildResponse(session *domain.EditSession, catalog []shopapi.ServiceItem) *Response {
	services := make([]ServiceLineResponse, len(session.EditServices))
	for i, l := range session.EditServices {
		services[i] = ServiceLineResponse{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			DurationMinutes: l.DurationMinutes,
			Quantity:        l.Quantity,
		}
	}

	available := make([]ServiceItemResponse, len(catalog))
	for i, item := range catalog {
		available[i] = ServiceItemResponse{
			ID:              item.ID,
			Name:            item.Name,
			DurationMinutes: item.DurationMinutes,
			Price:           item.Price,
		}
	}

	return &Response{
		Token:             session.Token,
		State:             string(session.State),
		ShopUsername:      session.ShopUsername,
		AppointmentID:     session.AppointmentID,
		ClientName:        session.ClientName,
		Date:              session.EditDate.In(domain.BusinessZone).Format(domain.DateFormat),
		Time:              session.EditTime.String(),
		Services:          services,
		AvailableServices: available,
	}
}
