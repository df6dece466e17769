package shopapi

import (
	"fmt"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/scheduler"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// ToDomain конвертирует расписание на дату date в доменные рабочие
// интервалы и окна занятости. Фильтрацию заявок (активный статус,
// исключение excludeAppointmentID, 0 - ничего не исключать) выполняет
// scheduler.OccupiedWindows
func (s *DaySchedule) ToDomain(date time.Time, excludeAppointmentID int64) ([]domain.WorkingInterval, []domain.ReservationWindow, error) {
	intervals := make([]domain.WorkingInterval, 0, len(s.WorkingHours))
	for _, wh := range s.WorkingHours {
		open, err := types.NewTimeStringFromString(wh.Open)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: working hours open: %v", ErrInvalidResponse, err)
		}
		closeAt, err := types.NewTimeStringFromString(wh.Close)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: working hours close: %v", ErrInvalidResponse, err)
		}
		intervals = append(intervals, domain.WorkingInterval{Open: open, Close: closeAt})
	}

	appointments := make([]domain.Appointment, 0, len(s.Appointments))
	for _, a := range s.Appointments {
		start, err := types.NewTimeStringFromString(a.Time)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: appointment id=%d time: %v", ErrInvalidResponse, a.ID, err)
		}
		appointments = append(appointments, domain.Appointment{
			ID:        a.ID,
			Date:      date,
			StartTime: start,
			Status:    domain.AppointmentStatus(a.Status),
			// Фид расписания сообщает только суммарное время заявки -
			// представляем его одной агрегатной строкой
			Services: []domain.ServiceLine{
				{DurationMinutes: a.TotalServiceMinutes, Quantity: 1},
			},
		})
	}

	return intervals, scheduler.OccupiedWindows(appointments, date, excludeAppointmentID), nil
}

// ToDomainAppointment конвертирует заявку бэкенда в доменную модель
func (a *Appointment) ToDomainAppointment() (*domain.Appointment, error) {
	date, err := domain.ParseDate(a.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment id=%d date: %v", ErrInvalidResponse, a.ID, err)
	}

	startTime, err := types.NewTimeStringFromString(a.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment id=%d time: %v", ErrInvalidResponse, a.ID, err)
	}

	services := make([]domain.ServiceLine, len(a.Services))
	for i, svc := range a.Services {
		services[i] = domain.ServiceLine{
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Quantity:        svc.Quantity,
		}
	}

	return &domain.Appointment{
		ID:              a.ID,
		ShopUsername:    a.ShopUsername,
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		PhoneNumber:     domain.NormalizePhone(a.PhoneNumber),
		Date:            date,
		StartTime:       startTime,
		Services:        services,
		Status:          domain.AppointmentStatus(a.Status),
		RejectionReason: a.RejectionReason,
	}, nil
}
