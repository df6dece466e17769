package models

import (
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/internal/scheduler"
)

// ServiceLineResponse строка услуги в ответе
type ServiceLineResponse struct {
	ServiceID       int64  `json:"serviceId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

// ChangesResponse снимок подтвержденных изменений (nil-поля не менялись)
type ChangesResponse struct {
	Date     *string               `json:"date,omitempty"`
	Time     *string               `json:"time,omitempty"`
	Services []ServiceLineResponse `json:"services,omitempty"`
}

// SessionResponse ответ с состоянием сессии редактирования
type SessionResponse struct {
	Token         string `json:"token"`
	State         string `json:"state"`
	ShopUsername  string `json:"shopUsername"`
	AppointmentID int64  `json:"appointmentId"`
	ClientName    string `json:"clientName"`

	OriginalDate     string                `json:"originalDate"` // "2025-10-15"
	OriginalTime     string                `json:"originalTime"` // "10:00"
	OriginalServices []ServiceLineResponse `json:"originalServices"`

	EditDate     string                `json:"editDate"`
	EditTime     string                `json:"editTime,omitempty"` // пусто = слот не выбран
	EditServices []ServiceLineResponse `json:"editServices"`

	TotalDurationMinutes int `json:"totalDurationMinutes"`
	SlotsNeeded          int `json:"slotsNeeded"`

	HasChanges bool             `json:"hasChanges"`
	Changes    *ChangesResponse `json:"changes,omitempty"`
}

// FromDomainSession конвертирует доменную сессию в ответ
func FromDomainSession(s *domain.EditSession) *SessionResponse {
	total := s.EditTotalMinutes()

	resp := &SessionResponse{
		Token:                s.Token,
		State:                string(s.State),
		ShopUsername:         s.ShopUsername,
		AppointmentID:        s.AppointmentID,
		ClientName:           s.ClientName,
		OriginalDate:         s.OriginalDate.In(domain.BusinessZone).Format(domain.DateFormat),
		OriginalTime:         s.OriginalTime.String(),
		OriginalServices:     fromDomainServiceLines(s.OriginalServices),
		EditDate:             s.EditDate.In(domain.BusinessZone).Format(domain.DateFormat),
		EditTime:             s.EditTime.String(),
		EditServices:         fromDomainServiceLines(s.EditServices),
		TotalDurationMinutes: total,
		SlotsNeeded:          scheduler.SlotsNeeded(total),
		HasChanges:           s.HasChanges(),
	}

	if s.HasChanges() {
		changes := &ChangesResponse{}
		if s.ChangedDate != nil {
			d := s.ChangedDate.In(domain.BusinessZone).Format(domain.DateFormat)
			changes.Date = &d
		}
		if s.ChangedTime != nil {
			t := s.ChangedTime.String()
			changes.Time = &t
		}
		if s.ChangedServices != nil {
			changes.Services = fromDomainServiceLines(s.ChangedServices)
		}
		resp.Changes = changes
	}

	return resp
}

func fromDomainServiceLines(lines []domain.ServiceLine) []ServiceLineResponse {
	out := make([]ServiceLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ServiceLineResponse{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			DurationMinutes: l.DurationMinutes,
			Quantity:        l.Quantity,
		}
	}
	return out
}
