package create_reservation

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	createReservation "github.com/avdeez/Shop-SchedulerService/internal/usecase/create_reservation"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// ServiceLineInput выбранная услуга с количеством
type ServiceLineInput struct {
	ServiceID int64 `json:"serviceId"`
	Quantity  int   `json:"quantity"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientName  string             `json:"clientName"`
	ClientEmail string             `json:"clientEmail"`
	PhoneNumber string             `json:"phoneNumber"`
	Services    []ServiceLineInput `json:"services"`
	Date        string             `json:"date"`      // "2025-10-15"
	StartTime   string             `json:"startTime"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(shopUsername string) (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, domain.BusinessZone)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	services := make([]createReservation.ServiceLineInput, len(r.Services))
	for i, line := range r.Services {
		services[i] = createReservation.ServiceLineInput{
			ServiceID: line.ServiceID,
			Quantity:  line.Quantity,
		}
	}

	return &createReservation.Request{
		ShopUsername: shopUsername,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		PhoneNumber:  r.PhoneNumber,
		Services:     services,
		Date:         date,
		StartTime:    startTime,
	}, nil
}
