package create_reservation

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// ServiceLineInput выбранная услуга с количеством
type ServiceLineInput struct {
	ServiceID int64
	Quantity  int
}

// Request запрос на создание новой заявки
type Request struct {
	ShopUsername string
	ClientName   string
	ClientEmail  string
	PhoneNumber  string
	Services     []ServiceLineInput
	Date         time.Time
	StartTime    types.TimeString
}

// Response результат создания заявки
type Response struct {
	ShopUsername string `json:"shopUsername"`
	Date         string `json:"date"`   // "2025-10-15"
	Time         string `json:"time"`   // "10:00"
	Status       string `json:"status"` // статус новой заявки на бэкенде
}
