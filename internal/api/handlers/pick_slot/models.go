package pick_slot

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// PickSlotRequest HTTP request model.
// Дата подтверждает, какую сетку видел клиент в момент клика
type PickSlotRequest struct {
	Date string `json:"date"` // "2025-10-15"
	Time string `json:"time"` // "10:00"
}

// ToServiceArgs парсит дату и время клика
func (r *PickSlotRequest) ToServiceArgs() (time.Time, types.TimeString, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, domain.BusinessZone)
	if err != nil {
		return time.Time{}, "", err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return time.Time{}, "", err
	}

	return date, slot, nil
}
