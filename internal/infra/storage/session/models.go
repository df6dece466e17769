package session

import (
	"encoding/json"
	"fmt"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// serviceLine JSON-представление строки услуги в колонках *_services
type serviceLine struct {
	ServiceID       int64  `json:"service_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Quantity        int    `json:"quantity"`
}

// encodeServices сериализует список услуг в JSONB
func encodeServices(lines []domain.ServiceLine) ([]byte, error) {
	out := make([]serviceLine, len(lines))
	for i, l := range lines {
		out[i] = serviceLine{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			DurationMinutes: l.DurationMinutes,
			Quantity:        l.Quantity,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeServices, err)
	}
	return data, nil
}

// encodeServicesNullable сериализует список услуг, nil остается NULL
func encodeServicesNullable(lines []domain.ServiceLine) (interface{}, error) {
	if lines == nil {
		return nil, nil
	}
	data, err := encodeServices(lines)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// decodeServices разбирает JSONB-колонку в список услуг
func decodeServices(data []byte) ([]domain.ServiceLine, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var raw []serviceLine
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	out := make([]domain.ServiceLine, len(raw))
	for i, l := range raw {
		out[i] = domain.ServiceLine{
			ServiceID:       l.ServiceID,
			Name:            l.Name,
			DurationMinutes: l.DurationMinutes,
			Quantity:        l.Quantity,
		}
	}
	return out, nil
}
