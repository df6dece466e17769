package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// validateRequest проверяет входные данные запроса.
// Ошибки валидации блокируют запрос локально - до бэкенда он не доходит
func validateRequest(req *Request, now time.Time) error {
	if req.ShopUsername == "" {
		return fmt.Errorf("%w: shop username is required", ErrInvalidInput)
	}
	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLen {
		return fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}
	if req.ClientEmail == "" || !strings.Contains(req.ClientEmail, "@") {
		return fmt.Errorf("%w: valid client email is required", ErrInvalidInput)
	}
	if len(req.ClientEmail) > domain.MaxEmailLen {
		return fmt.Errorf("%w: client email is too long", ErrInvalidInput)
	}
	if domain.NormalizePhone(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	if len(req.Services) == 0 {
		return ErrNoServicesSelected
	}
	for _, line := range req.Services {
		if line.Quantity < domain.MinServiceQuantity {
			return fmt.Errorf("%w: service id=%d quantity must be positive", ErrInvalidInput, line.ServiceID)
		}
	}

	if req.Date.IsZero() || req.StartTime.IsZero() {
		return ErrNoSlotSelected
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if !domain.SameDay(req.Date, now) && req.Date.In(domain.BusinessZone).Before(now.In(domain.BusinessZone)) {
		return ErrInvalidDate
	}

	return nil
}
