package get_slot_grid

import (
	"fmt"
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ShopUsername == "" {
		return fmt.Errorf("%w: shop username is required", ErrInvalidInput)
	}
	if len(req.ShopUsername) > domain.MaxUsernameLen {
		return fmt.Errorf("%w: shop username is too long", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшней (по бизнес-зоне)
func isDateInPast(date, now time.Time) bool {
	if domain.SameDay(date, now) {
		return false
	}
	return date.In(domain.BusinessZone).Before(now.In(domain.BusinessZone))
}
