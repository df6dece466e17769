package start_edit_session

import (
	"fmt"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if domain.NormalizePhone(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if len(req.PhoneNumber) > domain.MaxPhoneLen {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}
	if req.OTPCode == "" {
		return fmt.Errorf("%w: otp code is required", ErrInvalidInput)
	}
	return nil
}
