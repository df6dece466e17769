package verify_otp

import (
	startEditSession "github.com/avdeez/Shop-SchedulerService/internal/usecase/start_edit_session"
)

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTPCode     string `json:"otpCode"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyOTPRequest) ToUseCaseRequest() *startEditSession.Request {
	return &startEditSession.Request{
		PhoneNumber: r.PhoneNumber,
		OTPCode:     r.OTPCode,
	}
}
