package request_otp

// RequestOTPRequest HTTP request model
type RequestOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// RequestOTPResponse HTTP response model
type RequestOTPResponse struct {
	PhoneNumber     string `json:"phoneNumber"`
	CooldownSeconds int    `json:"cooldownSeconds"` // секунд до возможности повторной отправки
}
