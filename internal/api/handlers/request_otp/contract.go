package request_otp

import "context"

type ShopServiceClient interface {
	RequestOTP(ctx context.Context, phoneNumber string) error
}

type OTPGate interface {
	TryRequest(phone string) (int, bool)
	Disarm(phone string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
