package start_edit_session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_edit_session: invalid input data")

	// ErrInvalidOTP возвращается при неверном или истекшем коде подтверждения
	ErrInvalidOTP = errors.New("start_edit_session: invalid otp code")

	// ErrAppointmentNotFound возвращается, когда по телефону нет активной заявки
	ErrAppointmentNotFound = errors.New("start_edit_session: appointment not found")

	// ErrShopUnavailable возвращается при недоступности бэкенда магазинов
	ErrShopUnavailable = errors.New("start_edit_session: shop backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_edit_session: internal error")
)
