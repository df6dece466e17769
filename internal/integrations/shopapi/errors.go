package shopapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shopapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда
	ErrInvalidResponse = errors.New("shopapi client: invalid response")

	// ErrNoWorkingHours возвращается, когда магазин не работает в запрошенную дату
	ErrNoWorkingHours = errors.New("shop has no working hours for the requested date")

	// ErrShopNotFound возвращается, когда магазин с таким username не существует
	ErrShopNotFound = errors.New("shop not found")

	// ErrAppointmentNotFound возвращается, когда по телефону нет активной заявки
	ErrAppointmentNotFound = errors.New("no appointment found for phone number")

	// ErrInvalidOTP возвращается при неверном или истекшем коде подтверждения
	ErrInvalidOTP = errors.New("invalid or expired otp code")

	// ErrSlotTaken возвращается, когда выбранное время уже занято на стороне бэкенда
	ErrSlotTaken = errors.New("requested time is no longer available")

	// ErrRequestRejected возвращается, когда бэкенд отклонил запрос с сообщением
	ErrRequestRejected = errors.New("shop backend rejected the request")
)
