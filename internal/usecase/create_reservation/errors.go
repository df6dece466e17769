package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrNoServicesSelected возвращается, когда не выбрана ни одна услуга
	ErrNoServicesSelected = errors.New("create_reservation: no services selected")

	// ErrNoSlotSelected возвращается, когда не выбраны дата и время
	ErrNoSlotSelected = errors.New("create_reservation: no slot selected")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_reservation: date is in the past")

	// ErrPhoneNotVerified возвращается, когда телефон не прошел подтверждение кодом
	ErrPhoneNotVerified = errors.New("create_reservation: phone number is not verified")

	// ErrShopNotFound возвращается, когда магазин не существует
	ErrShopNotFound = errors.New("create_reservation: shop not found")

	// ErrSlotTaken возвращается, когда выбранное время уже занято
	ErrSlotTaken = errors.New("create_reservation: requested time is no longer available")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование
	ErrRejected = errors.New("create_reservation: reservation rejected")

	// ErrShopUnavailable возвращается при недоступности бэкенда магазинов
	ErrShopUnavailable = errors.New("create_reservation: shop backend unavailable")
)
