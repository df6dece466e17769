package get_slot_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_grid: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("get_slot_grid: date is in the past")

	// ErrNoWorkingHours возвращается, когда магазин не работает в запрошенную дату
	ErrNoWorkingHours = errors.New("get_slot_grid: no working hours for the requested date")

	// ErrSessionNotFound возвращается, когда сессия редактирования не найдена
	ErrSessionNotFound = errors.New("get_slot_grid: session not found")

	// ErrShopUnavailable возвращается при недоступности бэкенда магазинов
	ErrShopUnavailable = errors.New("get_slot_grid: shop backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_grid: internal error")
)
