package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("edit session not found")

	// ErrInvalidState возвращается при операции, недопустимой в текущем состоянии сессии
	ErrInvalidState = errors.New("operation not allowed in current session state")

	// ErrDateChanged возвращается, когда клиент выбирает слот по устаревшей дате
	ErrDateChanged = errors.New("session date has changed since the grid was fetched")

	// ErrNoWorkingHours возвращается, когда магазин не работает в выбранную дату
	ErrNoWorkingHours = errors.New("shop has no working hours for the requested date")

	// ErrSlotOccupied возвращается при выборе занятого слота
	ErrSlotOccupied = errors.New("slot already reserved")

	// ErrNotEnoughFreeSlots возвращается, когда подряд идущих свободных слотов не хватает
	ErrNotEnoughFreeSlots = errors.New("not enough consecutive free slots")

	// ErrSlotNotInGrid возвращается при выборе слота, которого нет в сетке
	ErrSlotNotInGrid = errors.New("slot not present in grid")

	// ErrServiceAlreadyAdded возвращается при повторном добавлении услуги
	ErrServiceAlreadyAdded = errors.New("service already added to session")

	// ErrServiceNotInSession возвращается при операции над услугой, которой нет в сессии
	ErrServiceNotInSession = errors.New("service not present in session")

	// ErrInvalidQuantity возвращается при недопустимом количестве услуги
	ErrInvalidQuantity = errors.New("service quantity must be a positive integer")

	// ErrNoSlotSelected возвращается при подтверждении новой даты без выбранного слота
	ErrNoSlotSelected = errors.New("no slot selected for the new date")

	// ErrNoChanges возвращается при попытке отправить сессию без изменений
	ErrNoChanges = errors.New("session has no changes to submit")

	// ErrChangeRejected возвращается, когда бэкенд отклонил запрос на изменение
	ErrChangeRejected = errors.New("shop backend rejected the change request")

	// ErrShopUnavailable возвращается при недоступности бэкенда магазинов
	ErrShopUnavailable = errors.New("shop backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions service: internal error")
)
