package get_slot_grid

import "time"

// Request запрос сетки слотов магазина на дату.
// SessionToken передается в сценарии редактирования заявки: собственная
// заявка сессии исключается из занятости, а текущий выбор накладывается
// на сетку
type Request struct {
	ShopUsername string
	Date         time.Time
	SessionToken *string
}

// SlotResponse один слот сетки
type SlotResponse struct {
	Time   string `json:"time"`   // "10:00"
	Status string `json:"status"` // free | occupied | booked
}

// Response сетка слотов на дату
type Response struct {
	ShopUsername string         `json:"shopUsername"`
	Date         string         `json:"date"` // "2025-10-15"
	Slots        []SlotResponse `json:"slots"`
	SlotsNeeded  int            `json:"slotsNeeded"`
	SelectedTime string         `json:"selectedTime,omitempty"`
}
