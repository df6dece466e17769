package start_edit_session

// Request запрос на создание сессии редактирования по коду подтверждения
type Request struct {
	PhoneNumber string
	OTPCode     string
}

// ServiceItemResponse услуга из каталога магазина
type ServiceItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceLineResponse строка услуги заявки
type ServiceLineResponse struct {
	ServiceID       int64  `json:"serviceId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

// Response созданная сессия и каталог услуг магазина
type Response struct {
	Token         string `json:"token"`
	State         string `json:"state"`
	ShopUsername  string `json:"shopUsername"`
	AppointmentID int64  `json:"appointmentId"`
	ClientName    string `json:"clientName"`

	Date     string                `json:"date"` // "2025-10-15"
	Time     string                `json:"time"` // "10:00"
	Services []ServiceLineResponse `json:"services"`

	AvailableServices []ServiceItemResponse `json:"availableServices"`
}
