package shopapi

// WorkingHours рабочий интервал магазина на день
type WorkingHours struct {
	Open  string `json:"open"`  // HH:MM
	Close string `json:"close"` // HH:MM
}

// AppointmentSlot занятость по существующей заявке на запрошенную дату
type AppointmentSlot struct {
	ID                   int64  `json:"id"`
	Time                 string `json:"time"` // HH:MM
	TotalServiceMinutes  int    `json:"total_service_time"`
	Status               string `json:"status"`
}

// DaySchedule расписание магазина на дату: рабочие интервалы и занятость
type DaySchedule struct {
	WorkingHours []WorkingHours    `json:"working_hours"`
	Appointments []AppointmentSlot `json:"appointments"`
}

// ServiceItem услуга из каталога магазина
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// AppointmentService строка услуги внутри заявки
type AppointmentService struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Quantity        int    `json:"quantity"`
}

// Appointment заявка клиента, как ее отдает бэкенд
type Appointment struct {
	ID              int64                `json:"id"`
	ShopUsername    string               `json:"shop_username"`
	ClientName      string               `json:"client_name"`
	ClientEmail     string               `json:"client_email"`
	PhoneNumber     string               `json:"phone_number"`
	Date            string               `json:"date"` // YYYY-MM-DD
	Time            string               `json:"time"` // HH:MM
	Services        []AppointmentService `json:"services"`
	Status          string               `json:"status"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
}

// VerifyOTPResult результат подтверждения кода: заявка клиента и каталог
// услуг магазина для редактирования
type VerifyOTPResult struct {
	Appointment       Appointment   `json:"appointment"`
	AvailableServices []ServiceItem `json:"available_services"`
}

// ReserveServiceLine строка услуги в запросе на бронирование
type ReserveServiceLine struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// ReserveRequest запрос на создание новой заявки
type ReserveRequest struct {
	ClientName  string               `json:"client_name"`
	ClientEmail string               `json:"client_email"`
	PhoneNumber string               `json:"phone_number"`
	Services    []ReserveServiceLine `json:"services"`
	Date        string               `json:"date"` // "YYYY-MM-DD HH:MM"
}

// ChangeRequest запрос на изменение существующей заявки
type ChangeRequest struct {
	AppointmentID             int64                `json:"appointment_id"`
	ClientName                string               `json:"client_name"`
	ClientEmail               string               `json:"client_email"`
	PhoneNumber               string               `json:"phone_number"`
	RequestedDate             *string              `json:"requested_date,omitempty"` // YYYY-MM-DD
	RequestedTime             *string              `json:"requested_time,omitempty"` // HH:MM
	RequestedServices         []ReserveServiceLine `json:"requested_service,omitempty"`
	RequestedTotalServiceTime *int                 `json:"requested_total_service_time,omitempty"`
	RequestedNumServices      *int                 `json:"requested_num_services,omitempty"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Error string `json:"error"`
}
