package session_services

import (
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// AddServiceRequest HTTP request model.
// Имя и длительность берутся из каталога услуг, который клиент
// получил при открытии сессии
type AddServiceRequest struct {
	ServiceID       int64  `json:"serviceId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToDomainLine конвертирует запрос в доменную строку услуги
func (r *AddServiceRequest) ToDomainLine() domain.ServiceLine {
	return domain.ServiceLine{
		ServiceID:       r.ServiceID,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Quantity:        1,
	}
}

// SetQuantityRequest HTTP request model.
// Количество приходит строкой как есть из поля ввода: пустая строка
// означает незавершенный ввод и не трогает сессию
type SetQuantityRequest struct {
	Quantity string `json:"quantity"`
}
