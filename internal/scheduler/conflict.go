package scheduler

import (
	"time"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

// OccupiedWindows строит окна занятости для сетки на дату date.
// Учитываются только активные заявки этой даты; заявка с идентификатором
// excludeAppointmentID пропускается - при редактировании собственная
// заявка клиента не должна блокировать слоты, которые она же занимает.
// excludeAppointmentID = 0 означает "ничего не исключать"
func OccupiedWindows(appointments []domain.Appointment, date time.Time, excludeAppointmentID int64) []domain.ReservationWindow {
	windows := make([]domain.ReservationWindow, 0, len(appointments))

	for i := range appointments {
		a := &appointments[i]
		if !a.IsActive() {
			continue
		}
		if !domain.SameDay(a.Date, date) {
			continue
		}
		if excludeAppointmentID != 0 && a.ID == excludeAppointmentID {
			continue
		}

		w := a.Window()
		if w.IsEmpty() {
			continue
		}
		windows = append(windows, w)
	}

	return windows
}
