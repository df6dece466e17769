package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

func appointment(id int64, date time.Time, start string, minutes int, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:        id,
		Date:      date,
		StartTime: types.TimeString(start),
		Services: []domain.ServiceLine{
			{ServiceID: 1, DurationMinutes: minutes, Quantity: 1},
		},
		Status: status,
	}
}

func TestOccupiedWindows_FiltersByDateAndStatus(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, domain.BusinessZone)
	otherDay := day.AddDate(0, 0, 1)

	appointments := []domain.Appointment{
		appointment(1, day, "10:00", 60, domain.AppointmentPending),
		appointment(2, day, "12:00", 60, domain.AppointmentCancelled),
		appointment(3, otherDay, "10:00", 60, domain.AppointmentApproved),
	}

	windows := OccupiedWindows(appointments, day, 0)
	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("10:00"), windows[0].Start)
	assert.Equal(t, types.TimeString("11:00"), windows[0].End)
}

func TestOccupiedWindows_ExcludesOwnAppointment(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, domain.BusinessZone)

	appointments := []domain.Appointment{
		appointment(7, day, "10:00", 120, domain.AppointmentApproved),
		appointment(8, day, "14:00", 60, domain.AppointmentPending),
	}

	// При редактировании заявки 7 ее собственное окно не блокирует сетку
	windows := OccupiedWindows(appointments, day, 7)
	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("14:00"), windows[0].Start)
}

func TestOccupiedWindows_SkipsEmptyWindows(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, domain.BusinessZone)

	appointments := []domain.Appointment{
		appointment(1, day, "10:00", 0, domain.AppointmentPending),
	}

	windows := OccupiedWindows(appointments, day, 0)
	assert.Empty(t, windows)
}
