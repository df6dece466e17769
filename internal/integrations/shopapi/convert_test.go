package shopapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

func scheduleDate() time.Time {
	return time.Date(2026, 3, 12, 0, 0, 0, 0, domain.BusinessZone)
}

func TestToDomain_WindowsFromActiveAppointments(t *testing.T) {
	schedule := &DaySchedule{
		WorkingHours: []WorkingHours{{Open: "09:00", Close: "18:00"}},
		Appointments: []AppointmentSlot{
			{ID: 1, Time: "10:00", TotalServiceMinutes: 90, Status: "Approved"},
			{ID: 2, Time: "13:00", TotalServiceMinutes: 60, Status: "Cancelled"},
			{ID: 3, Time: "15:00", TotalServiceMinutes: 30, Status: "Pending"},
		},
	}

	intervals, windows, err := schedule.ToDomain(scheduleDate(), 0)
	require.NoError(t, err)

	require.Len(t, intervals, 1)
	assert.Equal(t, types.TimeString("09:00"), intervals[0].Open)

	// Отмененная заявка окна не создает
	require.Len(t, windows, 2)
	assert.Equal(t, types.TimeString("10:00"), windows[0].Start)
	assert.Equal(t, types.TimeString("11:30"), windows[0].End)
	assert.Equal(t, types.TimeString("15:00"), windows[1].Start)
}

func TestToDomain_ExcludesOwnAppointment(t *testing.T) {
	schedule := &DaySchedule{
		WorkingHours: []WorkingHours{{Open: "09:00", Close: "18:00"}},
		Appointments: []AppointmentSlot{
			{ID: 42, Time: "10:00", TotalServiceMinutes: 60, Status: "Approved"},
			{ID: 7, Time: "12:00", TotalServiceMinutes: 60, Status: "Approved"},
		},
	}

	_, windows, err := schedule.ToDomain(scheduleDate(), 42)
	require.NoError(t, err)

	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("12:00"), windows[0].Start)
}

func TestToDomain_ZeroDurationSkipped(t *testing.T) {
	schedule := &DaySchedule{
		WorkingHours: []WorkingHours{{Open: "09:00", Close: "18:00"}},
		Appointments: []AppointmentSlot{
			{ID: 1, Time: "10:00", TotalServiceMinutes: 0, Status: "Approved"},
		},
	}

	_, windows, err := schedule.ToDomain(scheduleDate(), 0)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestToDomain_MalformedTimeRejected(t *testing.T) {
	schedule := &DaySchedule{
		WorkingHours: []WorkingHours{{Open: "09:00", Close: "18:00"}},
		Appointments: []AppointmentSlot{
			{ID: 1, Time: "10-00", TotalServiceMinutes: 60, Status: "Approved"},
		},
	}

	_, _, err := schedule.ToDomain(scheduleDate(), 0)
	require.ErrorIs(t, err, ErrInvalidResponse)
}
