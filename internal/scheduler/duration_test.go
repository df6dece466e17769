package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
)

func TestTotalDurationMinutes(t *testing.T) {
	lines := []domain.ServiceLine{
		{ServiceID: 1, DurationMinutes: 45, Quantity: 2},
		{ServiceID: 2, DurationMinutes: 35, Quantity: 1},
	}

	assert.Equal(t, 125, TotalDurationMinutes(lines))
}

func TestTotalDurationMinutes_OrderIndependent(t *testing.T) {
	a := []domain.ServiceLine{
		{ServiceID: 1, DurationMinutes: 30, Quantity: 1},
		{ServiceID: 2, DurationMinutes: 60, Quantity: 2},
		{ServiceID: 3, DurationMinutes: 15, Quantity: 3},
	}
	b := []domain.ServiceLine{a[2], a[0], a[1]}

	assert.Equal(t, TotalDurationMinutes(a), TotalDurationMinutes(b))
}

func TestTotalDurationMinutes_IgnoresNonPositive(t *testing.T) {
	lines := []domain.ServiceLine{
		{ServiceID: 1, DurationMinutes: 0, Quantity: 5},
		{ServiceID: 2, DurationMinutes: -30, Quantity: 1},
		{ServiceID: 3, DurationMinutes: 60, Quantity: 0},
		{ServiceID: 4, DurationMinutes: 40, Quantity: 1},
	}

	assert.Equal(t, 40, TotalDurationMinutes(lines))
}

func TestTotalDurationMinutes_Empty(t *testing.T) {
	assert.Equal(t, 0, TotalDurationMinutes(nil))
	assert.Equal(t, 0, TotalDurationMinutes([]domain.ServiceLine{}))
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{"zero", 0, 0},
		{"negative", -10, 0},
		{"exact hour", 60, 1},
		{"just over an hour", 61, 2},
		{"125 minutes", 125, 3},
		{"two exact hours", 120, 2},
		{"short service", 15, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsNeeded(tt.minutes))
		})
	}
}
