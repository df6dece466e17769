package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

func interval(open, close string) domain.WorkingInterval {
	return domain.WorkingInterval{
		Open:  types.TimeString(open),
		Close: types.TimeString(close),
	}
}

func gridTimes(grid []domain.TimeSlot) []string {
	out := make([]string, len(grid))
	for i, s := range grid {
		out[i] = s.Time.String()
	}
	return out
}

func TestBuildGrid_EndExclusive(t *testing.T) {
	grid, err := BuildGrid([]domain.WorkingInterval{interval("09:00", "11:00")}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00"}, gridTimes(grid))
	for _, s := range grid {
		assert.Equal(t, domain.SlotFree, s.Status)
	}
}

func TestBuildGrid_NoWorkingHours(t *testing.T) {
	_, err := BuildGrid(nil, nil)
	require.ErrorIs(t, err, ErrNoWorkingHours)

	// Вырожденный интервал тоже не дает ни одного слота
	_, err = BuildGrid([]domain.WorkingInterval{interval("12:00", "12:00")}, nil)
	require.ErrorIs(t, err, ErrNoWorkingHours)
}

func TestBuildGrid_PartialSlotDropped(t *testing.T) {
	// 09:00-10:30: слот 10:00 не помещается целиком
	grid, err := BuildGrid([]domain.WorkingInterval{interval("09:00", "10:30")}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00"}, gridTimes(grid))
}

func TestBuildGrid_MultipleIntervalsSorted(t *testing.T) {
	grid, err := BuildGrid([]domain.WorkingInterval{
		interval("14:00", "16:00"),
		interval("09:00", "12:00"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00", "15:00"}, gridTimes(grid))
}

func TestBuildGrid_ShortBookingOccupiesOnlyItsSlot(t *testing.T) {
	// Бронь на 30 минут в 10:00 занимает только слот 10:00
	occupied := []domain.ReservationWindow{
		domain.NewReservationWindow("10:00", 30),
	}

	grid, err := BuildGrid([]domain.WorkingInterval{interval("09:00", "12:00")}, occupied)
	require.NoError(t, err)

	require.Equal(t, []string{"09:00", "10:00", "11:00"}, gridTimes(grid))
	assert.Equal(t, domain.SlotFree, grid[0].Status)
	assert.Equal(t, domain.SlotOccupied, grid[1].Status)
	assert.Equal(t, domain.SlotFree, grid[2].Status)
}

func TestBuildGrid_LongBookingSpillsIntoNextSlot(t *testing.T) {
	// Бронь на 90 минут в 10:00 занимает слоты 10:00 и 11:00
	occupied := []domain.ReservationWindow{
		domain.NewReservationWindow("10:00", 90),
	}

	grid, err := BuildGrid([]domain.WorkingInterval{interval("09:00", "13:00")}, occupied)
	require.NoError(t, err)

	require.Equal(t, []string{"09:00", "10:00", "11:00", "12:00"}, gridTimes(grid))
	assert.Equal(t, domain.SlotFree, grid[0].Status)
	assert.Equal(t, domain.SlotOccupied, grid[1].Status)
	assert.Equal(t, domain.SlotOccupied, grid[2].Status)
	assert.Equal(t, domain.SlotFree, grid[3].Status)
}

func TestBuildGrid_WindowEndIsExclusive(t *testing.T) {
	// Бронь 09:00-10:00 не блокирует слот 10:00
	occupied := []domain.ReservationWindow{
		domain.NewReservationWindow("09:00", 60),
	}

	grid, err := BuildGrid([]domain.WorkingInterval{interval("09:00", "11:00")}, occupied)
	require.NoError(t, err)

	assert.Equal(t, domain.SlotOccupied, grid[0].Status)
	assert.Equal(t, domain.SlotFree, grid[1].Status)
}
