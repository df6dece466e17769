package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

func freeGrid(times ...string) []domain.TimeSlot {
	grid := make([]domain.TimeSlot, len(times))
	for i, ts := range times {
		grid[i] = domain.TimeSlot{Time: types.TimeString(ts), Status: domain.SlotFree}
	}
	return grid
}

func TestSelect_MarksRun(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00", "12:00")

	start, updated, err := Select(grid, "10:00", 2, "")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, domain.SlotFree, updated[0].Status)
	assert.Equal(t, domain.SlotBooked, updated[1].Status)
	assert.Equal(t, domain.SlotBooked, updated[2].Status)
	assert.Equal(t, domain.SlotFree, updated[3].Status)
}

func TestSelect_AnchorToggleOff(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")
	grid[1].Status = domain.SlotBooked
	grid[2].Status = domain.SlotBooked

	start, updated, err := Select(grid, "10:00", 2, "10:00")
	require.NoError(t, err)

	assert.True(t, start.IsZero())
	for _, s := range updated {
		assert.Equal(t, domain.SlotFree, s.Status)
	}
}

func TestSelect_OccupiedSlotRejected(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")
	grid[1].Status = domain.SlotOccupied

	_, updated, err := Select(grid, "10:00", 1, "")
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Nil(t, updated)
}

func TestSelect_TruncatedRunRejected(t *testing.T) {
	grid := freeGrid("09:00", "10:00")

	// Нужно 3 слота, доступно только 2 от 09:00
	_, updated, err := Select(grid, "09:00", 3, "")
	require.ErrorIs(t, err, ErrNotEnoughConsecutive)
	assert.Nil(t, updated)

	// Исходная сетка не изменилась
	for _, s := range grid {
		assert.Equal(t, domain.SlotFree, s.Status)
	}
}

func TestSelect_BlockedRunRejected(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")
	grid[1].Status = domain.SlotOccupied

	_, updated, err := Select(grid, "09:00", 2, "")
	require.ErrorIs(t, err, ErrNotEnoughConsecutive)
	assert.Nil(t, updated)
	assert.Equal(t, domain.SlotOccupied, grid[1].Status)
}

func TestSelect_GapBetweenIntervalsBreaksRun(t *testing.T) {
	// 11:00 -> 14:00: разрыв на обед, окно из двух слотов не помещается
	grid := freeGrid("10:00", "11:00", "14:00")

	_, _, err := Select(grid, "11:00", 2, "")
	require.ErrorIs(t, err, ErrNotEnoughConsecutive)
}

func TestSelect_ReplacesPriorSelection(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00", "12:00")
	grid[0].Status = domain.SlotBooked
	grid[1].Status = domain.SlotBooked

	start, updated, err := Select(grid, "11:00", 2, "09:00")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("11:00"), start)
	assert.Equal(t, domain.SlotFree, updated[0].Status)
	assert.Equal(t, domain.SlotFree, updated[1].Status)
	assert.Equal(t, domain.SlotBooked, updated[2].Status)
	assert.Equal(t, domain.SlotBooked, updated[3].Status)
}

func TestSelect_ReanchorsInsideOwnRun(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")
	grid[0].Status = domain.SlotBooked
	grid[1].Status = domain.SlotBooked

	// Клик по второму слоту собственного окна - не якорь, выбор переносится
	start, updated, err := Select(grid, "10:00", 2, "09:00")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), start)
	assert.Equal(t, domain.SlotFree, updated[0].Status)
	assert.Equal(t, domain.SlotBooked, updated[1].Status)
	assert.Equal(t, domain.SlotBooked, updated[2].Status)
}

func TestSelect_UnknownSlot(t *testing.T) {
	grid := freeGrid("09:00", "10:00")

	_, _, err := Select(grid, "13:00", 1, "")
	require.ErrorIs(t, err, ErrSlotNotInGrid)
}

func TestSelect_ZeroSlotsNeededTakesOne(t *testing.T) {
	grid := freeGrid("09:00", "10:00")

	start, updated, err := Select(grid, "09:00", 0, "")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), start)
	assert.Equal(t, domain.SlotBooked, updated[0].Status)
	assert.Equal(t, domain.SlotFree, updated[1].Status)
}

func TestOverlay_RestoresSelection(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")

	updated, ok := Overlay(grid, "10:00", 2)
	require.True(t, ok)

	assert.Equal(t, domain.SlotFree, updated[0].Status)
	assert.Equal(t, domain.SlotBooked, updated[1].Status)
	assert.Equal(t, domain.SlotBooked, updated[2].Status)
}

func TestOverlay_InvalidatedByNewBooking(t *testing.T) {
	grid := freeGrid("09:00", "10:00", "11:00")
	grid[2].Status = domain.SlotOccupied

	updated, ok := Overlay(grid, "10:00", 2)
	assert.False(t, ok)
	assert.Equal(t, grid, updated)
}

func TestOverlay_NoSelection(t *testing.T) {
	grid := freeGrid("09:00", "10:00")

	updated, ok := Overlay(grid, "", 2)
	assert.True(t, ok)
	assert.Equal(t, grid, updated)
}
