package scheduler

import (
	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// Select применяет клик клиента по слоту clicked к сетке и возвращает
// новое начало выбранного окна и обновленную сетку.
//
// Семантика клика:
//   - клик по якорю текущего выбора снимает выбор (возвращается пустое начало);
//   - клик по занятому слоту отклоняется с ErrSlotOccupied;
//   - если подряд идущих свободных слотов от clicked не хватает на
//     slotsNeeded (сетка кончилась, попался занятый слот или между
//     слотами разрыв рабочих интервалов) - ErrNotEnoughConsecutive;
//   - иначе предыдущий выбор снимается и окно [clicked, clicked+slotsNeeded)
//     помечается выбранным, с якорем в месте клика.
//
// При любой ошибке сетка не изменяется (возвращается nil)
func Select(
	grid []domain.TimeSlot,
	clicked types.TimeString,
	slotsNeeded int,
	currentStart types.TimeString,
) (types.TimeString, []domain.TimeSlot, error) {
	idx := indexOf(grid, clicked)
	if idx < 0 {
		return "", nil, ErrSlotNotInGrid
	}

	// Повторный клик по якорю выбора - снимаем выбор
	if !currentStart.IsZero() && clicked == currentStart {
		return "", clearSelection(grid), nil
	}

	if grid[idx].IsOccupied() {
		return "", nil, ErrSlotOccupied
	}

	if slotsNeeded < 1 {
		slotsNeeded = 1
	}

	if err := checkRun(grid, idx, slotsNeeded); err != nil {
		return "", nil, err
	}

	updated := clearSelection(grid)
	for i := idx; i < idx+slotsNeeded; i++ {
		updated[i].Status = domain.SlotBooked
	}

	return clicked, updated, nil
}

// Overlay накладывает сохраненный выбор на свежепостроенную сетку.
// Возвращает false, если выбор больше не помещается (слоты заняты,
// исчезли из сетки или окно разрывается) - в этом случае сетка
// возвращается без изменений и выбор следует сбросить
func Overlay(grid []domain.TimeSlot, start types.TimeString, slotsNeeded int) ([]domain.TimeSlot, bool) {
	if start.IsZero() {
		return grid, true
	}

	idx := indexOf(grid, start)
	if idx < 0 {
		return grid, false
	}
	if slotsNeeded < 1 {
		slotsNeeded = 1
	}
	if err := checkRun(grid, idx, slotsNeeded); err != nil {
		return grid, false
	}

	updated := clearSelection(grid)
	for i := idx; i < idx+slotsNeeded; i++ {
		updated[i].Status = domain.SlotBooked
	}
	return updated, true
}

// checkRun проверяет, что от idx идут slotsNeeded свободных слотов без
// разрывов по времени
func checkRun(grid []domain.TimeSlot, idx, slotsNeeded int) error {
	if idx+slotsNeeded > len(grid) {
		return ErrNotEnoughConsecutive
	}

	for i := idx; i < idx+slotsNeeded; i++ {
		if grid[i].IsOccupied() {
			return ErrNotEnoughConsecutive
		}
		if i > idx {
			expected, err := grid[i-1].Time.AddMinutes(domain.SlotGranularityMinutes)
			if err != nil || grid[i].Time != expected {
				// Разрыв между рабочими интервалами (например, обед)
				return ErrNotEnoughConsecutive
			}
		}
	}

	return nil
}

// clearSelection возвращает копию сетки со снятым выбором
func clearSelection(grid []domain.TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(grid))
	copy(out, grid)
	for i := range out {
		if out[i].Status == domain.SlotBooked {
			out[i].Status = domain.SlotFree
		}
	}
	return out
}

func indexOf(grid []domain.TimeSlot, t types.TimeString) int {
	for i := range grid {
		if grid[i].Time == t {
			return i
		}
	}
	return -1
}
