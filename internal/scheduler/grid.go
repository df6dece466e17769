package scheduler

import (
	"sort"

	"github.com/avdeez/Shop-SchedulerService/internal/domain"
	"github.com/avdeez/Shop-SchedulerService/pkg/types"
)

// BuildGrid строит упорядоченную сетку слотов по рабочим интервалам дня.
// Слоты генерируются с фиксированным шагом domain.SlotGranularityMinutes,
// конец интервала не включается: интервал 09:00-11:00 дает слоты
// 09:00 и 10:00. Слот помечается занятым, если его начало попадает в
// одно из окон занятости [start, end).
//
// Если рабочих интервалов нет (или все они вырожденные) - возвращается
// ErrNoWorkingHours: это отдельный случай "в этот день магазин не
// работает", а не пустой список свободных слотов
func BuildGrid(intervals []domain.WorkingInterval, occupied []domain.ReservationWindow) ([]domain.TimeSlot, error) {
	sorted := make([]domain.WorkingInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Open.IsBefore(sorted[j].Open)
	})

	grid := make([]domain.TimeSlot, 0)

	for _, interval := range sorted {
		slots, err := intervalSlots(interval)
		if err != nil {
			return nil, err
		}
		for _, start := range slots {
			status := domain.SlotFree
			if isOccupied(start, occupied) {
				status = domain.SlotOccupied
			}
			grid = append(grid, domain.TimeSlot{Time: start, Status: status})
		}
	}

	if len(grid) == 0 {
		return nil, ErrNoWorkingHours
	}

	return grid, nil
}

// intervalSlots генерирует начала слотов внутри одного рабочего интервала.
// Слот входит в сетку, только если помещается в интервал целиком
func intervalSlots(interval domain.WorkingInterval) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := interval.Open

	for current.IsBefore(interval.Close) {
		slotEnd, err := current.AddMinutes(domain.SlotGranularityMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(interval.Close) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}

// isOccupied проверяет, накрывает ли начало слота хотя бы одно окно занятости
func isOccupied(slotStart types.TimeString, occupied []domain.ReservationWindow) bool {
	for _, w := range occupied {
		if w.Contains(slotStart) {
			return true
		}
	}
	return false
}
