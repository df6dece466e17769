package scheduler

import "errors"

var (
	// ErrNoWorkingHours возвращается, когда на дату нет рабочих интервалов
	ErrNoWorkingHours = errors.New("scheduler: no working hours for the requested date")

	// ErrSlotNotInGrid возвращается при клике по слоту, отсутствующему в сетке
	ErrSlotNotInGrid = errors.New("scheduler: slot not present in grid")

	// ErrSlotOccupied возвращается при клике по занятому слоту
	ErrSlotOccupied = errors.New("scheduler: slot already reserved")

	// ErrNotEnoughConsecutive возвращается, когда подряд идущих свободных
	// слотов не хватает для размещения выбранных услуг
	ErrNotEnoughConsecutive = errors.New("scheduler: not enough consecutive free slots")
)
