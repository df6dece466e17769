package scheduler

import "github.com/avdeez/Shop-SchedulerService/internal/domain"

// TotalDurationMinutes суммирует длительность выбранных услуг с учетом количества.
// Строки с неположительной длительностью или количеством не вносят вклада,
// порядок строк на результат не влияет
func TotalDurationMinutes(lines []domain.ServiceLine) int {
	total := 0
	for _, l := range lines {
		total += l.TotalMinutes()
	}
	return total
}

// SlotsNeeded возвращает количество часовых слотов, необходимых для
// размещения totalMinutes (округление вверх). Нулевая длительность
// не требует ни одного слота
func SlotsNeeded(totalMinutes int) int {
	if totalMinutes <= 0 {
		return 0
	}
	return (totalMinutes + domain.SlotGranularityMinutes - 1) / domain.SlotGranularityMinutes
}
