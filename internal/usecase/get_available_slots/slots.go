package get_available_slots

import (
	"time"

	"github.com/mtrevino/BarberPro-SchedulingService/internal/domain"
	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// generateCandidates генерирует времена начала кандидатов в минутах от
// полуночи: opensAt, opensAt+granularity, ... пока кандидат вместе с
// длительностью услуги умещается до закрытия (start+duration <= closesAt)
// Граница включительна: услуга, заканчивающаяся ровно в закрытие, допустима
func generateCandidates(span domain.Interval, granularity, duration int) []int {
	candidates := make([]int, 0)
	for start := span.Start; start+duration <= span.End; start += granularity {
		candidates = append(candidates, start)
	}
	return candidates
}

// evaluateSlots помечает каждого кандидата доступным, если его интервал
// [start, start+duration) не пересекается ни с одним элементом занятости
// и не находится в прошлом (только для сегодняшней даты, с точностью до
// минуты; будущие даты прошлыми не считаются)
func evaluateSlots(candidates []int, duration int, occupancy []domain.Interval, requestDate, now time.Time) ([]Slot, error) {
	pastCutoff := -1
	if domain.SameDay(requestDate, now) {
		pastCutoff = now.Hour()*60 + now.Minute()
	}

	slots := make([]Slot, 0, len(candidates))
	for _, start := range candidates {
		startTime, err := types.FromMinutes(start)
		if err != nil {
			return nil, err
		}

		candidate := domain.Interval{Start: start, End: start + duration}
		available := !domain.HasConflict(occupancy, candidate) && start >= pastCutoff

		slots = append(slots, Slot{
			StartTime: startTime,
			Available: available,
		})
	}

	return slots, nil
}
