package services

import (
	"fmt"
	"sort"

	"delivery-pricing/internal/apperror"
	"delivery-pricing/internal/models"
)

// ResolveFeeRange находит тариф (a, b) для расстояния в метрах.
// Диапазоны сортируются по (max == 0, max): запись с max == 0 — маркер
// "за пределами доставки" и всегда уходит в конец. Поиск — бинарный, по
// первому диапазону с max >= distance; границы min и max включительны.
// Попадание в маркерную запись означает, что доставка невозможна.
func ResolveFeeRange(distance int, ranges []models.DistanceRange) (a, b int, err error) {
	if len(ranges) == 0 {
		return 0, 0, apperror.MalformedSpec("delivery spec has no distance ranges", nil)
	}

	sorted := sortedSchedule(ranges)

	finite := sorted
	for len(finite) > 0 && finite[len(finite)-1].Max == 0 {
		finite = finite[:len(finite)-1]
	}
	if len(finite) == 0 {
		return 0, 0, apperror.MalformedSpec("delivery spec has no bounded distance ranges", nil)
	}

	idx := sort.Search(len(finite), func(i int) bool {
		return finite[i].Max >= distance
	})
	if idx == len(finite) {
		maxDeliverable := finite[len(finite)-1].Max
		return 0, 0, apperror.Undeliverable(
			fmt.Sprintf("delivery is not possible, distance is out of delivery range: you should be within %d meters", maxDeliverable),
			nil,
		)
	}

	return finite[idx].A, finite[idx].B, nil
}

// sortedSchedule возвращает копию диапазонов в каноническом порядке
func sortedSchedule(ranges []models.DistanceRange) []models.DistanceRange {
	sorted := make([]models.DistanceRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		if (sorted[i].Max == 0) != (sorted[j].Max == 0) {
			return sorted[j].Max == 0
		}
		return sorted[i].Max < sorted[j].Max
	})
	return sorted
}
