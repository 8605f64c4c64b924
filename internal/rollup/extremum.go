package rollup

// Extremum is the window day holding the maximal value of a metric.
type Extremum struct {
	DayKey DayKey  `json:"date"`
	Value  float64 `json:"value"`
}

// Argmax returns the day with the highest metric, or nil for an empty series.
// Comparison is strictly greater-than, so the earliest day wins ties; an
// all-zero window therefore reports its first day with value 0.
func Argmax[A any](days []Day[A], metricOf func(A) float64) *Extremum {
	i := argmaxIndex(days, metricOf)
	if i < 0 {
		return nil
	}
	return &Extremum{
		DayKey: days[i].Key,
		Value:  metricOf(days[i].Value),
	}
}

// BestDay is like Argmax, but hands back the whole winning day.
func BestDay[A any](days []Day[A], metricOf func(A) float64) (Day[A], bool) {
	i := argmaxIndex(days, metricOf)
	if i < 0 {
		return Day[A]{}, false
	}
	return days[i], true
}

func argmaxIndex[A any](days []Day[A], metricOf func(A) float64) int {
	if len(days) == 0 {
		return -1
	}
	best, bestValue := 0, metricOf(days[0].Value)
	for i := 1; i < len(days); i++ {
		if v := metricOf(days[i].Value); v > bestValue {
			best, bestValue = i, v
		}
	}
	return best
}
