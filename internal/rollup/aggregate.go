package rollup

// Day holds the aggregate of one window day.
type Day[A any] struct {
	Key   DayKey
	Value A
}

// Aggregate folds entries into exactly one record per window day, in window order.
// Every day is seeded with zero; entries whose key is outside the window are ignored.
// reduce is applied in input order.
func Aggregate[E, A any](
	w Window,
	entries []E,
	keyOf func(E) DayKey,
	reduce func(A, E) A,
	zero A,
) []Day[A] {
	days := make([]Day[A], len(w))
	pos := make(map[DayKey]int, len(w))
	for i, k := range w {
		days[i] = Day[A]{Key: k, Value: zero}
		pos[k] = i
	}

	for _, e := range entries {
		i, ok := pos[keyOf(e)]
		if !ok {
			continue
		}
		days[i].Value = reduce(days[i].Value, e)
	}

	return days
}

// Values strips the keys off an aggregated series.
func Values[A any](days []Day[A]) []A {
	values := make([]A, len(days))
	for i := range days {
		values[i] = days[i].Value
	}
	return values
}
