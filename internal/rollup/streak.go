package rollup

// Streak counts consecutive active days going backward from the most recent one.
func Streak[A any](days []Day[A], isActive func(A) bool) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if !isActive(days[i].Value) {
			break
		}
		streak++
	}
	return streak
}
