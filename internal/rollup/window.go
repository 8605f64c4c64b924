package rollup

import (
	"errors"
	"fmt"
	"time"
)

const DefaultWindowSize = 7

var ErrInvalidWindowSize = errors.New("invalid window size")

// Window is an ordered, gap-free run of day keys, oldest first.
type Window []DayKey

// BuildWindow returns size day keys ending at (and including) the local day of ref.
// Days are subtracted on date components, never as 24h periods, so DST
// transitions cannot skip or repeat a day.
func BuildWindow(ref time.Time, size int) (Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindowSize, size)
	}

	ref = ref.In(time.Local)
	y, m, d := ref.Date()

	w := make(Window, size)
	for i := 0; i < size; i++ {
		// noon keeps us clear of midnight DST gaps
		day := time.Date(y, m, d-(size-1-i), 12, 0, 0, 0, time.Local)
		w[i] = ToDayKey(day)
	}
	return w, nil
}

func (w Window) First() DayKey {
	if len(w) == 0 {
		return ""
	}
	return w[0]
}

func (w Window) Last() DayKey {
	if len(w) == 0 {
		return ""
	}
	return w[len(w)-1]
}

// Index returns the position of key in the window, or -1.
func (w Window) Index(key DayKey) int {
	if len(w) == 0 || key < w[0] || key > w[len(w)-1] {
		return -1
	}
	for i, k := range w {
		if k == key {
			return i
		}
	}
	return -1
}

func (w Window) Contains(key DayKey) bool {
	return w.Index(key) >= 0
}

// Bounds returns the local time range covered by the window: [first midnight, day after last midnight).
func (w Window) Bounds() (from, to time.Time) {
	if len(w) == 0 {
		return time.Time{}, time.Time{}
	}
	return w.First().Time(), w.Last().AddDays(1).Time()
}
