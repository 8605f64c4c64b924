package rollup

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey identifies one local calendar day, formatted as YYYY-MM-DD.
// Lexicographic order of keys equals chronological order.
type DayKey string

// ToDayKey returns the key of the local calendar day t falls on.
// The host's local time zone is used for every conversion.
func ToDayKey(t time.Time) DayKey {
	return DayKey(t.In(time.Local).Format(dayKeyLayout))
}

// Today returns the key of the current local day.
func Today() DayKey {
	return ToDayKey(time.Now())
}

func ParseDayKey(s string) (DayKey, error) {
	t, err := time.ParseInLocation(dayKeyLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse day key [%s]: %w", s, err)
	}
	return ToDayKey(t), nil
}

// Time returns local midnight of the day. Malformed keys yield the zero time.
func (k DayKey) Time() time.Time {
	t, err := time.ParseInLocation(dayKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays moves the key by n calendar days, DST-safe.
func (k DayKey) AddDays(n int) DayKey {
	t := k.Time()
	return ToDayKey(time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, time.Local))
}

func (k DayKey) String() string {
	return string(k)
}
