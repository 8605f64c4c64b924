package activity

import (
	"fmt"
	"math"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/rollup"
)

const Feature = "activity"

// Upper bounds of a single entry.
const (
	MaxSteps    = 1_000_000
	MaxMinutes  = 24 * 60
	MaxCalories = 100_000
)

// Day is one logged activity entry. A day may have several entries; they are summed.
type Day struct {
	ID       int           `json:"id"`
	OwnerID  string        `json:"ownerId"`
	Date     rollup.DayKey `json:"date"`
	Steps    int           `json:"steps"`
	Minutes  int           `json:"minutes"`
	Calories int           `json:"calories"`
}

func (d Day) DayKey() rollup.DayKey {
	return d.Date
}

func (d Day) WithID(id int) Day {
	d.ID = id
	return d
}

// AddRequest is the loosely typed body of a new activity entry.
type AddRequest struct {
	Date     string  `json:"date"`
	Steps    float64 `json:"steps"`
	Minutes  float64 `json:"minutes"`
	Calories float64 `json:"calories"`
}

// Normalize validates the request and turns it into a Day. Missing metrics are 0,
// a missing date is today.
func Normalize(owner string, req AddRequest) (Day, error) {
	if err := feature.FirstError(
		feature.Bounded("steps", req.Steps, MaxSteps),
		feature.Bounded("minutes", req.Minutes, MaxMinutes),
		feature.Bounded("calories", req.Calories, MaxCalories),
	); err != nil {
		return Day{}, err
	}

	date := rollup.Today()
	if req.Date != "" {
		key, err := rollup.ParseDayKey(req.Date)
		if err != nil {
			return Day{}, fmt.Errorf("%w: %s", feature.ErrInvalidEntry, err)
		}
		date = key
	}

	return Day{
		OwnerID:  owner,
		Date:     date,
		Steps:    int(math.Round(req.Steps)),
		Minutes:  int(math.Round(req.Minutes)),
		Calories: int(math.Round(req.Calories)),
	}, nil
}

// Totals is the aggregate of one window day.
type Totals struct {
	Date     rollup.DayKey `json:"date"`
	Steps    int           `json:"steps"`
	Minutes  int           `json:"minutes"`
	Calories int           `json:"calories"`
}

type Summary struct {
	TotalSteps int      `json:"totalSteps"`
	AvgSteps   int      `json:"avgSteps"`
	BestDay    *Totals  `json:"bestDay"`
	Streak     int      `json:"streak"`
	LastDays   []Totals `json:"last7Days"`
	HasData    bool     `json:"hasData"`
}

// Summarize rolls the entries up over the window. The average is taken over
// every window day, inactive ones included.
func Summarize(w rollup.Window, entries []Day) Summary {
	days := rollup.Aggregate(w, entries,
		Day.DayKey,
		func(acc Totals, d Day) Totals {
			acc.Steps += d.Steps
			acc.Minutes += d.Minutes
			acc.Calories += d.Calories
			return acc
		},
		Totals{},
	)

	summary := Summary{
		LastDays: make([]Totals, 0, len(days)),
		Streak:   rollup.Streak(days, func(t Totals) bool { return t.Steps > 0 }),
	}
	for _, d := range days {
		d.Value.Date = d.Key
		summary.TotalSteps += d.Value.Steps
		summary.HasData = summary.HasData || d.Value != (Totals{Date: d.Key})
		summary.LastDays = append(summary.LastDays, d.Value)
	}
	if len(days) > 0 {
		summary.AvgSteps = int(math.Round(float64(summary.TotalSteps) / float64(len(days))))
	}

	if best, ok := rollup.BestDay(days, func(t Totals) float64 { return float64(t.Steps) }); ok {
		best.Value.Date = best.Key
		summary.BestDay = &best.Value
	}

	return summary
}
