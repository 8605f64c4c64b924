package cardio

import (
	"math"
	"time"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/rollup"
)

const Feature = "cardio"

// Upper bounds of a single session.
const (
	MaxMinutes    = 24 * 60
	MaxDistanceKm = 1000
	MaxCalories   = 100_000
)

// Session is one cardio session, e.g. a run or a swim.
type Session struct {
	ID         int       `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Kind       string    `json:"kind"`
	Minutes    int       `json:"minutes"`
	DistanceKm float64   `json:"distanceKm"`
	Calories   int       `json:"calories"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s Session) DayKey() rollup.DayKey {
	return rollup.ToDayKey(s.CreatedAt)
}

func (s Session) WithID(id int) Session {
	s.ID = id
	return s
}

type AddRequest struct {
	Kind       string     `json:"kind"`
	Minutes    float64    `json:"minutes"`
	DistanceKm float64    `json:"distanceKm"`
	Calories   float64    `json:"calories"`
	CreatedAt  *time.Time `json:"createdAt"`
}

// Normalize validates the request. A missing kind becomes "other".
func Normalize(owner string, req AddRequest) (Session, error) {
	if err := feature.FirstError(
		feature.Bounded("minutes", req.Minutes, MaxMinutes),
		feature.Bounded("distanceKm", req.DistanceKm, MaxDistanceKm),
		feature.Bounded("calories", req.Calories, MaxCalories),
	); err != nil {
		return Session{}, err
	}

	kind := feature.Category(req.Kind)
	if kind == "" {
		kind = "other"
	}

	return Session{
		OwnerID:    owner,
		Kind:       kind,
		Minutes:    int(math.Round(req.Minutes)),
		DistanceKm: req.DistanceKm,
		Calories:   int(math.Round(req.Calories)),
		CreatedAt:  feature.TimestampOrNow(req.CreatedAt),
	}, nil
}

type DayTotals struct {
	Date       rollup.DayKey `json:"date"`
	Minutes    int           `json:"minutes"`
	DistanceKm float64       `json:"distanceKm"`
	Calories   int           `json:"calories"`
	Sessions   int           `json:"sessions"`
}

type Summary struct {
	TotalMinutes    int         `json:"totalMinutes"`
	TotalDistanceKm float64     `json:"totalDistanceKm"`
	TotalCalories   int         `json:"totalCalories"`
	BestDay         *DayTotals  `json:"bestDay"`
	Streak          int         `json:"streak"`
	LastDays        []DayTotals `json:"last7Days"`
	HasData         bool        `json:"hasData"`
}

func Summarize(w rollup.Window, sessions []Session) Summary {
	days := rollup.Aggregate(w, sessions,
		Session.DayKey,
		func(acc DayTotals, s Session) DayTotals {
			acc.Minutes += s.Minutes
			acc.DistanceKm += s.DistanceKm
			acc.Calories += s.Calories
			acc.Sessions++
			return acc
		},
		DayTotals{},
	)

	summary := Summary{
		LastDays: make([]DayTotals, 0, len(days)),
		Streak:   rollup.Streak(days, func(t DayTotals) bool { return t.Minutes > 0 }),
	}
	for _, d := range days {
		d.Value.Date = d.Key
		summary.TotalMinutes += d.Value.Minutes
		summary.TotalDistanceKm += d.Value.DistanceKm
		summary.TotalCalories += d.Value.Calories
		summary.HasData = summary.HasData || d.Value.Sessions > 0
		summary.LastDays = append(summary.LastDays, d.Value)
	}
	summary.TotalDistanceKm = math.Round(summary.TotalDistanceKm*100) / 100

	if best, ok := rollup.BestDay(days, func(t DayTotals) float64 { return float64(t.Minutes) }); ok {
		best.Value.Date = best.Key
		summary.BestDay = &best.Value
	}

	return summary
}
