package nutrition

import (
	"math"
	"strings"
	"time"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/rollup"
)

const Feature = "nutrition"

// Upper bounds of a single meal.
const (
	MaxKcal       = 100_000
	MaxMacroGrams = 10_000
)

// Meal is one logged meal. Macros are in grams.
type Meal struct {
	ID      int       `json:"id"`
	OwnerID string    `json:"ownerId"`
	Name    string    `json:"name"`
	Kcal    float64   `json:"kcal"`
	Protein float64   `json:"protein"`
	Carbs   float64   `json:"carbs"`
	Fat     float64   `json:"fat"`
	EatenAt time.Time `json:"eatenAt"`
}

func (m Meal) DayKey() rollup.DayKey {
	return rollup.ToDayKey(m.EatenAt)
}

func (m Meal) WithID(id int) Meal {
	m.ID = id
	return m
}

type AddRequest struct {
	Name    string     `json:"name"`
	Kcal    float64    `json:"kcal"`
	Protein float64    `json:"protein"`
	Carbs   float64    `json:"carbs"`
	Fat     float64    `json:"fat"`
	EatenAt *time.Time `json:"eatenAt"`
}

func Normalize(owner string, req AddRequest) (Meal, error) {
	if err := feature.FirstError(
		feature.Bounded("kcal", req.Kcal, MaxKcal),
		feature.Bounded("protein", req.Protein, MaxMacroGrams),
		feature.Bounded("carbs", req.Carbs, MaxMacroGrams),
		feature.Bounded("fat", req.Fat, MaxMacroGrams),
	); err != nil {
		return Meal{}, err
	}

	return Meal{
		OwnerID: owner,
		Name:    strings.TrimSpace(req.Name),
		Kcal:    req.Kcal,
		Protein: req.Protein,
		Carbs:   req.Carbs,
		Fat:     req.Fat,
		EatenAt: feature.TimestampOrNow(req.EatenAt),
	}, nil
}

type Macros struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

func (m Macros) add(meal Meal) Macros {
	m.Kcal += meal.Kcal
	m.Protein += meal.Protein
	m.Carbs += meal.Carbs
	m.Fat += meal.Fat
	return m
}

func (m Macros) rounded() Macros {
	return Macros{
		Kcal:    round1(m.Kcal),
		Protein: round1(m.Protein),
		Carbs:   round1(m.Carbs),
		Fat:     round1(m.Fat),
	}
}

type DayTotals struct {
	Date rollup.DayKey `json:"date"`
	Macros
	Meals int `json:"meals"`
}

type Summary struct {
	LastDays []DayTotals      `json:"last7Days"`
	Totals   Macros           `json:"totals"`
	Averages Macros           `json:"averages"`
	TopDay   *rollup.Extremum `json:"topDay"`
	Streak   int              `json:"streak"`
	HasData  bool             `json:"hasData"`
}

// Summarize rolls meals up over the window. Averages are per window day.
func Summarize(w rollup.Window, meals []Meal) Summary {
	days := rollup.Aggregate(w, meals,
		Meal.DayKey,
		func(acc DayTotals, m Meal) DayTotals {
			acc.Macros = acc.Macros.add(m)
			acc.Meals++
			return acc
		},
		DayTotals{},
	)

	summary := Summary{
		LastDays: make([]DayTotals, 0, len(days)),
		TopDay:   rollup.Argmax(days, func(t DayTotals) float64 { return t.Kcal }),
		Streak:   rollup.Streak(days, func(t DayTotals) bool { return t.Meals > 0 }),
	}
	for _, d := range days {
		d.Value.Date = d.Key
		summary.Totals.Kcal += d.Value.Kcal
		summary.Totals.Protein += d.Value.Protein
		summary.Totals.Carbs += d.Value.Carbs
		summary.Totals.Fat += d.Value.Fat
		summary.HasData = summary.HasData || d.Value.Meals > 0
		d.Value.Macros = d.Value.Macros.rounded()
		summary.LastDays = append(summary.LastDays, d.Value)
	}

	if n := float64(len(days)); n > 0 {
		summary.Averages = Macros{
			Kcal:    summary.Totals.Kcal / n,
			Protein: summary.Totals.Protein / n,
			Carbs:   summary.Totals.Carbs / n,
			Fat:     summary.Totals.Fat / n,
		}.rounded()
	}
	summary.Totals = summary.Totals.rounded()

	return summary
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
