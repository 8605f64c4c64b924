package gym

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/rollup"
)

const (
	Feature       = "gym"
	FeatureGroups = "gym_groups"
)

const (
	MarkerWork   = "work"
	MarkerWarmup = "warmup"
)

// Upper bounds of a single set and of the 1RM calculator inputs.
const (
	MaxKilos   = 1000
	MaxReps    = 1000
	MaxPercent = 1000
)

// Set is one logged gym set. Tags are the muscle groups it trains.
type Set struct {
	ID        int       `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Exercise  string    `json:"exercise"`
	Tags      []string  `json:"tags"`
	Marker    string    `json:"marker"`
	Kilos     float64   `json:"kilos"`
	Reps      int       `json:"reps"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Set) DayKey() rollup.DayKey {
	return rollup.ToDayKey(s.CreatedAt)
}

func (s Set) WithID(id int) Set {
	s.ID = id
	return s
}

func (s Set) Volume() float64 {
	return s.Kilos * float64(s.Reps)
}

type AddRequest struct {
	Exercise  string     `json:"exercise"`
	Tags      []string   `json:"tags"`
	Marker    string     `json:"marker"`
	Kilos     float64    `json:"kilos"`
	Reps      float64    `json:"reps"`
	CreatedAt *time.Time `json:"createdAt"`
}

func Normalize(owner string, req AddRequest) (Set, error) {
	if err := feature.FirstError(
		feature.Bounded("kilos", req.Kilos, MaxKilos),
		feature.Bounded("reps", req.Reps, MaxReps),
	); err != nil {
		return Set{}, err
	}

	exercise := strings.TrimSpace(req.Exercise)
	if exercise == "" {
		return Set{}, fmt.Errorf("%w: exercise missing", feature.ErrInvalidEntry)
	}

	marker, err := normalizeMarker(req.Marker)
	if err != nil {
		return Set{}, err
	}

	return Set{
		OwnerID:   owner,
		Exercise:  exercise,
		Tags:      feature.Categories(req.Tags),
		Marker:    marker,
		Kilos:     req.Kilos,
		Reps:      int(math.Round(req.Reps)),
		CreatedAt: feature.TimestampOrNow(req.CreatedAt),
	}, nil
}

func normalizeMarker(marker string) (string, error) {
	switch m := strings.NewReplacer("-", "", " ", "", "_", "").Replace(feature.Category(marker)); m {
	case "", MarkerWork:
		return MarkerWork, nil
	case MarkerWarmup:
		return MarkerWarmup, nil
	default:
		return "", fmt.Errorf("%w: unknown marker [%s]", feature.ErrInvalidEntry, marker)
	}
}

type DayVolume struct {
	Date        rollup.DayKey `json:"date"`
	TotalSets   int           `json:"totalSets"`
	TotalVolume float64       `json:"totalVolume"`
}

type Summary struct {
	LastDays     []DayVolume      `json:"last7Days"`
	TotalVolume  float64          `json:"totalVolume"`
	TopVolumeDay *rollup.Extremum `json:"topVolumeDay"`
	Streak       int              `json:"streak"`
	HasData      bool             `json:"hasData"`
}

// Summarize rolls the sets up over the window. Every set counts towards volume,
// warm-ups included.
func Summarize(w rollup.Window, sets []Set) Summary {
	days := rollup.Aggregate(w, sets,
		Set.DayKey,
		func(acc DayVolume, s Set) DayVolume {
			acc.TotalSets++
			acc.TotalVolume += s.Volume()
			return acc
		},
		DayVolume{},
	)

	summary := Summary{
		LastDays:     make([]DayVolume, 0, len(days)),
		TopVolumeDay: rollup.Argmax(days, func(v DayVolume) float64 { return v.TotalVolume }),
		Streak:       rollup.Streak(days, func(v DayVolume) bool { return v.TotalSets > 0 }),
	}
	for _, d := range days {
		d.Value.Date = d.Key
		summary.TotalVolume += d.Value.TotalVolume
		summary.HasData = summary.HasData || d.Value.TotalSets > 0
		summary.LastDays = append(summary.LastDays, d.Value)
	}

	return summary
}

// GroupVolumes counts working sets per muscle group over the window.
func GroupVolumes(w rollup.Window, sets []Set) []rollup.TagVolume {
	return rollup.TagVolumes(w, sets,
		Set.DayKey,
		func(s Set) []string { return s.Tags },
		func(s Set) string { return s.Marker },
		MarkerWarmup,
	)
}

type OneRepMax struct {
	Formula      rollup.Formula `json:"formula"`
	Weight       float64        `json:"weight"`
	Reps         int            `json:"reps"`
	Estimated1RM float64        `json:"estimated1RM"`
	Percent      float64        `json:"percent"`
	Target       float64        `json:"target"`
}

// EstimateOneRepMax estimates the 1RM for weight x reps and the target weight at
// percent of it. Results are rounded to two decimals.
func EstimateOneRepMax(formula string, weight float64, reps int, percent float64) (OneRepMax, error) {
	f, err := rollup.ParseFormula(formula)
	if err != nil {
		return OneRepMax{}, err
	}
	if err := feature.FirstError(
		feature.Bounded("weight", weight, MaxKilos),
		feature.Bounded("reps", float64(reps), MaxReps),
		feature.Bounded("percent", percent, MaxPercent),
	); err != nil {
		return OneRepMax{}, fmt.Errorf("%w: %s", rollup.ErrDomain, err)
	}

	estimated, err := rollup.Estimate(f, weight, reps)
	if err != nil {
		return OneRepMax{}, err
	}

	return OneRepMax{
		Formula:      f,
		Weight:       weight,
		Reps:         reps,
		Estimated1RM: round2(estimated),
		Percent:      percent,
		Target:       round2(rollup.TargetFromPercent1RM(estimated, percent)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
