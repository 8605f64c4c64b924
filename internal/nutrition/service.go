package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitrollup/internal/cache"
	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/rollup"
	"github.com/2beens/fitrollup/internal/telemetry/metrics"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=nutrition_test

type mealSource interface {
	Read(ctx context.Context, owner string, w rollup.Window) ([]Meal, error)
	Write(ctx context.Context, owner string, m Meal) (Meal, error)
}

type Service struct {
	source         mealSource
	summaries      *cache.Summaries
	metricsManager *metrics.Manager
}

func NewService(source mealSource, summaries *cache.Summaries, metricsManager *metrics.Manager) *Service {
	return &Service{
		source:         source,
		summaries:      summaries,
		metricsManager: metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, owner string, req AddRequest) (_ Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	meal, err := Normalize(owner, req)
	if err != nil {
		return Meal{}, err
	}

	stored, err := s.source.Write(ctx, owner, meal)
	if err != nil {
		return Meal{}, fmt.Errorf("write meal: %w", err)
	}

	s.summaries.Invalidate(ctx, Feature, owner, stored.DayKey())
	s.metricsManager.EntryAdded(Feature)
	log.Debugf("meal %d [%s] added for [%s]", stored.ID, stored.Name, owner)

	return stored, nil
}

func (s *Service) WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := time.Now()
	summary, hit, err := cache.LoadOrCompute(ctx, s.summaries, Feature, owner, params.RefKey(), params.Size,
		func(ctx context.Context) (Summary, error) {
			w, err := rollup.BuildWindow(params.Ref, params.Size)
			if err != nil {
				return Summary{}, err
			}
			meals, err := s.source.Read(ctx, owner, w)
			if err != nil {
				return Summary{}, fmt.Errorf("read meals: %w", err)
			}
			return Summarize(w, meals), nil
		},
	)
	if err != nil {
		return Summary{}, err
	}

	span.SetAttributes(attribute.Bool("cache.hit", hit))
	s.metricsManager.SummaryServed(Feature, hit)
	s.metricsManager.ObserveSummaryDuration(Feature, time.Since(start).Seconds())

	return summary, nil
}
