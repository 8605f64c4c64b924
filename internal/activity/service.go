package activity

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=activity_test

type daySource interface {
	Read(ctx context.Context, owner string, w rollup.Window) ([]Day, error)
	Write(ctx context.Context, owner string, d Day) (Day, error)
}

type Service struct {
	source         daySource
	summaries      *cache.Summaries
	metricsManager *metrics.Manager
}

func NewService(source daySource, summaries *cache.Summaries, metricsManager *metrics.Manager) *Service {
	return &Service{
		source:         source,
		summaries:      summaries,
		metricsManager: metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, owner string, req AddRequest) (_ Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	d, err := Normalize(owner, req)
	if err != nil {
		return Day{}, err
	}

	stored, err := s.source.Write(ctx, owner, d)
	if err != nil {
		return Day{}, fmt.Errorf("write activity day: %w", err)
	}

	s.summaries.Invalidate(ctx, Feature, owner, stored.Date)
	s.metricsManager.EntryAdded(Feature)
	log.Debugf("activity entry %d added for [%s] on %s", stored.ID, owner, stored.Date)

	return stored, nil
}

func (s *Service) WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.activity.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("window.size", params.Size))

	start := time.Now()
	summary, hit, err := cache.LoadOrCompute(ctx, s.summaries, Feature, owner, params.RefKey(), params.Size,
		func(ctx context.Context) (Summary, error) {
			w, err := rollup.BuildWindow(params.Ref, params.Size)
			if err != nil {
				return Summary{}, err
			}
			entries, err := s.source.Read(ctx, owner, w)
			if err != nil {
				return Summary{}, fmt.Errorf("read activity days: %w", err)
			}
			return Summarize(w, entries), nil
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
