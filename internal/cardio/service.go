package cardio

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

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=cardio_test

type sessionSource interface {
	Read(ctx context.Context, owner string, w rollup.Window) ([]Session, error)
	Write(ctx context.Context, owner string, s Session) (Session, error)
}

type Service struct {
	source         sessionSource
	summaries      *cache.Summaries
	metricsManager *metrics.Manager
}

func NewService(source sessionSource, summaries *cache.Summaries, metricsManager *metrics.Manager) *Service {
	return &Service{
		source:         source,
		summaries:      summaries,
		metricsManager: metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, owner string, req AddRequest) (_ Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cardio.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	session, err := Normalize(owner, req)
	if err != nil {
		return Session{}, err
	}

	stored, err := s.source.Write(ctx, owner, session)
	if err != nil {
		return Session{}, fmt.Errorf("write cardio session: %w", err)
	}

	s.summaries.Invalidate(ctx, Feature, owner, stored.DayKey())
	s.metricsManager.EntryAdded(Feature)
	log.Debugf("cardio session %d [%s] added for [%s]", stored.ID, stored.Kind, owner)

	return stored, nil
}

func (s *Service) WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cardio.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	start := time.Now()
	summary, hit, err := cache.LoadOrCompute(ctx, s.summaries, Feature, owner, params.RefKey(), params.Size,
		func(ctx context.Context) (Summary, error) {
			w, err := rollup.BuildWindow(params.Ref, params.Size)
			if err != nil {
				return Summary{}, err
			}
			sessions, err := s.source.Read(ctx, owner, w)
			if err != nil {
				return Summary{}, fmt.Errorf("read cardio sessions: %w", err)
			}
			return Summarize(w, sessions), nil
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
