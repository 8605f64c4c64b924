package gym

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
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=gym_test

type setSource interface {
	Read(ctx context.Context, owner string, w rollup.Window) ([]Set, error)
	Write(ctx context.Context, owner string, s Set) (Set, error)
}

type Service struct {
	source         setSource
	summaries      *cache.Summaries
	metricsManager *metrics.Manager
}

func NewService(source setSource, summaries *cache.Summaries, metricsManager *metrics.Manager) *Service {
	return &Service{
		source:         source,
		summaries:      summaries,
		metricsManager: metricsManager,
	}
}

func (s *Service) Add(ctx context.Context, owner string, req AddRequest) (_ Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gym.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	set, err := Normalize(owner, req)
	if err != nil {
		return Set{}, err
	}

	stored, err := s.source.Write(ctx, owner, set)
	if err != nil {
		return Set{}, fmt.Errorf("write gym set: %w", err)
	}

	day := stored.DayKey()
	s.summaries.Invalidate(ctx, Feature, owner, day)
	s.summaries.Invalidate(ctx, FeatureGroups, owner, day)
	s.metricsManager.EntryAdded(Feature)
	log.Debugf("gym set %d [%s] added for [%s] on %s", stored.ID, stored.Exercise, owner, day)

	return stored, nil
}

func (s *Service) WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gym.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return serve(ctx, s, Feature, owner, params, Summarize)
}

func (s *Service) GroupVolumes(ctx context.Context, owner string, params feature.WindowParams) (_ []rollup.TagVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gym.groups")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return serve(ctx, s, FeatureGroups, owner, params, GroupVolumes)
}

func serve[T any](
	ctx context.Context,
	s *Service,
	name, owner string,
	params feature.WindowParams,
	compute func(rollup.Window, []Set) T,
) (T, error) {
	var zero T

	start := time.Now()
	result, hit, err := cache.LoadOrCompute(ctx, s.summaries, name, owner, params.RefKey(), params.Size,
		func(ctx context.Context) (T, error) {
			w, err := rollup.BuildWindow(params.Ref, params.Size)
			if err != nil {
				return zero, err
			}
			sets, err := s.source.Read(ctx, owner, w)
			if err != nil {
				return zero, fmt.Errorf("read gym sets: %w", err)
			}
			return compute(w, sets), nil
		},
	)
	if err != nil {
		return zero, err
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("cache.hit", hit))
	s.metricsManager.SummaryServed(name, hit)
	s.metricsManager.ObserveSummaryDuration(name, time.Since(start).Seconds())

	return result, nil
}
