package mcp

import (
	"context"

	"github.com/2beens/fitrollup/internal/activity"
	"github.com/2beens/fitrollup/internal/cardio"
	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/gym"
	"github.com/2beens/fitrollup/internal/nutrition"
	"github.com/2beens/fitrollup/internal/rollup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=mcp_test

type activitySummarizer interface {
	WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (activity.Summary, error)
}

type gymSummarizer interface {
	WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (gym.Summary, error)
	GroupVolumes(ctx context.Context, owner string, params feature.WindowParams) ([]rollup.TagVolume, error)
}

type cardioSummarizer interface {
	WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (cardio.Summary, error)
}

type nutritionSummarizer interface {
	WeeklySummary(ctx context.Context, owner string, params feature.WindowParams) (nutrition.Summary, error)
}

// Services are the feature services the tools read summaries from.
type Services struct {
	Activity  activitySummarizer
	Gym       gymSummarizer
	Cardio    cardioSummarizer
	Nutrition nutritionSummarizer
}
