package mcp

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/gym"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// Handler turns tool calls into service calls for a single owner and formats the results.
type Handler struct {
	services      Services
	owner         string
	windowSize    int
	maxWindowSize int
}

func NewHandler(services Services, owner string, windowSize, maxWindowSize int) *Handler {
	return &Handler{
		services:      services,
		owner:         owner,
		windowSize:    windowSize,
		maxWindowSize: maxWindowSize,
	}
}

// WindowInput selects the rollup window: the reference day and how many days end on it.
type WindowInput struct {
	Date string `json:"date,omitempty" jsonschema:"Reference (last) day of the window, YYYY-MM-DD. Defaults to today."`
	Days int    `json:"days,omitempty" jsonschema:"Window size in days. Defaults to 7."`
}

func (h *Handler) windowParams(in WindowInput) (feature.WindowParams, error) {
	q := url.Values{}
	if in.Date != "" {
		q.Set("date", in.Date)
	}
	if in.Days != 0 {
		q.Set("days", strconv.Itoa(in.Days))
	}
	return feature.ParseWindowParams(q, h.windowSize, h.maxWindowSize)
}

func (h *Handler) ActivitySummaryTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return summaryTool(h, "activity", func(ctx context.Context, params feature.WindowParams) (any, error) {
		return h.services.Activity.WeeklySummary(ctx, h.owner, params)
	})
}

func (h *Handler) GymSummaryTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return summaryTool(h, "gym", func(ctx context.Context, params feature.WindowParams) (any, error) {
		return h.services.Gym.WeeklySummary(ctx, h.owner, params)
	})
}

func (h *Handler) GroupVolumeTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return summaryTool(h, "group volume", func(ctx context.Context, params feature.WindowParams) (any, error) {
		return h.services.Gym.GroupVolumes(ctx, h.owner, params)
	})
}

func (h *Handler) CardioSummaryTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return summaryTool(h, "cardio", func(ctx context.Context, params feature.WindowParams) (any, error) {
		return h.services.Cardio.WeeklySummary(ctx, h.owner, params)
	})
}

func (h *Handler) NutritionSummaryTool() func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return summaryTool(h, "nutrition", func(ctx context.Context, params feature.WindowParams) (any, error) {
		return h.services.Nutrition.WeeklySummary(ctx, h.owner, params)
	})
}

func summaryTool(
	h *Handler,
	name string,
	summarize func(ctx context.Context, params feature.WindowParams) (any, error),
) func(context.Context, *mcp.CallToolRequest, WindowInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WindowInput) (*mcp.CallToolResult, any, error) {
		params, err := h.windowParams(in)
		if err != nil {
			return errorResult("Invalid window: " + err.Error()), nil, nil
		}
		summary, err := summarize(ctx, params)
		if err != nil {
			log.Errorf("mcp %s summary for [%s]: %s", name, h.owner, err)
			return errorResult("Error computing " + name + " summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

// OneRepMaxInput is the input for estimate_one_rep_max.
type OneRepMaxInput struct {
	Weight  float64 `json:"weight" jsonschema:"Lifted weight in kilos"`
	Reps    int     `json:"reps" jsonschema:"Repetitions done with that weight"`
	Formula string  `json:"formula,omitempty" jsonschema:"epley or brzycki. Defaults to epley."`
	Percent float64 `json:"percent,omitempty" jsonschema:"Percent of the estimated 1RM to compute a target weight for. Defaults to 100."`
}

func (h *Handler) OneRepMaxTool() func(context.Context, *mcp.CallToolRequest, OneRepMaxInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in OneRepMaxInput) (*mcp.CallToolResult, any, error) {
		percent := in.Percent
		if percent == 0 {
			percent = 100
		}
		estimate, err := gym.EstimateOneRepMax(in.Formula, in.Weight, in.Reps, percent)
		if err != nil {
			return errorResult("Invalid input: " + err.Error()), nil, nil
		}
		return jsonResult(estimate), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
