package mcp

import (
	"net/http"

	"github.com/2beens/fitrollup/internal/feature"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

// NewServer builds an MCP server whose tools answer for the given owner.
func NewServer(services Services, owner string, windowSize, maxWindowSize int) *mcp.Server {
	h := NewHandler(services, owner, windowSize, maxWindowSize)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fitrollup",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_activity_summary",
		Description: "Returns the activity rollup for a window of days ending on date: total and average steps, best day, streak of days with steps, and per-day totals.",
	}, h.ActivitySummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gym_summary",
		Description: "Returns the gym rollup for a window of days ending on date: per-day sets and volume (kilos x reps), total volume, top volume day and training streak.",
	}, h.GymSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_group_volume",
		Description: "Returns the number of working sets per muscle group (tag) in the window, warm-up sets excluded. Use to check training balance.",
	}, h.GroupVolumeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_cardio_summary",
		Description: "Returns the cardio rollup for a window of days ending on date: total minutes, distance and calories, best day by minutes, streak and per-day totals.",
	}, h.CardioSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_summary",
		Description: "Returns the nutrition rollup for a window of days ending on date: per-day kcal and macros, totals, daily averages, top kcal day and logging streak.",
	}, h.NutritionSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "estimate_one_rep_max",
		Description: "Estimates the one-rep max from weight and reps (Epley or Brzycki) and the target weight for a percent of it.",
	}, h.OneRepMaxTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Each session gets a server bound to the
// owner the auth middleware put on the initializing request.
func NewHTTPHandler(services Services, windowSize, maxWindowSize int) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		owner, ok := feature.Owner(r.Context())
		if !ok {
			log.Warnf("mcp: no owner on request to %s", r.URL.Path)
			return nil
		}
		return NewServer(services, owner, windowSize, maxWindowSize)
	}, nil)
}
