package gym

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/telemetry/tracing"
	"github.com/2beens/fitrollup/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service       *Service
	windowSize    int
	maxWindowSize int
}

func NewHandler(service *Service, windowSize, maxWindowSize int) *Handler {
	return &Handler{
		service:       service,
		windowSize:    windowSize,
		maxWindowSize: maxWindowSize,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.add")
	defer span.End()

	owner, ok := feature.Owner(ctx)
	if !ok {
		feature.WriteError(w, "add gym set", feature.ErrNoOwner)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add gym set, unmarshal json body: %s", err)
		http.Error(w, "add gym set failed", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, owner, req)
	if err != nil {
		feature.WriteError(w, "add gym set failed", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.summary")
	defer span.End()

	owner, ok := feature.Owner(ctx)
	if !ok {
		feature.WriteError(w, "gym summary", feature.ErrNoOwner)
		return
	}

	params, err := feature.ParseWindowParams(r.URL.Query(), handler.windowSize, handler.maxWindowSize)
	if err != nil {
		feature.WriteError(w, "gym summary", err)
		return
	}

	summary, err := handler.service.WeeklySummary(ctx, owner, params)
	if err != nil {
		feature.WriteError(w, "gym summary failed", err)
		return
	}

	pkg.WriteJSONOK(w, summary)
}

func (handler *Handler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.groups")
	defer span.End()

	owner, ok := feature.Owner(ctx)
	if !ok {
		feature.WriteError(w, "gym groups", feature.ErrNoOwner)
		return
	}

	params, err := feature.ParseWindowParams(r.URL.Query(), handler.windowSize, handler.maxWindowSize)
	if err != nil {
		feature.WriteError(w, "gym groups", err)
		return
	}

	groups, err := handler.service.GroupVolumes(ctx, owner, params)
	if err != nil {
		feature.WriteError(w, "gym groups failed", err)
		return
	}

	pkg.WriteJSONOK(w, groups)
}

// HandleOneRepMax needs no owner, it only does the math.
func (handler *Handler) HandleOneRepMax(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gym.1rm")
	defer span.End()

	q := r.URL.Query()
	weight, err := strconv.ParseFloat(q.Get("weight"), 64)
	if err != nil {
		feature.WriteError(w, "1rm", fmt.Errorf("%w: weight: %s", feature.ErrInvalidParams, err))
		return
	}
	reps, err := strconv.Atoi(q.Get("reps"))
	if err != nil {
		feature.WriteError(w, "1rm", fmt.Errorf("%w: reps: %s", feature.ErrInvalidParams, err))
		return
	}
	percent := 100.0
	if p := q.Get("percent"); p != "" {
		if percent, err = strconv.ParseFloat(p, 64); err != nil {
			feature.WriteError(w, "1rm", fmt.Errorf("%w: percent: %s", feature.ErrInvalidParams, err))
			return
		}
	}

	result, err := EstimateOneRepMax(q.Get("formula"), weight, reps, percent)
	if err != nil {
		feature.WriteError(w, "1rm", err)
		return
	}

	pkg.WriteJSONOK(w, result)
}
