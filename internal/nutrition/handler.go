package nutrition

import (
	"encoding/json"
	"net/http"

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
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.add")
	defer span.End()

	owner, ok := feature.Owner(ctx)
	if !ok {
		feature.WriteError(w, "add meal", feature.ErrNoOwner)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add meal, unmarshal json body: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	added, err := handler.service.Add(ctx, owner, req)
	if err != nil {
		feature.WriteError(w, "add meal failed", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, added)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.summary")
	defer span.End()

	owner, ok := feature.Owner(ctx)
	if !ok {
		feature.WriteError(w, "nutrition summary", feature.ErrNoOwner)
		return
	}

	params, err := feature.ParseWindowParams(r.URL.Query(), handler.windowSize, handler.maxWindowSize)
	if err != nil {
		feature.WriteError(w, "nutrition summary", err)
		return
	}

	summary, err := handler.service.WeeklySummary(ctx, owner, params)
	if err != nil {
		feature.WriteError(w, "nutrition summary failed", err)
		return
	}

	pkg.WriteJSONOK(w, summary)
}
