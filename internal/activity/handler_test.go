package activity_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/2beens/fitrollup/internal/activity"
	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*activity.Handler, *store.Memory[activity.Day]) {
	source := store.NewMemory[activity.Day]()
	return activity.NewHandler(activity.NewService(source, nil, nil), 7, 31), source
}

func ownedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(feature.WithOwner(context.Background(), "user-1"))
}

func TestHandler_HandleAdd(t *testing.T) {
	h, source := newTestHandler()

	rr := httptest.NewRecorder()
	h.HandleAdd(rr, ownedRequest("POST", "/activity", `{"date":"2024-03-10","steps":9000,"minutes":55}`))
	require.Equal(t, http.StatusCreated, rr.Code)

	var added activity.Day
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, "user-1", added.OwnerID)
	assert.Equal(t, 9000, added.Steps)
	assert.Equal(t, 1, source.Count("user-1"))

	rr = httptest.NewRecorder()
	h.HandleAdd(rr, ownedRequest("POST", "/activity", `{"steps":-9000}`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.HandleAdd(rr, ownedRequest("POST", "/activity", `{"steps":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.HandleAdd(rr, httptest.NewRequest("POST", "/activity", strings.NewReader(`{"steps":1}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 1, source.Count("user-1"))
}

func TestHandler_HandleSummary(t *testing.T) {
	h, _ := newTestHandler()

	for _, body := range []string{
		`{"date":"2024-03-08","steps":5000}`,
		`{"date":"2024-03-09","steps":6000}`,
		`{"date":"2024-03-10","steps":4000}`,
	} {
		rr := httptest.NewRecorder()
		h.HandleAdd(rr, ownedRequest("POST", "/activity", body))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := httptest.NewRecorder()
	h.HandleSummary(rr, ownedRequest("GET", "/activity/summary?date=2024-03-10", ""))
	require.Equal(t, http.StatusOK, rr.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, float64(15000), summary["totalSteps"])
	assert.Equal(t, float64(2143), summary["avgSteps"])
	assert.Equal(t, float64(3), summary["streak"])
	assert.Equal(t, true, summary["hasData"])
	assert.Equal(t, map[string]any{"date": "2024-03-09", "steps": float64(6000), "minutes": float64(0), "calories": float64(0)}, summary["bestDay"])
	assert.Len(t, summary["last7Days"], 7)

	rr = httptest.NewRecorder()
	h.HandleSummary(rr, ownedRequest("GET", "/activity/summary?date=2024-03-10&days=0", ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.HandleSummary(rr, ownedRequest("GET", "/activity/summary?days=400", ""))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
