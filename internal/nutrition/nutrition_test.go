package nutrition_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/fitrollup/internal/feature"
	"github.com/2beens/fitrollup/internal/nutrition"
	"github.com/2beens/fitrollup/internal/rollup"
	"github.com/2beens/fitrollup/internal/store"
	"github.com/2beens/fitrollup/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func at(t *testing.T, day string, hour int) time.Time {
	t.Helper()
	key, err := rollup.ParseDayKey(day)
	require.NoError(t, err)
	return key.Time().Add(time.Duration(hour) * time.Hour)
}

func TestNormalize(t *testing.T) {
	ts := at(t, "2024-06-07", 13)
	m, err := nutrition.Normalize("user-1", nutrition.AddRequest{Name: " oats ", Kcal: 380, Protein: 13, EatenAt: &ts})
	require.NoError(t, err)
	assert.Equal(t, nutrition.Meal{OwnerID: "user-1", Name: "oats", Kcal: 380, Protein: 13, EatenAt: ts}, m)

	for _, req := range []nutrition.AddRequest{
		{Kcal: -1},
		{Protein: -1},
		{Carbs: -1},
		{Fat: -1},
		{Kcal: 1e308},
		{Kcal: nutrition.MaxKcal + 1},
		{Protein: nutrition.MaxMacroGrams + 1},
		{Carbs: 1e19},
	} {
		_, err := nutrition.Normalize("user-1", req)
		assert.ErrorIs(t, err, feature.ErrInvalidEntry)
	}
}

func TestSummarize_LargestMealsStayEncodable(t *testing.T) {
	ts := at(t, "2024-06-07", 13)
	var meals []nutrition.Meal
	for i := 0; i < 50; i++ {
		m, err := nutrition.Normalize("user-1", nutrition.AddRequest{
			Kcal:    nutrition.MaxKcal,
			Protein: nutrition.MaxMacroGrams,
			Carbs:   nutrition.MaxMacroGrams,
			Fat:     nutrition.MaxMacroGrams,
			EatenAt: &ts,
		})
		require.NoError(t, err)
		meals = append(meals, m)
	}

	w, err := rollup.BuildWindow(ts, 7)
	require.NoError(t, err)
	summary := nutrition.Summarize(w, meals)
	assert.Equal(t, float64(50*nutrition.MaxKcal), summary.Totals.Kcal)

	_, err = json.Marshal(summary)
	require.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	w, err := rollup.BuildWindow(at(t, "2024-06-07", 12), 4)
	require.NoError(t, err)

	summary := nutrition.Summarize(w, []nutrition.Meal{
		{Kcal: 600, Protein: 40, Carbs: 60, Fat: 20, EatenAt: at(t, "2024-06-04", 8)},
		{Kcal: 900, Protein: 50, Carbs: 100, Fat: 30, EatenAt: at(t, "2024-06-06", 13)},
		{Kcal: 500, Protein: 30, Carbs: 40, Fat: 25, EatenAt: at(t, "2024-06-07", 8)},
		{Kcal: 400, Protein: 20, Carbs: 50, Fat: 5, EatenAt: at(t, "2024-06-07", 19)},
		{Kcal: 9999, EatenAt: at(t, "2024-06-01", 12)},
	})

	assert.Equal(t, nutrition.Macros{Kcal: 2400, Protein: 140, Carbs: 250, Fat: 80}, summary.Totals)
	assert.Equal(t, nutrition.Macros{Kcal: 600, Protein: 35, Carbs: 62.5, Fat: 20}, summary.Averages)
	assert.Equal(t, 2, summary.Streak)
	assert.True(t, summary.HasData)
	require.NotNil(t, summary.TopDay)
	// 900 kcal on both days, the earlier one wins
	assert.Equal(t, rollup.Extremum{DayKey: "2024-06-06", Value: 900}, *summary.TopDay)
	require.Len(t, summary.LastDays, 4)
	assert.Equal(t, 0, summary.LastDays[1].Meals)
	assert.Equal(t, 2, summary.LastDays[3].Meals)
}

func TestService(t *testing.T) {
	ctrl := gomock.NewController(t)
	sourceMock := NewMockmealSource(ctrl)
	metricsManager := metrics.NewTestManager()
	service := nutrition.NewService(sourceMock, nil, metricsManager)

	sourceMock.EXPECT().Read(gomock.Any(), "user-1", gomock.Any()).Return([]nutrition.Meal{}, nil)
	summary, err := service.WeeklySummary(context.Background(), "user-1", feature.WindowParams{Ref: time.Now(), Size: 7})
	require.NoError(t, err)
	assert.False(t, summary.HasData)
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterSummaries.WithLabelValues(nutrition.Feature, "miss")))

	writeErr := errors.New("read-only transaction")
	sourceMock.EXPECT().Write(gomock.Any(), "user-1", gomock.Any()).Return(nutrition.Meal{}, writeErr)
	_, err = service.Add(context.Background(), "user-1", nutrition.AddRequest{Name: "rice", Kcal: 200})
	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, float64(0), testutil.ToFloat64(metricsManager.CounterEntriesAdded.WithLabelValues(nutrition.Feature)))
}

func TestHandler(t *testing.T) {
	h := nutrition.NewHandler(nutrition.NewService(store.NewMemory[nutrition.Meal](), nil, nil), 7, 31)
	ctx := feature.WithOwner(context.Background(), "user-1")

	rr := httptest.NewRecorder()
	h.HandleAdd(rr, httptest.NewRequest("POST", "/nutrition/meals",
		strings.NewReader(`{"name":"eggs","kcal":310,"protein":25.5,"eatenAt":"2024-06-07T08:00:00+02:00"}`),
	).WithContext(ctx))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	h.HandleSummary(rr, httptest.NewRequest("GET", "/nutrition/summary?date=2024-06-09&days=5", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, rr.Code)

	var summary nutrition.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 310.0, summary.Totals.Kcal)
	assert.Equal(t, 25.5, summary.Totals.Protein)
	assert.Len(t, summary.LastDays, 5)

	rr = httptest.NewRecorder()
	h.HandleAdd(rr, httptest.NewRequest("POST", "/nutrition/meals", strings.NewReader(`{"kcal":"lots"}`)).WithContext(ctx))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
