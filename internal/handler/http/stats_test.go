package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/service"
	"github.com/mpolacek/ufo-sightings/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock StatsService
// ─────────────────────────────────────────────

type mockStatsService struct {
	mostObservedFn      func(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error)
	mostVisitedFn       func(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error)
	alienInteractionsFn func(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error)
	recentAbductionsFn  func(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error)
}

func (m *mockStatsService) MostObserved(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
	return m.mostObservedFn(ctx, params)
}

func (m *mockStatsService) MostVisited(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error) {
	return m.mostVisitedFn(ctx, params)
}

func (m *mockStatsService) AlienInteractions(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error) {
	return m.alienInteractionsFn(ctx, params)
}

func (m *mockStatsService) RecentAbductions(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error) {
	return m.recentAbductionsFn(ctx, params)
}

func newHandlerWithStats(t *testing.T, stats service.StatsService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{Stats: stats}, logger.Nop())
}

// ─────────────────────────────────────────────
// Defaults and query parsing
// ─────────────────────────────────────────────

func TestHandler_MostObserved_Defaults(t *testing.T) {
	stats := &mockStatsService{
		mostObservedFn: func(_ context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
			assert.Equal(t, 7, params.Limit)
			assert.Equal(t, models.OrderAsc, params.Order)
			return []models.MostObservedRow{}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/mostObserved", nil)
	rec := httptest.NewRecorder()

	h.mostObserved(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_MostObserved_ExplicitParams(t *testing.T) {
	stats := &mockStatsService{
		mostObservedFn: func(_ context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
			assert.Equal(t, 3, params.Limit)
			assert.Equal(t, models.OrderDesc, params.Order)
			return []models.MostObservedRow{
				{Name: "Grey", HomePlanet: "Zeta Reticuli", LimbsNumber: 4, ObservationsCount: 19},
			}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/mostObserved?limit=3&order=desc", nil)
	rec := httptest.NewRecorder()

	h.mostObserved(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.MostObservedRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Grey", got[0].Name)
	assert.Equal(t, int64(19), got[0].ObservationsCount)
}

func TestHandler_MostObserved_MalformedParamsFallBack(t *testing.T) {
	stats := &mockStatsService{
		mostObservedFn: func(_ context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
			assert.Equal(t, 7, params.Limit)
			assert.Equal(t, models.OrderAsc, params.Order)
			return []models.MostObservedRow{}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/mostObserved?limit=abc&order=sideways", nil)
	rec := httptest.NewRecorder()

	h.mostObserved(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_MostVisited_Defaults(t *testing.T) {
	stats := &mockStatsService{
		mostVisitedFn: func(_ context.Context, params models.ListParams) ([]models.MostVisitedRow, error) {
			assert.Equal(t, 25, params.Limit)
			assert.Equal(t, models.OrderDesc, params.Order)
			return []models.MostVisitedRow{
				{LocationName: "Roswell", TotalObservations: 112},
			}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/mostVisited", nil)
	rec := httptest.NewRecorder()

	h.mostVisited(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.MostVisitedRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Roswell", got[0].LocationName)
}

func TestHandler_AlienInteractions_Defaults(t *testing.T) {
	stats := &mockStatsService{
		alienInteractionsFn: func(_ context.Context, params models.ListParams) ([]models.InteractionsRow, error) {
			assert.Equal(t, 25, params.Limit)
			assert.Equal(t, models.OrderAsc, params.Order)
			return []models.InteractionsRow{}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/alienInteractions", nil)
	rec := httptest.NewRecorder()

	h.alienInteractions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_RecentAbductions_Defaults(t *testing.T) {
	when := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	stats := &mockStatsService{
		recentAbductionsFn: func(_ context.Context, params models.ListParams) ([]models.AbductionRow, error) {
			assert.Equal(t, 50, params.Limit)
			assert.Equal(t, models.OrderDesc, params.Order)
			return []models.AbductionRow{
				{
					InteractionID:  1,
					HumanName:      "Max Fenig",
					AbductionDate:  when,
					PersonReturned: true,
					AbductorName:   "Grey",
					HomePlanet:     "Zeta Reticuli",
				},
			}, nil
		},
	}
	h := newHandlerWithStats(t, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/recentAbductions", nil)
	rec := httptest.NewRecorder()

	h.recentAbductions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.AbductionRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Max Fenig", got[0].HumanName)
	assert.True(t, got[0].PersonReturned)
}

// ─────────────────────────────────────────────
// Failures
// ─────────────────────────────────────────────

func TestHandler_Listings_StorageFailure(t *testing.T) {
	boom := errors.New("relation does not exist")
	stats := &mockStatsService{
		mostObservedFn: func(_ context.Context, _ models.ListParams) ([]models.MostObservedRow, error) {
			return nil, boom
		},
		mostVisitedFn: func(_ context.Context, _ models.ListParams) ([]models.MostVisitedRow, error) {
			return nil, boom
		},
		alienInteractionsFn: func(_ context.Context, _ models.ListParams) ([]models.InteractionsRow, error) {
			return nil, boom
		},
		recentAbductionsFn: func(_ context.Context, _ models.ListParams) ([]models.AbductionRow, error) {
			return nil, boom
		},
	}
	h := newHandlerWithStats(t, stats)

	handlers := map[string]http.HandlerFunc{
		"mostObserved":      h.mostObserved,
		"mostVisited":       h.mostVisited,
		"alienInteractions": h.alienInteractions,
		"recentAbductions":  h.recentAbductions,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/"+name, nil)
			rec := httptest.NewRecorder()

			handler(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Nie je možné načítať údaje z databázy", got["dbError"])
			assert.Equal(t, "relation does not exist", got["details"])
		})
	}
}
