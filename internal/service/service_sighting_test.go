package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/validators"
	"github.com/mpolacek/ufo-sightings/models"
)

// mockObservationRepository implements store.ObservationRepository for unit
// tests.
type mockObservationRepository struct {
	upsertSightingFn func(ctx context.Context, report models.SightingReport) (bool, error)
}

func (m *mockObservationRepository) UpsertSighting(ctx context.Context, report models.SightingReport) (bool, error) {
	return m.upsertSightingFn(ctx, report)
}

func userExistsRepo(exists bool) *mockUserRepository {
	return &mockUserRepository{
		userExistsFn: func(_ context.Context, _ int64) (bool, error) { return exists, nil },
	}
}

func newSightingServiceForTest(obs *mockObservationRepository, users *mockUserRepository) SightingService {
	return NewSightingService(obs, users, validators.NewRequestValidator(), logger.Nop())
}

func validReport() models.SightingReport {
	return models.SightingReport{
		Location:      "Poprad",
		ShipType:      "disk",
		EncounterDate: "2026-08-15",
		SpeciesID:     3,
		UserID:        42,
	}
}

func TestReport_Created(t *testing.T) {
	obs := &mockObservationRepository{
		upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) { return true, nil },
	}

	svc := newSightingServiceForTest(obs, userExistsRepo(true))
	created, err := svc.Report(context.Background(), validReport())

	require.NoError(t, err)
	assert.True(t, created)
}

func TestReport_Updated(t *testing.T) {
	obs := &mockObservationRepository{
		upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) { return false, nil },
	}

	svc := newSightingServiceForTest(obs, userExistsRepo(true))
	created, err := svc.Report(context.Background(), validReport())

	require.NoError(t, err)
	assert.False(t, created)
}

func TestReport_MissingFields_NothingWritten(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SightingReport)
	}{
		{name: "no location", mutate: func(r *models.SightingReport) { r.Location = "" }},
		{name: "no ship type", mutate: func(r *models.SightingReport) { r.ShipType = "" }},
		{name: "no encounter date", mutate: func(r *models.SightingReport) { r.EncounterDate = "" }},
		{name: "no species id", mutate: func(r *models.SightingReport) { r.SpeciesID = 0 }},
		{name: "no user id", mutate: func(r *models.SightingReport) { r.UserID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &mockObservationRepository{
				upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) {
					t.Fatal("store must not be reached for an incomplete report")
					return false, nil
				},
			}
			users := &mockUserRepository{
				userExistsFn: func(_ context.Context, _ int64) (bool, error) {
					t.Fatal("user check must not run for an incomplete report")
					return false, nil
				},
			}

			report := validReport()
			tt.mutate(&report)

			svc := newSightingServiceForTest(obs, users)
			_, err := svc.Report(context.Background(), report)

			require.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestReport_UnknownUser(t *testing.T) {
	obs := &mockObservationRepository{
		upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) {
			t.Fatal("store must not be reached for an unknown user")
			return false, nil
		},
	}

	svc := newSightingServiceForTest(obs, userExistsRepo(false))
	_, err := svc.Report(context.Background(), validReport())

	require.ErrorIs(t, err, ErrUnknownUser)
}

func TestReport_UserCheckFailure(t *testing.T) {
	dbErr := errors.New("db network error")
	users := &mockUserRepository{
		userExistsFn: func(_ context.Context, _ int64) (bool, error) { return false, dbErr },
	}
	obs := &mockObservationRepository{
		upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) {
			t.Fatal("store must not be reached when the user check fails")
			return false, nil
		},
	}

	svc := newSightingServiceForTest(obs, users)
	_, err := svc.Report(context.Background(), validReport())

	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUnknownUser)
}

func TestReport_UpsertFailure(t *testing.T) {
	dbErr := errors.New("invalid input syntax for type date")
	obs := &mockObservationRepository{
		upsertSightingFn: func(_ context.Context, _ models.SightingReport) (bool, error) { return false, dbErr },
	}

	svc := newSightingServiceForTest(obs, userExistsRepo(true))
	_, err := svc.Report(context.Background(), validReport())

	require.ErrorIs(t, err, dbErr)
}
