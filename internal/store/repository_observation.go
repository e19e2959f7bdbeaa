package store

import (
	"context"
	"fmt"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/models"
)

// observationRepository is the PostgreSQL-backed implementation of
// [ObservationRepository]. Each user owns at most one observation row; the
// UNIQUE(user_id) constraint on the table makes the report write a single
// atomic insert-or-update without a separate existence check.
type observationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewObservationRepository constructs an [ObservationRepository] backed by
// the provided database connection and logger.
func NewObservationRepository(db *DB, logger *logger.Logger) ObservationRepository {
	logger.Debug().Msg("creating observation repository")
	return &observationRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSighting implements [ObservationRepository.UpsertSighting]. The date
// string passes through to the store untouched; the database performs the
// cast and a malformed value surfaces as a driver error.
func (r *observationRepository) UpsertSighting(ctx context.Context, report models.SightingReport) (bool, error) {
	log := logger.FromContext(ctx)

	var created bool
	row := r.db.QueryRowContext(ctx, upsertSighting,
		report.EncounterDate,
		report.Location,
		report.SpeciesID,
		report.ShipType,
		report.UserID,
	)

	if err := row.Scan(&created); err != nil {
		log.Err(err).
			Str("func", "*observationRepository.UpsertSighting").
			Int64("user_id", report.UserID).
			Msg("error upserting sighting report")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}
