package store

import (
	"context"
	"fmt"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/models"
)

// statsRepository is the PostgreSQL-backed implementation of
// [StatsRepository]. The four aggregate queries are assembled by the squirrel
// builders in sql_queries.go; every client-supplied value except the
// enum-gated sort direction travels as a bind parameter.
type statsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStatsRepository constructs a [StatsRepository] backed by the provided
// database connection and logger.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *statsRepository) MostObserved(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMostObservedQuery(params)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MostObserved").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MostObserved").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MostObservedRow, 0, 50)
	for rows.Next() {
		var item models.MostObservedRow
		if err := rows.Scan(&item.Name, &item.HomePlanet, &item.LimbsNumber, &item.ObservationsCount); err != nil {
			log.Err(err).Str("func", "*statsRepository.MostObserved").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*statsRepository.MostObserved").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *statsRepository) MostVisited(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMostVisitedQuery(params)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MostVisited").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.MostVisited").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MostVisitedRow, 0, 50)
	for rows.Next() {
		var item models.MostVisitedRow
		if err := rows.Scan(&item.LocationName, &item.TotalObservations); err != nil {
			log.Err(err).Str("func", "*statsRepository.MostVisited").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*statsRepository.MostVisited").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *statsRepository) AlienInteractions(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAlienInteractionsQuery(params)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.AlienInteractions").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.AlienInteractions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.InteractionsRow, 0, 50)
	for rows.Next() {
		var item models.InteractionsRow
		if err := rows.Scan(&item.Name, &item.HomePlanet, &item.LimbsNumber, &item.InteractionsCount, &item.PositiveInteractions); err != nil {
			log.Err(err).Str("func", "*statsRepository.AlienInteractions").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*statsRepository.AlienInteractions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *statsRepository) RecentAbductions(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentAbductionsQuery(params)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.RecentAbductions").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.RecentAbductions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AbductionRow, 0, 50)
	for rows.Next() {
		var item models.AbductionRow
		if err := rows.Scan(&item.InteractionID, &item.HumanName, &item.AbductionDate, &item.PersonReturned, &item.AbductorName, &item.HomePlanet); err != nil {
			log.Err(err).Str("func", "*statsRepository.RecentAbductions").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*statsRepository.RecentAbductions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
