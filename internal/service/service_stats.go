package service

import (
	"context"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/store"
	"github.com/mpolacek/ufo-sightings/models"
)

// statsService is the concrete implementation of [StatsService]. The handler
// layer has already normalised limit and order, so the service is a thin
// delegation layer; the repository re-checks the sort direction before any
// interpolation regardless.
type statsService struct {
	statsRepository store.StatsRepository
	logger          *logger.Logger
}

// NewStatsService constructs a [StatsService] over the given repository.
func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		logger:          logger,
	}
}

func (s *statsService) MostObserved(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error) {
	return s.statsRepository.MostObserved(ctx, params)
}

func (s *statsService) MostVisited(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error) {
	return s.statsRepository.MostVisited(ctx, params)
}

func (s *statsService) AlienInteractions(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error) {
	return s.statsRepository.AlienInteractions(ctx, params)
}

func (s *statsService) RecentAbductions(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error) {
	return s.statsRepository.RecentAbductions(ctx, params)
}
