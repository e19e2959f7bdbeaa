package service

import (
	"context"
	"fmt"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/store"
	"github.com/mpolacek/ufo-sightings/internal/validators"
	"github.com/mpolacek/ufo-sightings/models"
)

// sightingService is the concrete implementation of [SightingService]. The
// single-slot-per-user policy lives in the store as a unique constraint; the
// service contributes the field validation and the user existence check.
type sightingService struct {
	observationRepository store.ObservationRepository
	userRepository        store.UserRepository
	validator             validators.Validator
	logger                *logger.Logger
}

// NewSightingService constructs a [SightingService] over the given
// repositories and validator.
func NewSightingService(observationRepository store.ObservationRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) SightingService {
	return &sightingService{
		observationRepository: observationRepository,
		userRepository:        userRepository,
		validator:             validator,
		logger:                logger,
	}
}

// Report implements [SightingService.Report]. Nothing is written when
// validation or the user check fails.
func (s *sightingService) Report(ctx context.Context, report models.SightingReport) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, report); err != nil {
		log.Error().Int64("user_id", report.UserID).Msg("incomplete sighting report")
		return false, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	exists, err := s.userRepository.UserExists(ctx, report.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", report.UserID).Msg("user existence check failed")
		return false, fmt.Errorf("user existence check failed: %w", err)
	}
	if !exists {
		log.Debug().Int64("user_id", report.UserID).Msg("sighting report for unknown user")
		return false, ErrUnknownUser
	}

	created, err := s.observationRepository.UpsertSighting(ctx, report)
	if err != nil {
		log.Err(err).Int64("user_id", report.UserID).Msg("sighting upsert ended with error")
		return false, fmt.Errorf("sighting upsert ended with error: %w", err)
	}

	return created, nil
}
