package service

import (
	"github.com/mpolacek/ufo-sightings/internal/crypto"
	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/store"
	"github.com/mpolacek/ufo-sightings/internal/validators"
)

// Services aggregates every business-rules component behind one injectable
// value.
type Services struct {
	Auth      AuthService
	Stats     StatsService
	Sightings SightingService
}

// NewServices wires all services over the given repositories.
func NewServices(repos *store.Repositories, log *logger.Logger) *Services {
	log.Debug().Msg("creating services")

	hasher := crypto.NewPasswordHasher()
	validator := validators.NewRequestValidator()

	return &Services{
		Auth:      NewAuthService(repos.Users, hasher, validator, log),
		Stats:     NewStatsService(repos.Stats, log),
		Sightings: NewSightingService(repos.Observations, repos.Users, validator, log),
	}
}
