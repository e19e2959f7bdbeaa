package store

import (
	"github.com/mpolacek/ufo-sightings/internal/logger"
)

// Repositories aggregates every data-access component behind one injectable
// value.
type Repositories struct {
	Users        UserRepository
	Stats        StatsRepository
	Observations ObservationRepository
}

// NewRepositories constructs all repositories over the shared connection
// pool.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	log.Debug().Msg("creating repositories")

	return &Repositories{
		Users:        NewUserRepository(db, log),
		Stats:        NewStatsRepository(db, log),
		Observations: NewObservationRepository(db, log),
	}
}
