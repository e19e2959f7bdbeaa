package store

import (
	"context"

	"github.com/mpolacek/ufo-sightings/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new user row and returns it with the
	// server-assigned ID. Returns [ErrUserAlreadyExists] on a unique
	// constraint violation (username or email taken).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user row matching email, or
	// [ErrNoUserWasFound] when no such row exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UserExists reports whether a user row with the given ID exists.
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// StatsRepository executes the read-only aggregate listing queries. Every
// method takes the already-parsed [models.ListParams]; the sort direction is
// re-checked against the closed enumeration immediately before it is
// interpolated into query text.
type StatsRepository interface {
	MostObserved(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error)
	MostVisited(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error)
	AlienInteractions(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error)
	RecentAbductions(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error)
}

// ObservationRepository persists sighting reports.
type ObservationRepository interface {
	// UpsertSighting atomically inserts the user's observation row or, when
	// one already exists, updates its date, location and spacecraft type
	// (species is left unchanged). Returns true when a new row was created.
	UpsertSighting(ctx context.Context, report models.SightingReport) (created bool, err error)
}
