package service

import (
	"context"

	"github.com/mpolacek/ufo-sightings/models"
)

// AuthService handles user registration and credential verification. There
// is no token or session design: both operations return the plain public
// user record.
type AuthService interface {
	// Register creates a new account. Returns [ErrMissingFields] when
	// username, email or password is absent, [store.ErrUserAlreadyExists]
	// when the username or email is taken, and [ErrHashingFailed] when the
	// hashing primitive itself fails.
	Register(ctx context.Context, creds models.Credentials) (models.UserInfo, error)

	// Login authenticates by email and password. Returns [ErrWrongEmail]
	// when no account matches the email and [ErrWrongPassword] when the
	// password does not verify against the stored hash.
	Login(ctx context.Context, creds models.Credentials) (models.UserInfo, error)
}

// StatsService exposes the read-only aggregate listings.
type StatsService interface {
	MostObserved(ctx context.Context, params models.ListParams) ([]models.MostObservedRow, error)
	MostVisited(ctx context.Context, params models.ListParams) ([]models.MostVisitedRow, error)
	AlienInteractions(ctx context.Context, params models.ListParams) ([]models.InteractionsRow, error)
	RecentAbductions(ctx context.Context, params models.ListParams) ([]models.AbductionRow, error)
}

// SightingService handles the single-slot-per-user sighting report.
type SightingService interface {
	// Report validates and persists a sighting report. Returns
	// [ErrMissingFields] when a required field is absent, [ErrUnknownUser]
	// when the referenced user does not exist, and otherwise reports whether
	// a new observation row was created (as opposed to updated).
	Report(ctx context.Context, report models.SightingReport) (created bool, err error)
}
