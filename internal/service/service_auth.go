package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpolacek/ufo-sightings/internal/crypto"
	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/store"
	"github.com/mpolacek/ufo-sightings/internal/validators"
	"github.com/mpolacek/ufo-sightings/models"
)

// authService is the concrete implementation of [AuthService]. It hashes
// passwords with the injected [crypto.PasswordHasher] and delegates
// persistence to a [store.UserRepository].
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository,
// hasher and validator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It requires username, email and password to be present, hashes the
// password, and delegates persistence to the repository. The plaintext and
// the hash are never logged.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Str("username", creds.Username).Str("email", creds.Email).Msg("incomplete registration data")
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		Email:        creds.Email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Str("email", creds.Email).Msg("user creation ended with error")
		return models.UserInfo{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Info(), nil
}

// Login authenticates an existing user.
//
// The lookup and the verification keep the documented per-field split: an
// unknown email yields [ErrWrongEmail], a failed bcrypt comparison yields
// [ErrWrongPassword]. An empty email simply matches no account.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", creds.Email).Msg("login attempt for unknown email")
			return models.UserInfo{}, ErrWrongEmail
		}

		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.UserInfo{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
		return models.UserInfo{}, ErrWrongPassword
	}

	return foundUser.Info(), nil
}
