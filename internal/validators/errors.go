package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyLocation      = errors.New("location is required")
	ErrEmptyShipType      = errors.New("ship type is required")
	ErrEmptyEncounterDate = errors.New("encounter date is required")
	ErrInvalidSpeciesID   = errors.New("invalid species ID")
	ErrInvalidUserID      = errors.New("invalid user ID")
)
