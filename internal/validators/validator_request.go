package validators

import (
	"context"

	"github.com/mpolacek/ufo-sightings/models"
)

const (
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldLocation      = "location"
	FieldShipType      = "ship_type"
	FieldEncounterDate = "encounter_date"
	FieldSpeciesID     = "species_id"
	FieldUserID        = "user_id"
)

// RequestValidator enforces the required-field rules of the register, login
// and report-sighting request bodies.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.SightingReport:
		return v.validateSightingReport(ctx, value, fields...)
	case *models.SightingReport:
		return v.validateSightingReport(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSightingReport(_ context.Context, report models.SightingReport, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocation, FieldShipType, FieldEncounterDate, FieldSpeciesID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldLocation:
			if report.Location == "" {
				return ErrEmptyLocation
			}
		case FieldShipType:
			if report.ShipType == "" {
				return ErrEmptyShipType
			}
		case FieldEncounterDate:
			if report.EncounterDate == "" {
				return ErrEmptyEncounterDate
			}
		case FieldSpeciesID:
			if report.SpeciesID <= 0 {
				return ErrInvalidSpeciesID
			}
		case FieldUserID:
			if report.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
