package models

// SightingReport is the request body of POST /api/reportUfoSighting.
//
// EncounterDate is passed through to the store as-is; the database performs
// the cast to a date value, so a malformed date surfaces as a store error
// rather than a validation error.
type SightingReport struct {
	Location      string `json:"location"`
	ShipType      string `json:"shipType"`
	EncounterDate string `json:"encounterDate"`
	SpeciesID     int64  `json:"speciesId"`
	UserID        int64  `json:"userId"`
}

// Complete reports whether all required fields are present. Zero IDs count
// as absent.
func (s SightingReport) Complete() bool {
	return s.Location != "" &&
		s.ShipType != "" &&
		s.EncounterDate != "" &&
		s.SpeciesID != 0 &&
		s.UserID != 0
}
