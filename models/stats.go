package models

import (
	"strings"
	"time"
)

// Order is a SQL sort direction. It is a closed enumeration: only [OrderAsc]
// and [OrderDesc] exist, and only these two values are ever interpolated into
// query text (sort direction cannot be passed as a bind parameter).
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// ParseOrder maps a raw client-supplied direction to a member of the closed
// enumeration. Anything that is not ASC or DESC (case-insensitive) silently
// falls back to def, per the listing-endpoint contract.
func ParseOrder(raw string, def Order) Order {
	switch strings.ToUpper(raw) {
	case string(OrderAsc):
		return OrderAsc
	case string(OrderDesc):
		return OrderDesc
	default:
		return def
	}
}

// Valid reports whether o is a member of the closed enumeration.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// ListParams carries the parsed query parameters shared by all four listing
// endpoints.
type ListParams struct {
	Limit int
	Order Order
}

// MostObservedRow is one row of GET /api/mostObserved.
type MostObservedRow struct {
	Name              string `json:"name"`
	HomePlanet        string `json:"home_planet"`
	LimbsNumber       int    `json:"limbs_number"`
	ObservationsCount int64  `json:"observations_count"`
}

// MostVisitedRow is one row of GET /api/mostVisited.
type MostVisitedRow struct {
	LocationName      string `json:"location_name"`
	TotalObservations int64  `json:"total_observations"`
}

// InteractionsRow is one row of GET /api/alienInteractions.
type InteractionsRow struct {
	Name                 string `json:"name"`
	HomePlanet           string `json:"home_planet"`
	LimbsNumber          int    `json:"limbs_number"`
	InteractionsCount    int64  `json:"interactions_count"`
	PositiveInteractions int64  `json:"positive_interactions"`
}

// AbductionRow is one row of GET /api/recentAbductions.
type AbductionRow struct {
	InteractionID  int64     `json:"interaction_id"`
	HumanName      string    `json:"human_name"`
	AbductionDate  time.Time `json:"abduction_date"`
	PersonReturned bool      `json:"person_returned"`
	AbductorName   string    `json:"abductor_name"`
	HomePlanet     string    `json:"home_planet"`
}
