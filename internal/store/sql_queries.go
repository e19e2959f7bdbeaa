package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mpolacek/ufo-sightings/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email;`

	findUserByEmail = `SELECT id, username, email, password_hash
    FROM users
    WHERE email = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	// One observation row per user: the UNIQUE(user_id) constraint turns the
	// report into an atomic insert-or-update. The species reference is
	// deliberately absent from the update set, and (xmax = 0) distinguishes a
	// fresh insert from a conflict update.
	upsertSighting = `INSERT INTO observations (observation_date, location_name, species_id, spacecraft_type, user_id)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (user_id) DO UPDATE SET
        observation_date = EXCLUDED.observation_date,
        location_name    = EXCLUDED.location_name,
        spacecraft_type  = EXCLUDED.spacecraft_type
    RETURNING (xmax = 0) AS created;`
)

// orderSQL is the closed-enum gate in front of every ORDER BY interpolation.
// Sort direction cannot be expressed as a bind parameter, so it is the one
// query fragment assembled from request data; nothing outside {ASC, DESC}
// may pass.
func orderSQL(order models.Order) (string, error) {
	if !order.Valid() {
		return "", fmt.Errorf("%w: invalid sort direction %q", ErrBuildingSQLQuery, string(order))
	}

	return string(order), nil
}

// buildMostObservedQuery counts observations per species, keeps the top
// `limit` species by count, then re-sorts the limited set by species name in
// the requested direction.
func buildMostObservedQuery(params models.ListParams) (string, []any, error) {
	direction, err := orderSQL(params.Order)
	if err != nil {
		return "", nil, err
	}

	inner := sq.Select(
		"species.name",
		"species.home_planet",
		"species.limbs_number",
		"COUNT(*) AS observations_count",
	).
		From("observations").
		Join("species ON observations.species_id = species.id").
		GroupBy("species.name", "species.home_planet", "species.limbs_number").
		OrderBy("observations_count DESC").
		Suffix("LIMIT ?", params.Limit)

	return sq.Select("*").
		FromSelect(inner, "most_observed").
		OrderBy("name " + direction).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func buildMostVisitedQuery(params models.ListParams) (string, []any, error) {
	direction, err := orderSQL(params.Order)
	if err != nil {
		return "", nil, err
	}

	return sq.Select(
		"location_name",
		"COUNT(*) AS total_observations",
	).
		From("observations").
		GroupBy("location_name").
		OrderBy("total_observations " + direction).
		Suffix("LIMIT ?", params.Limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func buildAlienInteractionsQuery(params models.ListParams) (string, []any, error) {
	direction, err := orderSQL(params.Order)
	if err != nil {
		return "", nil, err
	}

	return sq.Select(
		"species.name",
		"species.home_planet",
		"species.limbs_number",
		"COUNT(*) AS interactions_count",
		"COUNT(*) FILTER (WHERE is_friendly) AS positive_interactions",
	).
		From("interactions").
		Join("species ON interactions.species_id = species.id").
		GroupBy("species.name", "species.home_planet", "species.limbs_number").
		OrderBy("interactions_count " + direction).
		Suffix("LIMIT ?", params.Limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func buildRecentAbductionsQuery(params models.ListParams) (string, []any, error) {
	direction, err := orderSQL(params.Order)
	if err != nil {
		return "", nil, err
	}

	return sq.Select(
		"abductions.interaction_id",
		"abductions.human_name",
		"abductions.abduction_date",
		"abductions.person_returned",
		"species.name AS abductor_name",
		"species.home_planet",
	).
		From("abductions").
		Join("interactions ON abductions.interaction_id = interactions.id").
		Join("species ON interactions.species_id = species.id").
		OrderBy("abduction_date " + direction).
		Suffix("LIMIT ?", params.Limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
