package http

import (
	"net/http"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/utils"
	"github.com/mpolacek/ufo-sightings/models"
)

// Per-route defaults applied when ?limit= / ?order= are absent or malformed.
const (
	defaultMostObservedLimit      = 7
	defaultMostVisitedLimit       = 25
	defaultAlienInteractionsLimit = 25
	defaultRecentAbductionsLimit  = 50
)

func (h *Handler) mostObserved(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	params := listParams(r, defaultMostObservedLimit, models.OrderAsc)

	rows, err := h.services.Stats.MostObserved(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("mostObserved: storage failure")
		_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgListingDBError, Details: err.Error()}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) mostVisited(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	params := listParams(r, defaultMostVisitedLimit, models.OrderDesc)

	rows, err := h.services.Stats.MostVisited(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("mostVisited: storage failure")
		_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgListingDBError, Details: err.Error()}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) alienInteractions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	params := listParams(r, defaultAlienInteractionsLimit, models.OrderAsc)

	rows, err := h.services.Stats.AlienInteractions(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("alienInteractions: storage failure")
		_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgListingDBError, Details: err.Error()}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) recentAbductions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	params := listParams(r, defaultRecentAbductionsLimit, models.OrderDesc)

	rows, err := h.services.Stats.RecentAbductions(r.Context(), params)
	if err != nil {
		log.Error().Err(err).Msg("recentAbductions: storage failure")
		_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgListingDBError, Details: err.Error()}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}
