package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/service"
	"github.com/mpolacek/ufo-sightings/internal/utils"
	"github.com/mpolacek/ufo-sightings/models"
)

func (h *Handler) reportUfoSighting(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var report models.SightingReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Error().Err(err).Msg("reportUfoSighting: malformed request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.Sightings.Report(r.Context(), report)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			_, _ = utils.WriteJSON(w, errorResponse{Error: msgReportMissingFields}, http.StatusBadRequest)
		case errors.Is(err, service.ErrUnknownUser):
			log.Info().Int64("user_id", report.UserID).Msg("reportUfoSighting: unknown user")
			_, _ = utils.WriteJSON(w, errorResponse{Error: msgReportUnknownUser}, http.StatusUnauthorized)
		default:
			log.Error().Err(err).Msg("reportUfoSighting: storage failure")
			_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgReportDBError, Details: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	if created {
		log.Info().Int64("user_id", report.UserID).Msg("sighting created")
		_, _ = utils.WriteJSON(w, messageResponse{Message: msgReportCreated}, http.StatusCreated)
		return
	}

	log.Info().Int64("user_id", report.UserID).Msg("sighting updated")
	_, _ = utils.WriteJSON(w, messageResponse{Message: msgReportUpdated}, http.StatusOK)
}
