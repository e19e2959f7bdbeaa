package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mpolacek/ufo-sightings/internal/logger"
	"github.com/mpolacek/ufo-sightings/internal/service"
	"github.com/mpolacek/ufo-sightings/internal/store"
	"github.com/mpolacek/ufo-sightings/internal/utils"
	"github.com/mpolacek/ufo-sightings/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Error().Err(err).Msg("register: malformed request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	info, err := h.services.Auth.Register(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			_, _ = utils.WriteJSON(w, signUpErrorResponse{SignUpError: msgSignUpMissingFields}, http.StatusBadRequest)
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Info().Str("email", creds.Email).Msg("register: duplicate user")
			_, _ = utils.WriteJSON(w, signUpErrorResponse{SignUpError: msgSignUpDuplicate}, http.StatusConflict)
		default:
			log.Error().Err(err).Msg("register: storage failure")
			_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgSignUpDBError, Details: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("user_id", info.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Error().Err(err).Msg("login: malformed request body")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	info, err := h.services.Auth.Login(r.Context(), creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongEmail):
			_, _ = utils.WriteJSON(w, loginErrorResponse{LoginError: msgLoginWrongEmail}, http.StatusUnauthorized)
		case errors.Is(err, service.ErrWrongPassword):
			_, _ = utils.WriteJSON(w, loginErrorResponse{LoginError: msgLoginWrongPassword}, http.StatusUnauthorized)
		default:
			log.Error().Err(err).Msg("login: storage failure")
			_, _ = utils.WriteJSON(w, dbErrorResponse{DBError: msgLoginDBError, Details: err.Error()}, http.StatusInternalServerError)
		}
		return
	}

	log.Info().Int64("user_id", info.ID).Msg("user logged in")
	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}
