package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.UserCredentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidJSON, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Register(ctx, input.Username, input.Password)
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("user registration failed")
		writeError(w, r, http.StatusBadRequest, app.MsgRegistrationFailed, err)
		return
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")
	writeSuccess(w, r, http.StatusCreated, app.MsgRegistrationSuccessful, nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.UserCredentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidJSON, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.ValidateCredentials(ctx, input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", input.Username).Msg("no user was found/wrong password")
			writeError(w, r, http.StatusUnauthorized, app.MsgInvalidLoginPassword, err)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, http.StatusBadRequest, app.MsgLoginFailed, err)
			return
		}
	}

	token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, http.StatusBadRequest, app.MsgLoginFailed, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, models.LoginResponse{
		Token: models.LoginResult{AccessToken: token.SignedString, Username: token.Username},
	})
}
