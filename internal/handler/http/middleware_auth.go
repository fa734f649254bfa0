package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the user's id
// and username in the request context (see [utils.WithUser]) before
// delegating to the next handler. The request logger is enriched with the
// user id as well.
//
// Every rejection is answered with HTTP 401 and the error envelope:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not of the form "Bearer <token>" ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, malformed, signed with another key or lacks the
//     identity claims ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, err)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Username)
		ctx = log.ForUser(token.UserID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
