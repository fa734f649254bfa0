package http

import (
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// writeSuccess writes a {success:true} envelope.
func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.NewSuccessResponse(message, data), status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeSuccess").Msg("error writing response")
	}
}

// writeError writes a {success:false} envelope whose "errors" field is the
// client-safe form of err.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if _, werr := utils.WriteJSON(w, models.NewErrorResponse(message, publicError(err)), status); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "writeError").Msg("error writing response")
	}
}
