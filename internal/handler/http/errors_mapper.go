package http

import (
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
)

// publicErrors lists the errors whose message may be shown to clients.
// Causes come before the errors that wrap them, so the most specific
// message wins.
var publicErrors = []error{
	adapter.ErrQuoteNotFound,
	adapter.ErrUpstream,
	adapter.ErrQuoteAPIKeyNotConfigured,

	store.ErrUsernameAlreadyExists,
	store.ErrStockNotFound,

	service.ErrInvalidDataProvided,
	service.ErrInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid,
	service.ErrTokenCreationFailed,
	service.ErrCreationFailed,

	ErrEmptyAuthorizationHeader,
	ErrInvalidAuthorizationHeader,
	ErrNoUserInContext,
	ErrRouteNotFound,
}

// publicError converts err into the value of the "errors" field of the
// response envelope. Validation failures become a list of field messages;
// unknown errors are hidden behind a generic message.
func publicError(err error) any {
	if errors.Is(err, validators.ErrValidation) {
		return validationMessages(err)
	}

	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return app.MsgInternalServerError
}

// validationMessages flattens the joined field errors produced by the
// validators package.
func validationMessages(err error) []string {
	var messages []string

	multi, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range multi.Unwrap() {
		if e == validators.ErrValidation {
			continue
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, fieldErr := range joined.Unwrap() {
				messages = append(messages, fieldErr.Error())
			}
			continue
		}
		messages = append(messages, e.Error())
	}

	return messages
}
