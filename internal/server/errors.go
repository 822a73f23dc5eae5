// Package server provides the HTTP API for onboarding and app recommendations.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/app-recommender/internal/recommend"
)

// Public error messages. Internal detail is logged, never returned.
const (
	msgUnauthorized        = "Unauthorized"
	msgLoadRecommendations = "Failed to load recommendations"
	msgSaveRecommendations = "Failed to save recommendations"
	msgLoadApps            = "Failed to load apps"
	msgSaveResponse        = "Failed to save onboarding response"
	msgSelectApps          = "Failed to save selected apps"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnknownApps indicates a selection named apps that are not in the active catalog
type ErrUnknownApps struct {
	AppIDs []string
}

func (e *ErrUnknownApps) Error() string {
	return fmt.Sprintf("unknown apps: %s", strings.Join(e.AppIDs, ", "))
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		unknownErr    *ErrUnknownApps
	)
	switch {
	case errors.Is(err, recommend.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &validationErr), errors.As(err, &unknownErr):
		return http.StatusBadRequest
	default:
		// Includes *recommend.UpstreamError.
		return http.StatusInternalServerError
	}
}

// publicMessage returns the message a client may see for err. Server-side
// failures get the fallback message.
func publicMessage(err error, fallback string) string {
	switch HTTPStatus(err) {
	case http.StatusUnauthorized:
		return msgUnauthorized
	case http.StatusBadRequest:
		return err.Error()
	default:
		return fallback
	}
}

// validationError converts a validator failure on a request body into an
// ErrValidation naming the JSON field.
func validationError(field string, err error) *ErrValidation {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ErrValidation{Field: field, Message: err.Error()}
	}

	fe := fieldErrs[0]
	item := strings.Contains(fe.Field(), "[")
	var msg string
	switch fe.Tag() {
	case "required":
		if item {
			msg = "must not contain empty values"
		} else {
			msg = "is required"
		}
	case "max":
		if item {
			msg = fmt.Sprintf("values must be at most %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("must have at most %s entries", fe.Param())
		}
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return &ErrValidation{Field: field, Message: msg}
}
