package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/scry-flashgen/internal/api/shared"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/redact"
	"github.com/phrazzld/scry-flashgen/internal/service"
)

// Client-facing messages.
const (
	MsgSubjectRequired = "Subject is required"
	MsgInvalidRequest  = "Invalid request format"
	MsgUnexpected      = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation errors become 400. An upstream HTTP error status (>= 400) is
// relayed as-is, except 401 and 403, which reflect this server's own
// credentials and become 500 like all other failures.
func MapErrorToStatusCode(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest
	}

	var upstreamErr *generation.UpstreamError
	if errors.As(err, &upstreamErr) &&
		upstreamErr.StatusCode >= http.StatusBadRequest &&
		upstreamErr.StatusCode <= 599 {
		switch upstreamErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusInternalServerError
		}
		return upstreamErr.StatusCode
	}

	return http.StatusInternalServerError
}

// ErrorMessage returns the client-facing message for err. Upstream and
// unknown errors keep their underlying text with credentials redacted.
func ErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	if errors.Is(err, domain.ErrSubjectRequired) {
		return MsgSubjectRequired
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var upstreamErr *generation.UpstreamError
	if errors.As(err, &upstreamErr) {
		return redact.String(upstreamErr.Error())
	}

	var svcErr *service.FlashcardServiceError
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		return redact.Error(svcErr.Err)
	}

	return redact.Error(err)
}

// HandleAPIError writes the JSON error response for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
}
