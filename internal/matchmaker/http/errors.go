package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
	"github.com/aussiebroadwan/cofound/pkg/httpx"
	"github.com/aussiebroadwan/cofound/pkg/matchsdk"
)

// callerFrom builds the service-level identity from the verified claims the
// authn middleware stored in the request. Requests without claims get the
// zero (unauthenticated) identity.
func callerFrom(r *http.Request) domain.Identity {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		return domain.Identity{}
	}
	return domain.Identity{
		ID:        claims.Subject,
		Email:     claims.Email,
		Anonymous: claims.Anonymous,
		Scopes:    claims.Scopes,
	}
}

// writeServiceError maps the service error taxonomy onto status codes.
// Internal errors are logged with their chain but never echoed to the client.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, msg string, err error) {
	code, errCode, desc := http.StatusInternalServerError, matchsdk.ErrorCodeServerError, "internal error"

	switch {
	case service.IsNotFound(err):
		code, errCode, desc = http.StatusNotFound, matchsdk.ErrorCodeNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidArgument):
		code, errCode, desc = http.StatusBadRequest, matchsdk.ErrorCodeInvalidRequest, err.Error()
	case errors.Is(err, service.ErrInvalidTransition):
		code, errCode, desc = http.StatusConflict, matchsdk.ErrorCodeInvalidTransition, err.Error()
	case errors.Is(err, service.ErrPermissionDenied):
		code, errCode, desc = http.StatusForbidden, matchsdk.ErrorCodePermissionDenied, "permission denied"
	case errors.Is(err, service.ErrUnavailable):
		code, errCode, desc = http.StatusServiceUnavailable, matchsdk.ErrorCodeUnavailable, "store temporarily unavailable"
		w.Header().Set("Retry-After", "5")
	}

	if code >= http.StatusInternalServerError {
		log.Error(msg, "error", err, "status", code)
	} else {
		log.Info(msg, "error", err, "status", code)
	}

	httpx.WriteJSON(w, code, matchsdk.ErrorResponse{
		Error:            errCode,
		ErrorDescription: desc,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, matchsdk.ErrorResponse{
		Error:            matchsdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}
