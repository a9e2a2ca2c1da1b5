package matchsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInvalidTransition = "invalid_transition"
	ErrorCodePermissionDenied  = "permission_denied"
	ErrorCodeUnavailable       = "store_unavailable"
	ErrorCodeServerError       = "server_error"

	// Written by the bearer middleware.
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// ErrNoToken is returned by member and admin calls made without a token.
var ErrNoToken = errors.New("matchsdk: no access token")

// APIError is a non-2xx response from the matchmaker.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func IsNotFound(err error) bool          { return hasCode(err, ErrorCodeNotFound) }
func IsInvalidRequest(err error) bool    { return hasCode(err, ErrorCodeInvalidRequest) }
func IsInvalidTransition(err error) bool { return hasCode(err, ErrorCodeInvalidTransition) }
func IsUnavailable(err error) bool       { return hasCode(err, ErrorCodeUnavailable) }

// IsForbidden covers both a missing scope and a service-level refusal.
func IsForbidden(err error) bool {
	return hasCode(err, ErrorCodePermissionDenied) || hasCode(err, ErrorCodeInsufficientScope)
}

// parseErrorResponse turns an error body into an *APIError, falling back to
// the status text when the body is not an ErrorResponse.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
