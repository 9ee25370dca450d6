package blogsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_failed"
	ErrorCodeUnauthorized       = "unauthorized"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	// Error is a machine readable code, e.g. "validation_failed"
	Error string `json:"error"`

	// ErrorDescription is a human readable explanation
	ErrorDescription string `json:"error_description"`

	// Details maps input fields to what is wrong with them
	Details map[string]string `json:"details,omitempty"`
}

// APIError is returned by Client for any non-2xx response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Details     map[string]string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
	if len(e.Details) == 0 {
		return msg
	}

	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Details[f])
	}
	return msg + " (" + strings.Join(parts, "; ") + ")"
}

// parseErrorResponse builds an APIError from a response body, falling back to
// the status text when the body is not an ErrorResponse.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        er.Error,
		Description: er.ErrorDescription,
		Details:     er.Details,
	}
}
