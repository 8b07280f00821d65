package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/studentbudget/backend/internal/httputil"
)

// APIError is an error response of the API.
type APIError struct {
	StatusCode int
	Message    string
	body       []byte
}

func newAPIError(status int, body []byte) *APIError {
	var r struct {
		Error *string `json:"error"`
	}

	e := &APIError{StatusCode: status, body: body}
	if json.Unmarshal(body, &r) == nil && r.Error != nil {
		e.Message = *r.Error
	} else {
		e.Message = strings.ToLower(http.StatusText(status))
	}

	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NotFound reports if the requested resource does not exist.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// UserMessage returns the message of err to show to users in the language
// that matches acceptLanguage best.
func UserMessage(err error, acceptLanguage string) string {
	var e *APIError
	if errors.As(err, &e) {
		return httputil.Translate(e.Message, httputil.Language(acceptLanguage))
	}

	return httputil.UserMessage(err, acceptLanguage)
}
