package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studentbudget/backend/internal/router"
)

// encodeBody turns a request body into a reader. Strings are sent as they
// are, structs, maps and slices as JSON. Anything else must be a *bytes.Buffer.
func encodeBody(t *testing.T, body any) *bytes.Buffer {
	switch reflect.TypeOf(body).Kind() {
	case reflect.String:
		return bytes.NewBufferString(body.(string))
	case reflect.Struct, reflect.Map, reflect.Slice:
		encoded, err := json.Marshal(body)
		require.Nil(t, err, "request body could not be encoded")
		return bytes.NewBuffer(encoded)
	default:
		return body.(*bytes.Buffer)
	}
}

// Request serves a single request with a fresh router mounted at API_URL.
//
// Each call configures its own engine, so tests using it must not run in
// parallel with other tests that configure a router.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "router could not be configured")

	router.AttachRoutes(r.Group(baseURL.Path))

	req, err := http.NewRequest(method, reqURL, encodeBody(t, body))
	require.Nil(t, err)

	for _, h := range headers {
		for name, value := range h {
			req.Header.Set(name, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the JSON body of a response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	require.Nil(t, err, "response %q could not be decoded into %T, request ID: %s", r.Body, target, r.Result().Header.Get("x-request-id"))
}

// AssertHTTPStatus fails the test unless the response has one of the expected statuses.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "unexpected status, request ID: %s, body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
