package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/internal/models"
	"github.com/studentbudget/backend/test"
)

// TestProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfilesDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestProfilesPut() {
	id := uuid.New()
	path := fmt.Sprintf("http://example.com/v1/profiles/%s", id)

	r := test.Request(suite.T(), http.MethodPut, path, v1.ProfileEditable{
		DisplayName:   "  Hanako  ",
		Age:           19,
		Grade:         "University 2nd year",
		Prefecture:    "Tokyo",
		MonthlyBudget: 30000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var created v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &created)
	assert.Equal(suite.T(), id, created.Data.ID, "The profile ID must be the one from the path")
	assert.Equal(suite.T(), "Hanako", created.Data.DisplayName, "Whitespace must be trimmed")
	assert.Equal(suite.T(), int64(30000), created.Data.MonthlyBudget)

	// A second PUT replaces all fields and keeps the creation time
	r = test.Request(suite.T(), http.MethodPut, path, v1.ProfileEditable{
		DisplayName:   "Hanako",
		MonthlyBudget: 45000,
		Savings:       100000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var replaced v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &replaced)
	assert.Equal(suite.T(), id, replaced.Data.ID)
	assert.Equal(suite.T(), int64(45000), replaced.Data.MonthlyBudget)
	assert.Equal(suite.T(), int64(100000), replaced.Data.Savings)
	assert.Equal(suite.T(), 0, replaced.Data.Age, "PUT must replace fields that are not set")
	assert.True(suite.T(), created.Data.CreatedAt.Equal(replaced.Data.CreatedAt), "The creation time must not change")

	// There is still only one profile
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	var list v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

func (suite *TestSuiteStandard) TestProfilesPutFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid ID", "notaUUID", v1.ProfileEditable{}, http.StatusBadRequest},
		{"Negative budget", uuid.NewString(), v1.ProfileEditable{MonthlyBudget: -1}, http.StatusBadRequest},
		{"Negative age", uuid.NewString(), `{ "age": -3 }`, http.StatusBadRequest},
		{"Broken body", uuid.NewString(), `{ "displayName": 2 }`, http.StatusBadRequest},
		{"Empty body", uuid.NewString(), "", http.StatusBadRequest},
		{"Name too long", uuid.NewString(), v1.ProfileEditable{DisplayName: strings.Repeat("a", 51)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Profile", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")

			var profile v1.ProfileResponse
			test.DecodeResponse(t, &r, &profile)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesDeleteNotAllowed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestProfilesGetFilter() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Hanako", Prefecture: "Tokyo", SchoolName: "Example University", Grade: "1"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Taro", Prefecture: "Osaka", SchoolName: "Example High School", Grade: "2"})
	_ = createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Jiro", Prefecture: "Tokyo", Grade: "2"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"Prefecture", "prefecture=Tokyo", 2, 2},
		{"Grade", "grade=2", 2, 2},
		{"Grade and prefecture", "grade=2&prefecture=Tokyo", 1, 1},
		{"Display name", "displayName=ro", 2, 2},
		{"School name", "schoolName=University", 1, 1},
		{"Empty school name", "schoolName", 1, 1},
		{"Search", "search=Example", 2, 2},
		{"Search no match", "search=Nagoya", 0, 0},
		{"Offset", "offset=1", 2, 3},
		{"Limit", "limit=1", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ProfileListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.total, re.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Hanako", Age: 19, MonthlyBudget: 30000})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"monthlyBudget": 0,
		"savings":       5000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), int64(0), updated.Data.MonthlyBudget, "Zero values must be set when specified")
	assert.Equal(suite.T(), int64(5000), updated.Data.Savings)
	assert.Equal(suite.T(), "Hanako", updated.Data.DisplayName, "Fields not in the body must not change")
	assert.Equal(suite.T(), 19, updated.Data.Age)
}

func (suite *TestSuiteStandard) TestProfilesUpdateFails() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "displayName": 2" }`},
		{"Invalid type", `{ "age": "nineteen" }`},
		{"Negative savings", `{ "savings": -100 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, p.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
