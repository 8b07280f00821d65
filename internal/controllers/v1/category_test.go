package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/studentbudget/backend/internal/budget"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/test"
)

// TestCategoriesSeeded verifies that all categories of the registry
// are available with their style.
func (suite *TestSuiteStandard) TestCategoriesSeeded() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	entries := budget.Default().Entries()
	assert.Len(suite.T(), response.Data, len(entries))
	assert.Equal(suite.T(), int64(len(entries)), response.Pagination.Total)

	styles := make(map[string]budget.Style, len(response.Data))
	for _, c := range response.Data {
		styles[c.Name] = c.Style
	}

	for _, e := range entries {
		assert.Equal(suite.T(), e.Style, styles[e.Name], "Style for %s is wrong", e.Name)
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := getTestCategory(suite.T(), "交通費")

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Category", c.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID (positive number)", "23", http.StatusBadRequest},
		{"Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)

			if tt.status == http.StatusOK {
				assert.Equal(t, "交通費", category.Data.Name)
				assert.Equal(t, "train", category.Data.Style.Icon)
			}
		})
	}
}

// TestCategoriesReadOnly verifies that categories cannot be changed through the API.
func (suite *TestSuiteStandard) TestCategoriesReadOnly() {
	c := getTestCategory(suite.T(), "娯楽")

	for _, method := range []string{http.MethodPatch, http.MethodDelete, http.MethodPut} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, c.Links.Self, `{ "name": "Hobby" }`)
			test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `[{ "name": "Hobby" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=費", 4},
		{"Search", "search=交", 2},
		{"Unknown", "name=Hobby", 0},
		{"Limit", "limit=3", 3},
		{"Limit negative", "limit=-1", len(budget.Default().Entries())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}
