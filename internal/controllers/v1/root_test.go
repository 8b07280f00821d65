package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), v1.Links{
		Profiles:   "http://example.com/v1/profiles",
		Categories: "http://example.com/v1/categories",
		Expenses:   "http://example.com/v1/expenses",
		Months:     "http://example.com/v1/months",
		Calendar:   "http://example.com/v1/calendar",
		Posts:      "http://example.com/v1/posts",
		Comments:   "http://example.com/v1/comments",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
