package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/test"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/profiles", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/months", "OPTIONS, GET"},
		{"http://example.com/v1/calendar", "OPTIONS, GET"},
		{"http://example.com/v1/posts", "OPTIONS, GET, POST"},
		{"http://example.com/v1/comments", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies the allow header for single resources.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{UserID: profile.Data.ID, Amount: 500})
	post := createTestPost(suite.T(), v1.PostEditable{UserID: profile.Data.ID})
	comment := createTestComment(suite.T(), v1.CommentEditable{PostID: post.Data.ID, UserID: profile.Data.ID})
	category := getTestCategory(suite.T(), "交通費")

	tests := []struct {
		path     string
		response string
	}{
		{profile.Data.Links.Self, "OPTIONS, GET, PUT, PATCH"},
		{category.Links.Self, "OPTIONS, GET"},
		{expense.Data.Links.Self, "OPTIONS, GET, DELETE"},
		{post.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{post.Data.Links.Like, "OPTIONS, POST"},
		{post.Data.Links.Bookmark, "OPTIONS, POST"},
		{comment.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetailFails verifies that OPTIONS requests for single resources
// fail for invalid and unknown IDs.
func (suite *TestSuiteStandard) TestOptionsDetailFails() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Profile ID invalid", "http://example.com/v1/profiles/notaUUID", http.StatusBadRequest},
		{"Category not found", "http://example.com/v1/categories/5a1c79b6-2a34-4d0c-9a4b-0c5f2e1d33b7", http.StatusNotFound},
		{"Category ID invalid", "http://example.com/v1/categories/23", http.StatusBadRequest},
		{"Expense not found", "http://example.com/v1/expenses/5a1c79b6-2a34-4d0c-9a4b-0c5f2e1d33b7", http.StatusNotFound},
		{"Post not found", "http://example.com/v1/posts/5a1c79b6-2a34-4d0c-9a4b-0c5f2e1d33b7", http.StatusNotFound},
		{"Like for post not found", "http://example.com/v1/posts/5a1c79b6-2a34-4d0c-9a4b-0c5f2e1d33b7/like", http.StatusNotFound},
		{"Comment ID invalid", "http://example.com/v1/comments/-56", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}
