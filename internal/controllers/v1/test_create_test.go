package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/test"
)

func createTestProfile(t *testing.T, p v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	if p.DisplayName == "" {
		p.DisplayName = "Testing profile"
	}

	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/profiles/%s", uuid.New()), p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var profile v1.ProfileResponse
	test.DecodeResponse(t, &r, &profile)

	return profile
}

// getTestCategory returns the seeded category with the name.
func getTestCategory(t *testing.T, name string) v1.Category {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?name=%s", url.QueryEscape(name)), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(t, &r, &categories)

	for _, c := range categories.Data {
		if c.Name == name {
			return c
		}
	}

	require.FailNow(t, "category not found", name)
	return v1.Category{}
}

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.UserID == uuid.Nil {
		e.UserID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if e.CategoryID == uuid.Nil {
		e.CategoryID = getTestCategory(t, "食費").ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &expense)

	if r.Code == http.StatusCreated {
		return expense.Data[0]
	}

	return v1.ExpenseResponse{}
}

func createTestPost(t *testing.T, p v1.PostEditable, expectedStatus ...int) v1.PostResponse {
	if p.UserID == uuid.Nil {
		p.UserID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if p.Title == "" {
		p.Title = "Testing post"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/posts", p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var post v1.PostResponse
	test.DecodeResponse(t, &r, &post)

	return post
}

func createTestComment(t *testing.T, c v1.CommentEditable, expectedStatus ...int) v1.CommentResponse {
	if c.PostID == uuid.Nil {
		c.PostID = createTestPost(t, v1.PostEditable{}).Data.ID
	}

	if c.UserID == uuid.Nil {
		c.UserID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if c.Content == "" {
		c.Content = "Testing comment"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/comments", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var comment v1.CommentResponse
	test.DecodeResponse(t, &r, &comment)

	return comment
}
