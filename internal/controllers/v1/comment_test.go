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
	"github.com/studentbudget/backend/test"
)

func (suite *TestSuiteStandard) TestCommentsCreate() {
	p := createTestPost(suite.T(), v1.PostEditable{})
	c := createTestComment(suite.T(), v1.CommentEditable{PostID: p.Data.ID, Content: "  Great tip!  "})

	assert.Equal(suite.T(), "Great tip!", c.Data.Content)
	assert.Equal(suite.T(), p.Data.Links.Self, c.Data.Links.Post)

	// The comment count of the post is updated
	r := test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	var post v1.PostResponse
	test.DecodeResponse(suite.T(), &r, &post)
	assert.Equal(suite.T(), int64(1), post.Data.CommentCount)
}

func (suite *TestSuiteStandard) TestCommentsCreateFails() {
	p := createTestPost(suite.T(), v1.PostEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Empty content", v1.CommentEditable{PostID: p.Data.ID, UserID: p.Data.UserID, Content: " "}},
		{"Content too long", v1.CommentEditable{PostID: p.Data.ID, UserID: p.Data.UserID, Content: strings.Repeat("a", 1001)}},
		{"Unknown post", v1.CommentEditable{PostID: uuid.New(), UserID: p.Data.UserID, Content: "Hi"}},
		{"Unknown user", v1.CommentEditable{PostID: p.Data.ID, UserID: uuid.New(), Content: "Hi"}},
		{"Broken body", `{ "content": 1 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/comments", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCommentsGetSingle() {
	c := createTestComment(suite.T(), v1.CommentEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Comment", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Comment with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No Comment with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE No Comment with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/comments/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCommentsUpdate() {
	c := createTestComment(suite.T(), v1.CommentEditable{Content: "Frist"})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"content": "First"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CommentResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "First", updated.Data.Content)
	assert.Equal(suite.T(), c.Data.PostID, updated.Data.PostID)
}

func (suite *TestSuiteStandard) TestCommentsUpdateFails() {
	c := createTestComment(suite.T(), v1.CommentEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "content": 2" }`},
		{"Empty content", map[string]any{"content": ""}},
		{"Move to other post", map[string]any{"postId": uuid.New()}},
		{"Change author", map[string]any{"userId": uuid.New()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, c.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCommentsGetFilter() {
	p1 := createTestPost(suite.T(), v1.PostEditable{})
	p2 := createTestPost(suite.T(), v1.PostEditable{})
	user := createTestProfile(suite.T(), v1.ProfileEditable{})

	first := createTestComment(suite.T(), v1.CommentEditable{PostID: p1.Data.ID, UserID: user.Data.ID, Content: "First"})
	_ = createTestComment(suite.T(), v1.CommentEditable{PostID: p1.Data.ID, Content: "Second"})
	_ = createTestComment(suite.T(), v1.CommentEditable{PostID: p2.Data.ID, UserID: user.Data.ID, Content: "Other post"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Post", fmt.Sprintf("post=%s", p1.Data.ID), 2},
		{"User", fmt.Sprintf("user=%s", user.Data.ID), 2},
		{"Post and user", fmt.Sprintf("post=%s&user=%s", p2.Data.ID, user.Data.ID), 1},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CommentListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/comments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	// Comments are ordered oldest first
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/comments?post=%s", p1.Data.ID), "")
	var re v1.CommentListResponse
	test.DecodeResponse(suite.T(), &r, &re)
	require.Len(suite.T(), re.Data, 2)
	assert.Equal(suite.T(), first.Data.ID, re.Data[0].ID)
}

func (suite *TestSuiteStandard) TestCommentsDelete() {
	c := createTestComment(suite.T(), v1.CommentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
