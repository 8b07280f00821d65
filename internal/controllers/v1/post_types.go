package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
	ez_uuid "github.com/studentbudget/backend/internal/uuid"
)

// PostEditable represents all user configurable parameters
type PostEditable struct {
	UserID        uuid.UUID `json:"userId" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`                                 // ID of the author. Cannot be changed
	Title         string    `json:"title" binding:"max=100" example:"Cook rice in bulk"`                                   // Title of the tip
	Content       string    `json:"content" binding:"max=5000" example:"Cook once a week and freeze portions." default:""` // The tip itself
	Category      string    `json:"category" binding:"max=50" example:"食費" default:""`                                     // Free text category of the tip
	SavingsEffect string    `json:"savingsEffect" binding:"max=100" example:"about 3000 yen per month" default:""`         // How much the tip saves
}

func (editable PostEditable) model() models.Post {
	return models.Post{
		UserID:        editable.UserID,
		Title:         editable.Title,
		Content:       editable.Content,
		Category:      editable.Category,
		SavingsEffect: editable.SavingsEffect,
	}
}

type PostLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/posts/6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee"`              // The post itself
	Author   string `json:"author" example:"https://example.com/api/v1/profiles/9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`         // Profile of the author
	Comments string `json:"comments" example:"https://example.com/api/v1/comments?post=6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee"`  // Comments on the post
	Like     string `json:"like" example:"https://example.com/api/v1/posts/6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee/like"`         // Toggle the like of a user
	Bookmark string `json:"bookmark" example:"https://example.com/api/v1/posts/6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee/bookmark"` // Toggle the bookmark of a user
}

// Post is a savings tip in the feed.
type Post struct {
	models.DefaultModel
	PostEditable
	LikeCount    int64     `json:"likeCount" example:"12"`   // Number of users who like the post
	CommentCount int64     `json:"commentCount" example:"3"` // Number of comments
	Liked        *bool     `json:"liked"`                    // Does the viewer like the post? Only set when the viewer query parameter is used
	Bookmarked   *bool     `json:"bookmarked"`               // Has the viewer bookmarked the post? Only set when the viewer query parameter is used
	Links        PostLinks `json:"links"`
}

func newPost(c *gin.Context, model models.Post) (Post, error) {
	url := c.GetString(string(models.DBContextURL))

	comments, err := model.Comments(models.DB)
	if err != nil {
		return Post{}, err
	}

	return Post{
		DefaultModel: model.DefaultModel,
		PostEditable: PostEditable{
			UserID:        model.UserID,
			Title:         model.Title,
			Content:       model.Content,
			Category:      model.Category,
			SavingsEffect: model.SavingsEffect,
		},
		LikeCount:    model.LikeCount,
		CommentCount: comments,
		Links: PostLinks{
			Self:     fmt.Sprintf("%s/v1/posts/%s", url, model.ID),
			Author:   fmt.Sprintf("%s/v1/profiles/%s", url, model.UserID),
			Comments: fmt.Sprintf("%s/v1/comments?post=%s", url, model.ID),
			Like:     fmt.Sprintf("%s/v1/posts/%s/like", url, model.ID),
			Bookmark: fmt.Sprintf("%s/v1/posts/%s/bookmark", url, model.ID),
		},
	}, nil
}

type PostListResponse struct {
	Data       []Post      `json:"data"`                                                          // List of Posts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PostResponse struct {
	Data  *Post   `json:"data"`                                                          // Data for the Post
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PostQueryFilter struct {
	UserID       ez_uuid.UUID `form:"author"`                           // By ID of the author
	Category     string       `form:"category"`                         // By category
	Title        string       `form:"title" filterField:"false"`        // By title
	Search       string       `form:"search" filterField:"false"`       // By string in title or content
	Viewer       ez_uuid.UUID `form:"viewer" filterField:"false"`       // Set liked and bookmarked for this user
	BookmarkedBy ez_uuid.UUID `form:"bookmarkedBy" filterField:"false"` // Only posts this user has bookmarked
	Offset       uint         `form:"offset" filterField:"false"`       // The offset of the first Post returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`        // Maximum number of Posts to return. Defaults to 50.
}

func (f PostQueryFilter) model() models.Post {
	return models.Post{
		UserID:   f.UserID.UUID,
		Category: f.Category,
	}
}

// ReactionEditable is the body of a like or bookmark toggle.
type ReactionEditable struct {
	UserID uuid.UUID `json:"userId" binding:"required" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"` // ID of the user reacting
}

// Reaction is the state of a like or bookmark after a toggle.
type Reaction struct {
	PostID    uuid.UUID `json:"postId" example:"6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee"` // ID of the post
	UserID    uuid.UUID `json:"userId" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"` // ID of the user
	Active    bool      `json:"active" example:"true"`                                 // Does the reaction exist after the toggle?
	LikeCount int64     `json:"likeCount" example:"13"`                                // Number of likes of the post after the toggle
}

type ReactionResponse struct {
	Data  *Reaction `json:"data"`                                                          // Data for the reaction
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
