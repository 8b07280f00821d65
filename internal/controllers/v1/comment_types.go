package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
	ez_uuid "github.com/studentbudget/backend/internal/uuid"
)

// CommentEditable represents all user configurable parameters
type CommentEditable struct {
	PostID  uuid.UUID `json:"postId" example:"6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee"`                       // ID of the post. Cannot be changed
	UserID  uuid.UUID `json:"userId" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`                       // ID of the author. Cannot be changed
	Content string    `json:"content" binding:"max=1000" example:"I do the same with curry, works great!"` // The comment
}

func (editable CommentEditable) model() models.PostComment {
	return models.PostComment{
		PostID:  editable.PostID,
		UserID:  editable.UserID,
		Content: editable.Content,
	}
}

type CommentLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/comments/d0a3e2d4-1c8b-4d0e-9c5a-b7b5f4b1a9c3"` // The comment itself
	Post   string `json:"post" example:"https://example.com/api/v1/posts/6c1e0a52-8c1f-4a4c-a0b8-3d5d37a7b2ee"`    // The post commented on
	Author string `json:"author" example:"https://example.com/api/v1/profiles/9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`
}

type Comment struct {
	models.DefaultModel
	CommentEditable
	Links CommentLinks `json:"links"`
}

func newComment(c *gin.Context, model models.PostComment) Comment {
	url := c.GetString(string(models.DBContextURL))

	return Comment{
		DefaultModel: model.DefaultModel,
		CommentEditable: CommentEditable{
			PostID:  model.PostID,
			UserID:  model.UserID,
			Content: model.Content,
		},
		Links: CommentLinks{
			Self:   fmt.Sprintf("%s/v1/comments/%s", url, model.ID),
			Post:   fmt.Sprintf("%s/v1/posts/%s", url, model.PostID),
			Author: fmt.Sprintf("%s/v1/profiles/%s", url, model.UserID),
		},
	}
}

type CommentListResponse struct {
	Data       []Comment   `json:"data"`                                                          // List of Comments
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CommentResponse struct {
	Data  *Comment `json:"data"`                                                          // Data for the Comment
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CommentQueryFilter struct {
	PostID ez_uuid.UUID `form:"post"`                       // By ID of the post
	UserID ez_uuid.UUID `form:"user"`                       // By ID of the author
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first Comment returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Comments to return. Defaults to 50.
}

func (f CommentQueryFilter) model() models.PostComment {
	return models.PostComment{
		PostID: f.PostID.UUID,
		UserID: f.UserID.UUID,
	}
}
