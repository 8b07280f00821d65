package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterCommentRoutes registers the routes for comments with
// the RouterGroup that is passed.
func RegisterCommentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCommentList)
		r.GET("", GetComments)
		r.POST("", CreateComment)
	}

	// Comment with ID
	{
		r.OPTIONS("/:id", OptionsCommentDetail)
		r.GET("/:id", GetComment)
		r.PATCH("/:id", UpdateComment)
		r.DELETE("/:id", DeleteComment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Comments
// @Success		204
// @Router			/v1/comments [options]
func OptionsCommentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Comments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/comments/{id} [options]
func OptionsCommentDetail(c *gin.Context) {
	resourceOptionsDetail[models.PostComment](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Get comments
// @Description	Returns a list of comments, oldest first
// @Tags			Comments
// @Produce		json
// @Success		200	{object}	CommentListResponse
// @Failure		400	{object}	CommentListResponse
// @Failure		500	{object}	CommentListResponse
// @Router			/v1/comments [get]
// @Param			post	query	string	false	"Filter by post ID"
// @Param			user	query	string	false	"Filter by author ID"
// @Param			offset	query	uint	false	"The offset of the first Comment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Comments to return. Defaults to 50."
func GetComments(c *gin.Context) {
	var filter CommentQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Model(&models.PostComment{}).
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var comments []models.PostComment
	err = q.Find(&comments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		data = append(data, newComment(c, comment))
	}

	c.JSON(http.StatusOK, CommentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create comment
// @Description	Creates a comment on a post
// @Tags			Comments
// @Accept			json
// @Produce		json
// @Success		201		{object}	CommentResponse
// @Failure		400		{object}	CommentResponse
// @Failure		500		{object}	CommentResponse
// @Param			comment	body		CommentEditable	true	"Comment"
// @Router			/v1/comments [post]
func CreateComment(c *gin.Context) {
	var editable CommentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	comment := editable.model()
	err = models.DB.Create(&comment).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	data := newComment(c, comment)
	c.JSON(http.StatusCreated, CommentResponse{Data: &data})
}

// @Summary		Get comment
// @Description	Returns a specific comment
// @Tags			Comments
// @Produce		json
// @Success		200	{object}	CommentResponse
// @Failure		400	{object}	CommentResponse
// @Failure		404	{object}	CommentResponse
// @Failure		500	{object}	CommentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/comments/{id} [get]
func GetComment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	comment, err := getModelByID[models.PostComment](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	data := newComment(c, comment)
	c.JSON(http.StatusOK, CommentResponse{Data: &data})
}

// @Summary		Update comment
// @Description	Update the content of an existing comment
// @Tags			Comments
// @Accept			json
// @Produce		json
// @Success		200		{object}	CommentResponse
// @Failure		400		{object}	CommentResponse
// @Failure		404		{object}	CommentResponse
// @Failure		500		{object}	CommentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			comment	body		CommentEditable	true	"Comment"
// @Router			/v1/comments/{id} [patch]
func UpdateComment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	comment, err := getModelByID[models.PostComment](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CommentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	var data CommentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	if (slices.Contains(updateFields, any("PostID")) && data.PostID != comment.PostID) ||
		(slices.Contains(updateFields, any("UserID")) && data.UserID != comment.UserID) {
		s := errCommentReferenceImmutable.Error()
		c.JSON(http.StatusBadRequest, CommentResponse{
			Error: &s,
		})
		return
	}

	// Hooks only see the stored comment on updates
	if slices.Contains(updateFields, any("Content")) && strings.TrimSpace(data.Content) == "" {
		s := models.ErrCommentEmpty.Error()
		c.JSON(http.StatusBadRequest, CommentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&comment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	r := newComment(c, comment)
	c.JSON(http.StatusOK, CommentResponse{Data: &r})
}

// @Summary		Delete comment
// @Description	Deletes a comment
// @Tags			Comments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	comment, err := getModelByID[models.PostComment](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&comment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
