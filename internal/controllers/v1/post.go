package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterPostRoutes registers the routes for posts with
// the RouterGroup that is passed.
func RegisterPostRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPostList)
		r.GET("", GetPosts)
		r.POST("", CreatePost)
	}

	// Post with ID
	{
		r.OPTIONS("/:id", OptionsPostDetail)
		r.GET("/:id", GetPost)
		r.PATCH("/:id", UpdatePost)
		r.DELETE("/:id", DeletePost)
	}

	// Reactions
	{
		r.OPTIONS("/:id/like", OptionsPostReaction)
		r.POST("/:id/like", TogglePostLike)
		r.OPTIONS("/:id/bookmark", OptionsPostReaction)
		r.POST("/:id/bookmark", TogglePostBookmark)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Router			/v1/posts [options]
func OptionsPostList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [options]
func OptionsPostDetail(c *gin.Context) {
	resourceOptionsDetail[models.Post](c, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id}/like [options]
// @Router			/v1/posts/{id}/bookmark [options]
func OptionsPostReaction(c *gin.Context) {
	resourceOptionsDetail[models.Post](c, httputil.OptionsPost)
}

// @Summary		Get posts
// @Description	Returns a list of posts, newest first
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostListResponse
// @Failure		400	{object}	PostListResponse
// @Failure		500	{object}	PostListResponse
// @Router			/v1/posts [get]
// @Param			author			query	string	false	"Filter by author ID"
// @Param			category		query	string	false	"Filter by category"
// @Param			title			query	string	false	"Filter by title"
// @Param			search			query	string	false	"Search for this text in title and content"
// @Param			viewer			query	string	false	"Set the liked and bookmarked flags for this user ID"
// @Param			bookmarkedBy	query	string	false	"Only posts bookmarked by this user ID"
// @Param			offset			query	uint	false	"The offset of the first Post returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Posts to return. Defaults to 50."
func GetPosts(c *gin.Context) {
	var filter PostQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Model(&models.Post{}).
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	if !filter.BookmarkedBy.IsNil() {
		bookmarks := models.DB.
			Model(&models.PostBookmark{}).
			Select("post_id").
			Where("user_id = ?", filter.BookmarkedBy.UUID)

		q = q.Where("id IN (?)", bookmarks)
	}

	q = textFilter(q, setFields, "Title", "title", filter.Title)
	q = searchFilter(models.DB, q, filter.Search, "title", "content")
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var posts []models.Post
	err = q.Find(&posts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Post, 0, len(posts))
	for _, post := range posts {
		p, err := newPost(c, post)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PostListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, p)
	}

	if !filter.Viewer.IsNil() {
		err = setViewerFlags(data, filter.Viewer.UUID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PostListResponse{
				Error: &s,
			})
			return
		}
	}

	c.JSON(http.StatusOK, PostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// setViewerFlags sets the liked and bookmarked flags of all posts for the viewer.
func setViewerFlags(posts []Post, viewer uuid.UUID) error {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	liked, err := models.ReactedPosts(models.DB, &models.PostLike{}, viewer, ids)
	if err != nil {
		return err
	}

	bookmarked, err := models.ReactedPosts(models.DB, &models.PostBookmark{}, viewer, ids)
	if err != nil {
		return err
	}

	for i := range posts {
		l, b := liked[posts[i].ID], bookmarked[posts[i].ID]
		posts[i].Liked = &l
		posts[i].Bookmarked = &b
	}

	return nil
}

// @Summary		Create post
// @Description	Creates a new post
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		201		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			post	body		PostEditable	true	"Post"
// @Router			/v1/posts [post]
func CreatePost(c *gin.Context) {
	var editable PostEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	post := editable.model()
	err = models.DB.Create(&post).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	data, err := newPost(c, post)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, PostResponse{Data: &data})
}

// @Summary		Get post
// @Description	Returns a specific post
// @Tags			Posts
// @Produce		json
// @Success		200		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		404		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			viewer	query		string	false	"Set the liked and bookmarked flags for this user ID"
// @Router			/v1/posts/{id} [get]
func GetPost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	var filter PostQueryFilter
	err = c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	post, err := getModelByID[models.Post](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	data, err := newPost(c, post)
	if err == nil && !filter.Viewer.IsNil() {
		posts := []Post{data}
		err = setViewerFlags(posts, filter.Viewer.UUID)
		data = posts[0]
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PostResponse{Data: &data})
}

// @Summary		Update post
// @Description	Update an existing post. Only values to be updated need to be specified.
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		404		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			post	body		PostEditable	true	"Post"
// @Router			/v1/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	post, err := getModelByID[models.Post](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PostEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	var data PostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, any("UserID")) && data.UserID != post.UserID {
		s := errPostAuthorImmutable.Error()
		c.JSON(http.StatusBadRequest, PostResponse{
			Error: &s,
		})
		return
	}

	// Hooks only see the stored post on updates
	if slices.Contains(updateFields, any("Title")) && strings.TrimSpace(data.Title) == "" {
		s := models.ErrPostTitleEmpty.Error()
		c.JSON(http.StatusBadRequest, PostResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&post).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	r, err := newPost(c, post)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PostResponse{Data: &r})
}

// @Summary		Delete post
// @Description	Deletes a post together with its comments, likes and bookmarks
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	post, err := getModelByID[models.Post](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&post).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Toggle like
// @Description	Likes the post for the user or removes the like if the user already likes it
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReactionResponse
// @Failure		400			{object}	ReactionResponse
// @Failure		404			{object}	ReactionResponse
// @Failure		500			{object}	ReactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reaction	body		ReactionEditable	true	"Reaction"
// @Router			/v1/posts/{id}/like [post]
func TogglePostLike(c *gin.Context) {
	togglePostReaction(c, models.ToggleLike)
}

// @Summary		Toggle bookmark
// @Description	Bookmarks the post for the user or removes the bookmark if it exists
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200			{object}	ReactionResponse
// @Failure		400			{object}	ReactionResponse
// @Failure		404			{object}	ReactionResponse
// @Failure		500			{object}	ReactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			reaction	body		ReactionEditable	true	"Reaction"
// @Router			/v1/posts/{id}/bookmark [post]
func TogglePostBookmark(c *gin.Context) {
	togglePostReaction(c, models.ToggleBookmark)
}

// togglePostReaction binds the request and runs the toggle.
func togglePostReaction(c *gin.Context, toggle func(*gorm.DB, uuid.UUID, uuid.UUID) (bool, error)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReactionResponse{
			Error: &s,
		})
		return
	}

	var editable ReactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReactionResponse{
			Error: &s,
		})
		return
	}

	active, err := toggle(models.DB, uri.ID.UUID, editable.UserID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReactionResponse{
			Error: &s,
		})
		return
	}

	post, err := getModelByID[models.Post](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReactionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReactionResponse{Data: &Reaction{
		PostID:    post.ID,
		UserID:    editable.UserID,
		Active:    active,
		LikeCount: post.LikeCount,
	}})
}
