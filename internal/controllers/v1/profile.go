package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
)

// RegisterProfileRoutes registers the routes for profiles with
// the RouterGroup that is passed.
//
// Profiles are created with PUT since their ID is the ID of the
// user at the identity provider. They cannot be deleted.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProfileList)
		r.GET("", GetProfiles)
	}

	// Profile with ID
	{
		r.OPTIONS("/:id", OptionsProfileDetail)
		r.GET("/:id", GetProfile)
		r.PUT("/:id", PutProfile)
		r.PATCH("/:id", UpdateProfile)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfileList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Description	PUT is always allowed since it creates the profile if it does not exist.
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [options]
func OptionsProfileDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutPatch(c)
}

// @Summary		Get profiles
// @Description	Returns a list of profiles
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Failure		400	{object}	ProfileListResponse
// @Failure		500	{object}	ProfileListResponse
// @Router			/v1/profiles [get]
// @Param			displayName	query	string	false	"Filter by display name"
// @Param			grade		query	string	false	"Filter by grade"
// @Param			prefecture	query	string	false	"Filter by prefecture"
// @Param			schoolName	query	string	false	"Filter by school name"
// @Param			search		query	string	false	"Search for this text in display name and school name"
// @Param			offset		query	uint	false	"The offset of the first Profile returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Profiles to return. Defaults to 50."
func GetProfiles(c *gin.Context) {
	var filter ProfileQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("display_name ASC, id ASC").
		Where(&filterModel, queryFields...)

	q = textFilter(q, setFields, "DisplayName", "display_name", filter.DisplayName)
	q = textFilter(q, setFields, "SchoolName", "school_name", filter.SchoolName)
	q = searchFilter(models.DB, q, filter.Search, "display_name", "school_name")
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var profiles []models.UserProfile
	err = q.Find(&profiles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Profile, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, newProfile(c, profile))
	}

	c.JSON(http.StatusOK, ProfileListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get profile
// @Description	Returns a specific profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [get]
func GetProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	profile, err := getModelByID[models.UserProfile](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Create or replace profile
// @Description	Creates the profile for a user at onboarding. If the profile exists, all of its fields are replaced.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [put]
func PutProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	var editable ProfileEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	profile := editable.model()
	profile.ID = uri.ID.UUID

	err = models.UpsertProfile(models.DB, &profile)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	// Reload to get the original creation time for existing profiles
	profile, err = getModelByID[models.UserProfile](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Update an existing profile. Only values to be updated need to be specified.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [patch]
func UpdateProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	profile, err := getModelByID[models.UserProfile](uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	r := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &r})
}
