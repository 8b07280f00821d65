package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/models"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	DisplayName   string `json:"displayName" binding:"max=50" example:"Hanako" default:""`  // Name shown to other users
	Age           int    `json:"age" binding:"gte=0" example:"19" default:"0"`              // Age in years
	Grade         string `json:"grade" example:"University 2nd year" default:""`            // School grade
	Prefecture    string `json:"prefecture" example:"Tokyo" default:""`                     // Prefecture the student lives in
	SchoolName    string `json:"schoolName" example:"Example University" default:""`        // Name of the school
	MonthlyBudget int64  `json:"monthlyBudget" binding:"gte=0" example:"30000" default:"0"` // Spending limit per month
	Savings       int64  `json:"savings" binding:"gte=0" example:"120000" default:"0"`      // Current savings
}

func (editable ProfileEditable) model() models.UserProfile {
	return models.UserProfile{
		DisplayName:   editable.DisplayName,
		Age:           editable.Age,
		Grade:         editable.Grade,
		Prefecture:    editable.Prefecture,
		SchoolName:    editable.SchoolName,
		MonthlyBudget: editable.MonthlyBudget,
		Savings:       editable.Savings,
	}
}

type ProfileLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/profiles/9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`                   // The profile itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`          // Expenses of the user
	Month    string `json:"month" example:"https://example.com/api/v1/months?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2&month=YYYY-MM"` // Month summary of the user. This is an URL template, replace YYYY-MM with the month
	Calendar string `json:"calendar" example:"https://example.com/api/v1/calendar?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2&month=YYYY-MM"`
	Posts    string `json:"posts" example:"https://example.com/api/v1/posts?author=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"` // Posts written by the user
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.UserProfile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			DisplayName:   model.DisplayName,
			Age:           model.Age,
			Grade:         model.Grade,
			Prefecture:    model.Prefecture,
			SchoolName:    model.SchoolName,
			MonthlyBudget: model.MonthlyBudget,
			Savings:       model.Savings,
		},
		Links: ProfileLinks{
			Self:     fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?user=%s", url, model.ID),
			Month:    fmt.Sprintf("%s/v1/months?user=%s&month=YYYY-MM", url, model.ID),
			Calendar: fmt.Sprintf("%s/v1/calendar?user=%s&month=YYYY-MM", url, model.ID),
			Posts:    fmt.Sprintf("%s/v1/posts?author=%s", url, model.ID),
		},
	}
}

type ProfileListResponse struct {
	Data       []Profile   `json:"data"`                                                          // List of Profiles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the Profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileQueryFilter struct {
	DisplayName string `form:"displayName" filterField:"false"` // By display name
	Grade       string `form:"grade"`                           // By grade
	Prefecture  string `form:"prefecture"`                      // By prefecture
	SchoolName  string `form:"schoolName" filterField:"false"`  // By school name
	Search      string `form:"search" filterField:"false"`      // By string in display name or school name
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Profile returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Profiles to return. Defaults to 50.
}

func (f ProfileQueryFilter) model() models.UserProfile {
	return models.UserProfile{
		Grade:      f.Grade,
		Prefecture: f.Prefecture,
	}
}
