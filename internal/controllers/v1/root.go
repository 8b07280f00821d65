package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r)
	RegisterProfileRoutes(r.Group("/profiles"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterMonthRoutes(r.Group("/months"))
	RegisterCalendarRoutes(r.Group("/calendar"))
	RegisterPostRoutes(r.Group("/posts"))
	RegisterCommentRoutes(r.Group("/comments"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profiles   string `json:"profiles" example:"https://example.com/api/v1/profiles"`     // URL of Profile collection endpoint
	Categories string `json:"categories" example:"https://example.com/api/v1/categories"` // URL of Category collection endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // URL of Expense collection endpoint
	Months     string `json:"months" example:"https://example.com/api/v1/months"`         // URL of Month summary endpoint
	Calendar   string `json:"calendar" example:"https://example.com/api/v1/calendar"`     // URL of Calendar endpoint
	Posts      string `json:"posts" example:"https://example.com/api/v1/posts"`           // URL of Post collection endpoint
	Comments   string `json:"comments" example:"https://example.com/api/v1/comments"`     // URL of Comment collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profiles:   url + "/v1/profiles",
			Categories: url + "/v1/categories",
			Expenses:   url + "/v1/expenses",
			Months:     url + "/v1/months",
			Calendar:   url + "/v1/calendar",
			Posts:      url + "/v1/posts",
			Comments:   url + "/v1/comments",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
