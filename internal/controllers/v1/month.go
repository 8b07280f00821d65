package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
	"golang.org/x/sync/singleflight"
)

// months collapses concurrent summary requests for the same user and month
var months singleflight.Group

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a month
// @Description	Returns the spending summary of a user for a month: the budget status, spending per category and per day.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			user	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var filter MonthQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err == nil {
		err = filter.validate()
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	key := fmt.Sprintf("%s/%s", filter.User.UUID, filter.Month)
	v, err, _ := months.Do(key, func() (any, error) {
		return summarize(filter)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	// The summary is shared between all requests that were collapsed,
	// work on a copy
	month := v.(Month)
	month.Status.Message = httputil.Translate(month.Status.Message, httputil.RequestLanguage(c))

	url := c.GetString(string(models.DBContextURL))
	month.Links = MonthLinks{
		Self:     fmt.Sprintf("%s/v1/months?user=%s&month=%s", url, filter.User.UUID, filter.Month),
		Calendar: fmt.Sprintf("%s/v1/calendar?user=%s&month=%s", url, filter.User.UUID, filter.Month),
		Expenses: fmt.Sprintf("%s/v1/expenses?user=%s&month=%s", url, filter.User.UUID, filter.Month),
		Profile:  fmt.Sprintf("%s/v1/profiles/%s", url, filter.User.UUID),
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &month})
}

// summarize loads the profile and expenses and aggregates them.
func summarize(filter MonthQueryFilter) (Month, error) {
	profile, err := getModelByID[models.UserProfile](filter.User.UUID)
	if err != nil {
		return Month{}, err
	}

	expenses, err := models.MonthExpenses(models.DB, profile.ID, filter.Month)
	if err != nil {
		return Month{}, err
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		return Month{}, err
	}

	input := make([]budget.Expense, 0, len(expenses))
	for _, e := range expenses {
		input = append(input, e.Budget())
	}

	summary := budget.Aggregate(input, categories)
	s := budget.Classify(summary.Total, profile.MonthlyBudget)

	return Month{
		User:       filter.User,
		Month:      filter.Month,
		Budget:     profile.MonthlyBudget,
		Spent:      summary.Total,
		Remaining:  profile.MonthlyBudget - summary.Total,
		Status:     s,
		Categories: summary.Categories,
		Days:       summary.SortedDays(),
	}, nil
}
