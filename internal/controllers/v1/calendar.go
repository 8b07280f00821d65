package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/httputil"
	"github.com/studentbudget/backend/internal/models"
	"github.com/studentbudget/backend/internal/types"
	ez_uuid "github.com/studentbudget/backend/internal/uuid"
)

type CalendarQueryFilter struct {
	User  ez_uuid.UUID `form:"user"`  // ID of the user. Without it, the grid carries no spending
	Month types.Month  `form:"month"` // The month, as YYYY-MM. Defaults to the current month
}

// Calendar is the month grid shown on the calendar screen.
type Calendar struct {
	Month types.Month    `json:"month" example:"2024-02"` // The month
	Total int64          `json:"total" example:"42000"`   // Sum of all expenses in the month
	Weeks [][]budget.Day `json:"weeks"`                   // Rows of seven days, starting on Sunday
}

type CalendarResponse struct {
	Data  *Calendar `json:"data"`                                                          // Data for the calendar
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalendar)
	r.GET("", GetCalendar)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar [options]
func OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get calendar
// @Description	Returns the calendar grid for a month. Weeks start on Sunday and include the days of the adjacent months needed to fill them.
// @Description	When a user is given, every day of the month carries the sum and number of the user's expenses.
// @Tags			Calendar
// @Produce		json
// @Success		200		{object}	CalendarResponse
// @Failure		400		{object}	CalendarResponse
// @Failure		404		{object}	CalendarResponse
// @Failure		500		{object}	CalendarResponse
// @Param			user	query		string	false	"ID formatted as string"
// @Param			month	query		string	false	"The month in YYYY-MM format"
// @Router			/v1/calendar [get]
func GetCalendar(c *gin.Context) {
	var filter CalendarQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &s,
		})
		return
	}

	now := time.Now()
	if filter.Month.IsZero() {
		filter.Month = types.MonthOf(now)
	}

	var summary budget.Summary
	if !filter.User.IsNil() {
		_, err = getModelByID[models.UserProfile](filter.User.UUID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CalendarResponse{
				Error: &s,
			})
			return
		}

		expenses, err := models.MonthExpenses(models.DB, filter.User.UUID, filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CalendarResponse{
				Error: &s,
			})
			return
		}

		input := make([]budget.Expense, 0, len(expenses))
		for _, e := range expenses {
			input = append(input, e.Budget())
		}

		// Categories are not needed for the daily totals
		summary = budget.Aggregate(input, nil)
	}

	days := budget.Annotate(budget.Grid(filter.Month, now), summary)

	c.JSON(http.StatusOK, CalendarResponse{Data: &Calendar{
		Month: filter.Month,
		Total: summary.Total,
		Weeks: budget.Weeks(days),
	}})
}
