package v1

import (
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/types"
	ez_uuid "github.com/studentbudget/backend/internal/uuid"
)

type MonthQueryFilter struct {
	User  ez_uuid.UUID `form:"user"`  // ID of the user
	Month types.Month  `form:"month"` // The month, as YYYY-MM
}

// validate verifies that both parameters are set.
func (f MonthQueryFilter) validate() error {
	if f.User.IsNil() {
		return errUserNotSetInQuery
	}

	if f.Month.IsZero() {
		return errMonthNotSetInQuery
	}

	return nil
}

type MonthLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/months?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2&month=2024-08"`       // The month summary itself
	Calendar string `json:"calendar" example:"https://example.com/api/v1/calendar?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2&month=2024-08"` // The calendar for the month
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?user=9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2&month=2024-08"` // The expenses of the month
	Profile  string `json:"profile" example:"https://example.com/api/v1/profiles/9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`                     // The profile of the user
}

// Month is the spending summary of a user for one month.
type Month struct {
	User       ez_uuid.UUID           `json:"user" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"` // ID of the user
	Month      types.Month            `json:"month" example:"2024-08"`                             // The month
	Budget     int64                  `json:"budget" example:"30000"`                              // The monthly budget from the profile
	Spent      int64                  `json:"spent" example:"25000"`                               // Sum of all expenses in the month
	Remaining  int64                  `json:"remaining" example:"5000"`                            // Budget minus spent, negative when the budget is exceeded
	Status     budget.Status          `json:"status"`                                              // Classification of the spending
	Categories []budget.CategoryShare `json:"categories"`                                          // Spending per category, largest first
	Days       []budget.DayBucket     `json:"days"`                                                // Days with expenses, in ascending order
	Links      MonthLinks             `json:"links"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                          // Data for the month
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
