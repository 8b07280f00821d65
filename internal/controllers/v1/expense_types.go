package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
	"github.com/studentbudget/backend/internal/types"
	ez_uuid "github.com/studentbudget/backend/internal/uuid"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	UserID      uuid.UUID            `json:"userId" binding:"required" example:"9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`         // ID of the user the expense belongs to
	CategoryID  uuid.UUID            `json:"categoryId" binding:"required" example:"3b1ebe2f-2f3c-4b4e-8bc5-4f7e4b1e3f0c"`     // ID of the category
	Amount      int64                `json:"amount" binding:"gt=0" example:"850" minimum:"1"`                                  // Amount in yen, must be positive
	Description string               `json:"description" binding:"max=255" example:"Lunch at the cafeteria" default:""`        // A short description
	Date        types.Date           `json:"date" example:"2024-08-15" format:"date"`                                          // Date of the expense. Defaults to today when not set
	Source      models.ExpenseSource `json:"source" binding:"omitempty,oneof=manual import" example:"manual" default:"manual"` // How the expense was recorded
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Description: editable.Description,
		Date:        editable.Date,
		Source:      editable.Source,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/0e3a2b9a-4a3e-4d5b-8c36-8e1c3c8c0b8f"`       // The expense itself
	User     string `json:"user" example:"https://example.com/api/v1/profiles/9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2"`       // The profile of the user
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ebe2f-2f3c-4b4e-8bc5-4f7e4b1e3f0c"` // The category
}

// Expense is the API representation of a single purchase.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Category *Category   `json:"category"` // The category with its display style
	Links    ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	e := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			UserID:      model.UserID,
			CategoryID:  model.CategoryID,
			Amount:      model.Amount,
			Description: model.Description,
			Date:        model.Date,
			Source:      model.Source,
		},
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			User:     fmt.Sprintf("%s/v1/profiles/%s", url, model.UserID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}

	// The category is only set when it has been preloaded
	if model.Category.ID != uuid.Nil {
		category := newCategory(c, model.Category)
		e.Category = &category
	}

	return e
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created Expenses
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this expense
	Data  *Expense `json:"data"`                                                          // The Expense data, if creation was successful
}

type ExpenseQueryFilter struct {
	UserID      ez_uuid.UUID         `form:"user"`                            // By ID of the user
	CategoryID  ez_uuid.UUID         `form:"category"`                        // By ID of the category
	Source      models.ExpenseSource `form:"source"`                          // By source
	Month       types.Month          `form:"month" filterField:"false"`       // By month, as YYYY-MM
	FromDate    types.Date           `form:"fromDate" filterField:"false"`    // From this date
	UntilDate   types.Date           `form:"untilDate" filterField:"false"`   // Until this date
	Description string               `form:"description" filterField:"false"` // By description
	Search      string               `form:"search" filterField:"false"`      // By string in description
	Offset      uint                 `form:"offset" filterField:"false"`      // The offset of the first Expense returned. Defaults to 0.
	Limit       int                  `form:"limit" filterField:"false"`       // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		UserID:     f.UserID.UUID,
		CategoryID: f.CategoryID.UUID,
		Source:     f.Source,
	}
}
