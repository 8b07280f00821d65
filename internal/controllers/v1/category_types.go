package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/models"
)

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ebe2f-2f3c-4b4e-8bc5-4f7e4b1e3f0c"`            // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ebe2f-2f3c-4b4e-8bc5-4f7e4b1e3f0c"` // Expenses in this category
}

// Category is an expense category together with its display style.
type Category struct {
	models.DefaultModel
	Name  string        `json:"name" example:"食費"`
	Style budget.Style  `json:"style"`
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.ExpenseCategory) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Style: budget.Style{
			Icon:       model.Icon,
			Color:      model.Color,
			Background: model.Background,
		},
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}
