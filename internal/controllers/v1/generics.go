package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
)

type resource interface {
	models.UserProfile | models.ExpenseCategory | models.Expense | models.Post | models.PostComment
}

// getModelByID returns the resource with the ID.
func getModelByID[R resource](id uuid.UUID) (R, error) {
	var r R
	err := models.DB.First(&r, "id = ?", id).Error
	return r, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request
// for a specific resource. options renders the allowed methods.
//
// Note: This function only works for resources with an ID, not for calculated
// endpoints (like /months)
func resourceOptionsDetail[R resource](c *gin.Context, options func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getModelByID[R](uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}
