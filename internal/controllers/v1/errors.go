package v1

import (
	"errors"
	"net/http"

	"github.com/studentbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errUserNotSetInQuery  = errors.New("the user query parameter must be set")
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

var errPostAuthorImmutable = errors.New("the author of a post cannot be changed")

var errCommentReferenceImmutable = errors.New("the post and author of a comment cannot be changed")
