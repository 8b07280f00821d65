package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("a resource referenced in your request does not exist")
)

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrAmountNotPositive     = errors.New("the amount must be positive")
	ErrExpenseSourceInvalid  = errors.New("the expense source must be one of 'manual' or 'import'")
	ErrReactionExists        = errors.New("the user already reacted to this post")
	ErrProfileValueNegative  = errors.New("age, monthly budget and savings must not be negative")
	ErrPostTitleEmpty        = errors.New("the title of a post must not be empty")
	ErrCommentEmpty          = errors.New("a comment must not be empty")
)
