package models

import (
	"strings"

	"gorm.io/gorm"
)

// ExpenseCategory is a category expenses are filed under.
//
// Categories are seeded from the category registry and are read-only
// for API users.
type ExpenseCategory struct {
	DefaultModel
	Name       string `gorm:"uniqueIndex"`
	Icon       string
	Color      string
	Background string
}

func (c *ExpenseCategory) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}
