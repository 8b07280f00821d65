package models

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserProfile is the profile of a student. Its ID is the ID
// of the user at the identity provider.
type UserProfile struct {
	DefaultModel
	DisplayName   string
	Age           int
	Grade         string
	Prefecture    string
	SchoolName    string
	MonthlyBudget int64 // Spending limit per month
	Savings       int64
}

func (p *UserProfile) BeforeSave(_ *gorm.DB) error {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Grade = strings.TrimSpace(p.Grade)
	p.Prefecture = strings.TrimSpace(p.Prefecture)
	p.SchoolName = strings.TrimSpace(p.SchoolName)

	if p.Age < 0 || p.MonthlyBudget < 0 || p.Savings < 0 {
		return ErrProfileValueNegative
	}

	return nil
}

// UpsertProfile creates the profile or, if a profile with the same
// ID exists, overwrites all of its editable fields.
func UpsertProfile(db *gorm.DB, profile *UserProfile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "age", "grade", "prefecture", "school_name", "monthly_budget", "savings", "updated_at"}),
	}).Create(profile).Error
}
