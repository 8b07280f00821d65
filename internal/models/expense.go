package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/types"
	"gorm.io/gorm"
)

type ExpenseSource string

const (
	SourceManual ExpenseSource = "manual"
	SourceImport ExpenseSource = "import"
)

// Expense is a single purchase of a user.
type Expense struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index:expense_user_date"`
	User        UserProfile
	CategoryID  uuid.UUID
	Category    ExpenseCategory
	Amount      int64      `gorm:"check:amount_positive,amount > 0"`
	Description string
	Date        types.Date `gorm:"index:expense_user_date"`
	Source      ExpenseSource
}

// BeforeSave
//   - trims whitespace from the description
//   - defaults the date to today and the source to manual
//   - verifies that the amount is positive
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = types.Today()
	}

	switch e.Source {
	case "":
		e.Source = SourceManual
	case SourceManual, SourceImport:
	default:
		return ErrExpenseSourceInvalid
	}

	if e.Amount <= 0 {
		return ErrAmountNotPositive
	}

	return nil
}

// Budget returns the expense in the form used by the aggregation.
func (e Expense) Budget() budget.Expense {
	return budget.Expense{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
	}
}

// MonthExpenses returns all expenses of a user dated within a month,
// ordered by date.
func MonthExpenses(db *gorm.DB, userID uuid.UUID, month types.Month) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where(&Expense{UserID: userID}).
		Where("date >= ? AND date <= ?", month.FirstDay(), month.LastDay()).
		Order("date ASC, created_at ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// MonthSpent returns the sum of the amounts of a user's
// expenses within a month.
func MonthSpent(db *gorm.DB, userID uuid.UUID, month types.Month) (int64, error) {
	var spent int64
	err := db.
		Model(&Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(&Expense{UserID: userID}).
		Where("date >= ? AND date <= ?", month.FirstDay(), month.LastDay()).
		Scan(&spent).Error

	return spent, err
}

// Categories returns all expense categories in the form used by
// the aggregation.
func Categories(db *gorm.DB) ([]budget.Category, error) {
	var categories []ExpenseCategory
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	out := make([]budget.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, budget.Category{ID: c.ID, Name: c.Name})
	}

	return out, nil
}
