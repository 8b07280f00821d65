package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
	"github.com/studentbudget/backend/internal/types"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestExpenseBeforeSave() {
	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"Valid", models.Expense{Amount: 100}, nil},
		{"Zero amount", models.Expense{Amount: 0}, models.ErrAmountNotPositive},
		{"Negative amount", models.Expense{Amount: -250}, models.ErrAmountNotPositive},
		{"Import", models.Expense{Amount: 100, Source: models.SourceImport}, nil},
		{"Invalid source", models.Expense{Amount: 100, Source: "receipt"}, models.ErrExpenseSourceInvalid},
	}

	for _, tt := range tests {
		err := tt.expense.BeforeSave(&gorm.DB{})
		suite.Assert().Equal(tt.err, err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestExpenseDefaults() {
	e := suite.createTestExpense(models.Expense{Amount: 980, Description: "  Textbook "})

	suite.Assert().Equal("Textbook", e.Description)
	suite.Assert().Equal(models.SourceManual, e.Source)
	suite.Assert().True(e.Date.Equal(types.Today()), "Date %s is not today", e.Date)
}

func (suite *TestSuiteStandard) TestExpenseDateRoundTrip() {
	date := types.NewDate(2024, time.February, 29)
	e := suite.createTestExpense(models.Expense{Amount: 1200, Date: date})

	var loaded models.Expense
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", e.ID).Error)
	suite.Assert().True(date.Equal(loaded.Date), "Expected %s, got %s", date, loaded.Date)
}

func (suite *TestSuiteStandard) TestMonthExpenses() {
	user := suite.createTestProfile(models.UserProfile{})
	other := suite.createTestProfile(models.UserProfile{})

	dates := []types.Date{
		types.NewDate(2024, time.January, 31),
		types.NewDate(2024, time.February, 29),
		types.NewDate(2024, time.February, 1),
		types.NewDate(2024, time.March, 1),
	}

	for i, d := range dates {
		suite.createTestExpense(models.Expense{UserID: user.ID, Amount: int64(100 * (i + 1)), Date: d})
	}

	// Expenses of other users are not included
	suite.createTestExpense(models.Expense{UserID: other.ID, Amount: 5000, Date: types.NewDate(2024, time.February, 10)})

	month := types.NewMonth(2024, time.February)

	expenses, err := models.MonthExpenses(models.DB, user.ID, month)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)

	// Ordered by date
	suite.Assert().Equal(1, expenses[0].Date.Day())
	suite.Assert().Equal(29, expenses[1].Date.Day())

	spent, err := models.MonthSpent(models.DB, user.ID, month)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(500), spent)

	spent, err = models.MonthSpent(models.DB, uuid.New(), month)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), spent)
}

func (suite *TestSuiteStandard) TestExpenseBudget() {
	category := suite.getTestCategory("交通費")
	e := suite.createTestExpense(models.Expense{
		CategoryID:  category.ID,
		Amount:      220,
		Description: "Bus",
		Date:        types.NewDate(2024, time.August, 15),
	})

	b := e.Budget()
	suite.Assert().Equal(e.ID, b.ID)
	suite.Assert().Equal(category.ID, b.CategoryID)
	suite.Assert().Equal(int64(220), b.Amount)
	suite.Assert().Equal("Bus", b.Description)
	suite.Assert().Equal(15, b.Date.Day())
}

func (suite *TestSuiteStandard) TestCategories() {
	categories, err := models.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 9)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		suite.Assert().NotEqual(uuid.Nil, c.ID)
		names = append(names, c.Name)
	}

	suite.Assert().Contains(names, "食費")
	suite.Assert().Contains(names, "その他")
}

func (suite *TestSuiteStandard) TestCategoriesClosedDB() {
	suite.CloseDB()

	_, err := models.Categories(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
