package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/internal/models"
	"github.com/studentbudget/backend/internal/types"
	"github.com/studentbudget/backend/test"
)

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	category := getTestCategory(suite.T(), "食費")

	e := createTestExpense(suite.T(), v1.ExpenseEditable{
		UserID:      profile.Data.ID,
		CategoryID:  category.ID,
		Amount:      850,
		Description: "  Lunch  ",
		Date:        types.NewDate(2024, time.August, 15),
	})

	assert.Equal(suite.T(), int64(850), e.Data.Amount)
	assert.Equal(suite.T(), "Lunch", e.Data.Description)
	assert.Equal(suite.T(), models.SourceManual, e.Data.Source, "Source must default to manual")
	assert.Equal(suite.T(), "2024-08-15", e.Data.Date.String())
	require.NotNil(suite.T(), e.Data.Category, "The category must be embedded")
	assert.Equal(suite.T(), "restaurant", e.Data.Category.Style.Icon)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s", profile.Data.ID), e.Data.Links.User)
}

func (suite *TestSuiteStandard) TestExpensesCreateDefaultDate() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: 300})
	assert.Equal(suite.T(), types.Today().String(), e.Data.Date.String(), "Date must default to today")
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	category := getTestCategory(suite.T(), "食費")

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Not a list", `{ "amount": 300 }`, http.StatusBadRequest},
		{"Broken body", `[{ "amount": 300" }]`, http.StatusBadRequest},
		{"Amount zero", []v1.ExpenseEditable{{UserID: profile.Data.ID, CategoryID: category.ID, Amount: 0}}, http.StatusBadRequest},
		{"Amount negative", []v1.ExpenseEditable{{UserID: profile.Data.ID, CategoryID: category.ID, Amount: -20}}, http.StatusBadRequest},
		{"User missing", []v1.ExpenseEditable{{CategoryID: category.ID, Amount: 300}}, http.StatusBadRequest},
		{"Category missing", []v1.ExpenseEditable{{UserID: profile.Data.ID, Amount: 300}}, http.StatusBadRequest},
		{"Invalid source", []v1.ExpenseEditable{{UserID: profile.Data.ID, CategoryID: category.ID, Amount: 300, Source: "bank"}}, http.StatusBadRequest},
		{"Non-existing user", []v1.ExpenseEditable{{UserID: uuid.New(), CategoryID: category.ID, Amount: 300}}, http.StatusBadRequest},
		{"Non-existing category", []v1.ExpenseEditable{{UserID: profile.Data.ID, CategoryID: uuid.New(), Amount: 300}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestExpensesCreatePartial verifies that valid expenses of a batch are
// created even if others fail.
func (suite *TestSuiteStandard) TestExpensesCreatePartial() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	category := getTestCategory(suite.T(), "食費")

	body := []v1.ExpenseEditable{
		{UserID: profile.Data.ID, CategoryID: category.ID, Amount: 500},
		{UserID: profile.Data.ID, CategoryID: uuid.New(), Amount: 600},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Nil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), int64(500), response.Data[0].Data.Amount)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), models.ErrReferenceNotFound.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: 120})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Expense", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE No Expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"PATCH is not allowed", e.Data.ID.String(), http.StatusMethodNotAllowed, http.MethodPatch},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Amount: 120})

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	hanako := createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Hanako"})
	taro := createTestProfile(suite.T(), v1.ProfileEditable{DisplayName: "Taro"})
	food := getTestCategory(suite.T(), "食費")
	train := getTestCategory(suite.T(), "交通費")

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: hanako.Data.ID, CategoryID: food.ID, Amount: 850, Description: "Lunch", Date: types.NewDate(2024, time.July, 31)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: hanako.Data.ID, CategoryID: food.ID, Amount: 1200, Description: "Dinner", Date: types.NewDate(2024, time.August, 1)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: hanako.Data.ID, CategoryID: train.ID, Amount: 500, Date: types.NewDate(2024, time.August, 31), Source: models.SourceImport})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: taro.Data.ID, CategoryID: food.ID, Amount: 700, Description: "Lunch", Date: types.NewDate(2024, time.September, 1)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User", fmt.Sprintf("user=%s", hanako.Data.ID), 3},
		{"Category", fmt.Sprintf("category=%s", food.ID), 3},
		{"User and category", fmt.Sprintf("user=%s&category=%s", hanako.Data.ID, food.ID), 2},
		{"Source", "source=import", 1},
		{"Month", "month=2024-08", 2},
		{"Month without expenses", "month=2024-10", 0},
		{"From date", "fromDate=2024-08-01", 3},
		{"Until date", "untilDate=2024-08-01", 2},
		{"Date range", "fromDate=2024-08-01&untilDate=2024-08-31", 2},
		{"Description", "description=Lun", 2},
		{"Empty description", "description", 1},
		{"Search", "search=inn", 1},
		{"Offset", "offset=3", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ExpenseListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilterInvalid() {
	tests := []string{
		"user=notaUUID",
		"category=23",
		"month=August",
		"fromDate=yesterday",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestExpensesOrder verifies that expenses are sorted by date, newest first.
func (suite *TestSuiteStandard) TestExpensesOrder() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})

	for _, day := range []int{3, 17, 9} {
		_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: profile.Data.ID, Amount: int64(day * 100), Date: types.NewDate(2024, time.May, day)})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?user=%s", profile.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var re v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &re)

	require.Len(suite.T(), re.Data, 3)
	assert.Equal(suite.T(), 17, re.Data[0].Date.Day())
	assert.Equal(suite.T(), 9, re.Data[1].Date.Day())
	assert.Equal(suite.T(), 3, re.Data[2].Date.Day())
}
