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
	"github.com/studentbudget/backend/internal/types"
	"github.com/studentbudget/backend/test"
)

func (suite *TestSuiteStandard) TestCalendar() {
	profile := createTestProfile(suite.T(), v1.ProfileEditable{})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: profile.Data.ID, Amount: 1200, Date: types.NewDate(2024, time.February, 29)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: profile.Data.ID, Amount: 500, Date: types.NewDate(2024, time.February, 29)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{UserID: profile.Data.ID, Amount: 800, Date: types.NewDate(2024, time.March, 1)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/calendar?user=%s&month=2024-02", profile.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &r, &response)

	calendar := response.Data
	require.Len(suite.T(), calendar.Weeks, 5)
	assert.Equal(suite.T(), int64(1700), calendar.Total)

	first := calendar.Weeks[0][0]
	assert.Equal(suite.T(), "2024-01-28", first.Date.String())
	assert.False(suite.T(), first.InMonth)

	// Thursday, Feb 29
	leap := calendar.Weeks[4][4]
	assert.Equal(suite.T(), "2024-02-29", leap.Date.String())
	assert.True(suite.T(), leap.InMonth)
	assert.Equal(suite.T(), int64(1700), leap.Total)
	assert.Equal(suite.T(), 2, leap.Count)

	// March 1 is shown, but does not carry spending
	march := calendar.Weeks[4][5]
	assert.Equal(suite.T(), "2024-03-01", march.Date.String())
	assert.False(suite.T(), march.InMonth)
	assert.Equal(suite.T(), int64(0), march.Total)
}

func (suite *TestSuiteStandard) TestCalendarWithoutUser() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calendar?month=2015-02", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data.Weeks, 4, "February 2015 starts on a Sunday and has exactly four weeks")
	assert.Equal(suite.T(), int64(0), response.Data.Total)
}

func (suite *TestSuiteStandard) TestCalendarCurrentMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calendar", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), types.MonthOf(time.Now()).String(), response.Data.Month.String())

	today := 0
	for _, week := range response.Data.Weeks {
		for _, day := range week {
			if day.Today {
				today++
			}
		}
	}
	assert.Equal(suite.T(), 1, today, "Exactly one day must be flagged as today")
}

func (suite *TestSuiteStandard) TestCalendarFails() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Invalid user", "user=notaUUID", http.StatusBadRequest},
		{"Invalid month", "month=02-2024", http.StatusBadRequest},
		{"Unknown user", fmt.Sprintf("user=%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/calendar?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
