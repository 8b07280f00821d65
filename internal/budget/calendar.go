package budget

import (
	"time"

	"github.com/studentbudget/backend/internal/types"
)

// Cell is a single day in the calendar grid.
type Cell struct {
	Date    types.Date `json:"date" example:"2024-02-29"`
	InMonth bool       `json:"inMonth" example:"true"` // Is the date part of the month the grid is built for?
	Today   bool       `json:"today" example:"false"`
}

// Day is a calendar cell with the spending of that day.
type Day struct {
	Cell
	Total int64 `json:"total" example:"1700"`
	Count int   `json:"count" example:"2"` // Number of expenses
}

// Grid returns the calendar grid for a month.
//
// The grid starts on the Sunday on or before the first day of the month
// and ends on the Saturday on or after the last day, so its length is
// always a multiple of 7. now decides which cell is flagged as today.
func Grid(month types.Month, now time.Time) []Cell {
	first := month.FirstDay()
	last := month.LastDay()

	start := first.AddDays(-int(first.Weekday()))
	end := last.AddDays(int(time.Saturday - last.Weekday()))
	today := types.DateOf(now)

	cells := make([]Cell, 0, 42)
	for d := start; !d.After(end); d = d.AddDays(1) {
		cells = append(cells, Cell{
			Date:    d,
			InMonth: month.Contains(d),
			Today:   d.Equal(today),
		})
	}

	return cells
}

// GridFor returns the grid for a zero-based month of a year, e.g. 1 for February.
func GridFor(year, month int, now time.Time) []Cell {
	return Grid(types.MonthOf(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)), now)
}

// Weeks splits cells into rows of seven.
func Weeks[T any](cells []T) [][]T {
	weeks := make([][]T, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		end := min(i+7, len(cells))
		weeks = append(weeks, cells[i:end])
	}

	return weeks
}

// Annotate merges the daily totals of a summary onto the cells of the same month.
// Cells outside of the month carry no spending.
func Annotate(cells []Cell, summary Summary) []Day {
	days := make([]Day, 0, len(cells))
	for _, cell := range cells {
		day := Day{Cell: cell}

		if cell.InMonth {
			bucket := summary.Day(cell.Date.Day())
			day.Total = bucket.Total
			day.Count = len(bucket.Expenses)
		}

		days = append(days, day)
	}

	return days
}
