package budget

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/studentbudget/backend/internal/types"
)

var hundred = decimal.NewFromInt(100)

// Expense is the part of an expense the aggregation works on.
type Expense struct {
	ID          uuid.UUID  `json:"id" example:"0e3a2b9a-4a3e-4d5b-8c36-8e1c3c8c0b8f"`
	CategoryID  uuid.UUID  `json:"categoryId" example:"8a3f0f0e-6a87-4d6e-9b66-3a7c1d6b6a11"`
	Amount      int64      `json:"amount" example:"1200"`
	Description string     `json:"description" example:"Lunch at the cafeteria"`
	Date        types.Date `json:"date" example:"2024-08-15"`
}

// Category identifies a category the expenses are grouped by.
type Category struct {
	ID   uuid.UUID
	Name string
}

// CategoryShare is the subtotal of one category.
type CategoryShare struct {
	CategoryID uuid.UUID `json:"categoryId" example:"8a3f0f0e-6a87-4d6e-9b66-3a7c1d6b6a11"`
	Name       string    `json:"name" example:"食費"`
	Amount     int64     `json:"amount" example:"12400"`
	Percentage int64     `json:"percentage" example:"42"` // Rounded half up, 0 when nothing was spent
	Style      Style     `json:"style"`
}

// DayBucket contains all expenses of one day of the month.
type DayBucket struct {
	Day      int       `json:"day" example:"15"`
	Total    int64     `json:"total" example:"1700"`
	Expenses []Expense `json:"expenses"`
}

// Summary is the aggregation of a set of expenses.
type Summary struct {
	Total      int64
	Categories []CategoryShare // ordered by amount, largest first
	Days       map[int]DayBucket
}

// Percentage returns part as a share of total in percent, rounded half up.
// It returns 0 for a total that is not positive.
func Percentage(part, total int64) int64 {
	if total <= 0 {
		return 0
	}

	return decimal.NewFromInt(part).
		Mul(hundred).
		Div(decimal.NewFromInt(total)).
		Round(0).
		IntPart()
}

// Aggregate aggregates expenses with the default registry.
func Aggregate(expenses []Expense, categories []Category) Summary {
	return Default().Aggregate(expenses, categories)
}

// Aggregate sums up expenses by category and by day of the month.
//
// The expenses are expected to be filtered to a single month already.
// Expenses referencing a category that is not in categories are counted
// under the registry's fallback category. A negative amount is malformed
// and counted as zero.
func (r *Registry) Aggregate(expenses []Expense, categories []Category) Summary {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	summary := Summary{
		Categories: make([]CategoryShare, 0),
		Days:       make(map[int]DayBucket),
	}

	// Shares are keyed by name so that unknown categories and a fallback
	// category that also exists in categories are merged into one share
	shares := make(map[string]*CategoryShare)

	for _, e := range expenses {
		if e.Amount < 0 {
			log.Warn().
				Str("expense", e.ID.String()).
				Int64("amount", e.Amount).
				Msg("negative expense amount counted as zero")
			e.Amount = 0
		}

		summary.Total += e.Amount

		name, ok := names[e.CategoryID]
		id := e.CategoryID
		if !ok {
			name = r.Fallback().Name
			id = uuid.Nil
		}

		share, ok := shares[name]
		if !ok {
			share = &CategoryShare{
				CategoryID: id,
				Name:       name,
				Style:      r.Style(name),
			}
			shares[name] = share
		}

		if share.CategoryID == uuid.Nil {
			share.CategoryID = id
		}
		share.Amount += e.Amount

		bucket := summary.Days[e.Date.Day()]
		bucket.Day = e.Date.Day()
		bucket.Total += e.Amount
		bucket.Expenses = append(bucket.Expenses, e)
		summary.Days[bucket.Day] = bucket
	}

	for _, share := range shares {
		share.Percentage = Percentage(share.Amount, summary.Total)
		summary.Categories = append(summary.Categories, *share)
	}

	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Name < b.Name
	})

	return summary
}

// Day returns the bucket for a day of the month. Days without
// expenses return an empty bucket.
func (s Summary) Day(day int) DayBucket {
	if bucket, ok := s.Days[day]; ok {
		return bucket
	}

	return DayBucket{Day: day, Expenses: []Expense{}}
}

// SortedDays returns all days with expenses in ascending order.
func (s Summary) SortedDays() []DayBucket {
	days := make([]DayBucket, 0, len(s.Days))
	for _, bucket := range s.Days {
		days = append(days, bucket)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Day < days[j].Day
	})

	return days
}
