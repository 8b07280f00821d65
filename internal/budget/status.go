package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is the coarse budget status shown as banner color.
type Tier string

const (
	TierAmple          Tier = "ample"
	TierCaution        Tier = "caution"
	TierOverBudgetRisk Tier = "over-budget-risk"
)

// Level refines a tier. The over-budget-risk tier is split into
// warning and exceeded.
type Level string

const (
	LevelNoBudget Level = "no-budget"
	LevelAmple    Level = "ample"
	LevelCaution  Level = "caution"
	LevelWarning  Level = "warning"
	LevelExceeded Level = "exceeded"
)

const (
	ColorGreen  = "#4CAF50"
	ColorYellow = "#FFC107"
	ColorRed    = "#F44336"
)

var (
	ampleLimit   = decimal.NewFromInt(60)
	cautionLimit = decimal.NewFromInt(80)
	warningLimit = decimal.NewFromInt(100)
)

// Status is the classification of spending against a budget.
type Status struct {
	Spent         int64   `json:"spent" example:"25000"`
	Budget        int64   `json:"budget" example:"30000"`
	Percentage    float64 `json:"percentage" example:"83.3"`    // spent / budget * 100, one decimal, not clamped
	ProgressWidth float64 `json:"progressWidth" example:"83.3"` // Percentage clamped to [0, 100]
	Remaining     int64   `json:"remaining" example:"5000"`     // budget - spent, negative when the budget is exceeded
	Overage       int64   `json:"overage" example:"0"`          // Amount spent over the budget
	Tier          Tier    `json:"tier" example:"over-budget-risk"`
	Level         Level   `json:"level" example:"warning"`
	Color         string  `json:"color" example:"#F44336"`
	Message       string  `json:"message" example:"予算の上限が近づいています"`
}

// Ratio returns spent / budget * 100. It is zero when no budget is set.
func Ratio(spent, budget int64) decimal.Decimal {
	if budget <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(spent).Mul(hundred).Div(decimal.NewFromInt(budget))
}

// Classify maps spending against a budget to a status.
//
// Up to 60% is ample, up to 80% caution and everything above is at risk,
// where up to 100% is a warning and above that the budget is exceeded.
func Classify(spent, budget int64) Status {
	ratio := Ratio(spent, budget)

	s := Status{
		Spent:         spent,
		Budget:        budget,
		Percentage:    ratio.Round(1).InexactFloat64(),
		ProgressWidth: decimal.Min(decimal.Max(ratio, decimal.Zero), hundred).Round(1).InexactFloat64(),
		Remaining:     budget - spent,
		Overage:       max(spent-budget, 0),
	}

	switch {
	case budget <= 0:
		s.Tier, s.Level, s.Color = TierAmple, LevelNoBudget, ColorGreen
		s.Message = "予算が設定されていません"
		s.Remaining, s.Overage = 0, 0
	case ratio.LessThanOrEqual(ampleLimit):
		s.Tier, s.Level, s.Color = TierAmple, LevelAmple, ColorGreen
		s.Message = "予算に余裕があります"
	case ratio.LessThanOrEqual(cautionLimit):
		s.Tier, s.Level, s.Color = TierCaution, LevelCaution, ColorYellow
		s.Message = "使いすぎに注意しましょう"
	case ratio.LessThanOrEqual(warningLimit):
		s.Tier, s.Level, s.Color = TierOverBudgetRisk, LevelWarning, ColorRed
		s.Message = "予算の上限が近づいています"
	default:
		s.Tier, s.Level, s.Color = TierOverBudgetRisk, LevelExceeded, ColorRed
		s.Message = fmt.Sprintf("予算を%d円超過しています", s.Overage)
	}

	return s
}
