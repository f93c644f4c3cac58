package calculator

import (
	"fmt"

	"finsim/internal/domain"

	"github.com/shopspring/decimal"
)

var inflationShock = decimal.RequireFromString("0.1")

const (
	stressImpact = "Severe"
	stressNudge  = "Social Proof: 80% of successful investors maintain a 6-month emergency fund to survive market crashes."
)

type StressTestInput struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	EmergencyFund   decimal.Decimal
}

type InflationStress struct {
	NewExpenses       decimal.Decimal
	NewSurvivalMonths string
	Impact            string
}

type StressTestResult struct {
	// formatted to one decimal place
	SurvivalMonths  string
	InflationStress InflationStress
	Nudge           string
}

// RunStressTest measures how long an emergency fund lasts, before and after
// a 10% jump in expenses
func RunStressTest(in StressTestInput) (*StressTestResult, error) {
	if !in.MonthlyExpenses.IsPositive() {
		return nil, fmt.Errorf("%w: monthly expenses must be > 0, got %s", domain.ErrInvalidInput, in.MonthlyExpenses.String())
	}
	if in.EmergencyFund.IsNegative() {
		return nil, fmt.Errorf("%w: emergency fund cannot be negative, got %s", domain.ErrInvalidInput, in.EmergencyFund.String())
	}

	survivalMonths := in.EmergencyFund.Div(in.MonthlyExpenses)
	newExpenses := in.MonthlyExpenses.Mul(decimal.NewFromInt(1).Add(inflationShock))
	newSurvivalMonths := in.EmergencyFund.Div(newExpenses)

	return &StressTestResult{
		SurvivalMonths: survivalMonths.StringFixed(1),
		InflationStress: InflationStress{
			NewExpenses:       newExpenses,
			NewSurvivalMonths: newSurvivalMonths.StringFixed(1),
			Impact:            stressImpact,
		},
		Nudge: stressNudge,
	}, nil
}
