package calculator

import (
	"fmt"

	"finsim/internal/domain"

	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

// BudgetAllocation is a split of income in percent
type BudgetAllocation struct {
	Needs   decimal.Decimal
	Wants   decimal.Decimal
	Savings decimal.Decimal
}

type BudgetCause string

const (
	BudgetCause_None       BudgetCause = "NONE"
	BudgetCause_HighWants  BudgetCause = "HIGH_WANTS"
	BudgetCause_LowSavings BudgetCause = "LOW_SAVINGS"
	BudgetCause_HighNeeds  BudgetCause = "HIGH_NEEDS"
)

type BudgetEvaluation struct {
	Optimal  bool
	Cause    BudgetCause
	Feedback string
	Nudge    string
}

// the 50/30/20 rule
const optimalBudgetRule = "needs <= 50.0 && wants <= 30.0 && savings >= 20.0"

// checked in order; the first that holds names the cause
var budgetCauseRules = []struct {
	cause      BudgetCause
	expression string
}{
	{BudgetCause_HighWants, "wants > 30.0"},
	{BudgetCause_LowSavings, "savings < 20.0"},
	{BudgetCause_HighNeeds, "needs > 50.0"},
}

const budgetNudge = "Loss Aversion: Overspending now could cost you 15% in potential compound interest over 5 years."

var budgetFeedback = map[BudgetCause]string{
	BudgetCause_None:       "Excellent! You followed the 50/30/20 rule. Your financial future looks bright.",
	BudgetCause_HighWants:  "Warning: Your spending on 'Wants' is too high. You might struggle to reach your savings goals.",
	BudgetCause_LowSavings: "Warning: You are saving less than 20% of your income. You might struggle to reach your savings goals.",
	BudgetCause_HighNeeds:  "Warning: Your 'Needs' take more than 50% of your income. Look for fixed costs you can cut.",
}

var oneHundred = decimal.NewFromInt(100)

func EvaluateBudget(allocation BudgetAllocation) (*BudgetEvaluation, error) {
	for name, share := range map[string]decimal.Decimal{
		"needs":   allocation.Needs,
		"wants":   allocation.Wants,
		"savings": allocation.Savings,
	} {
		if share.IsNegative() {
			return nil, fmt.Errorf("%w: %s cannot be negative, got %s", domain.ErrInvalidAllocation, name, share.String())
		}
	}
	total := allocation.Needs.Add(allocation.Wants).Add(allocation.Savings)
	if !total.Equal(oneHundred) {
		return nil, fmt.Errorf("%w: got %s", domain.ErrInvalidAllocation, total.String())
	}

	variables := map[string]interface{}{
		"needs":   allocation.Needs.InexactFloat64(),
		"wants":   allocation.Wants.InexactFloat64(),
		"savings": allocation.Savings.InexactFloat64(),
	}
	eval := goval.NewEvaluator()

	optimal, err := evaluateRule(eval, optimalBudgetRule, variables)
	if err != nil {
		return nil, err
	}

	cause := BudgetCause_None
	if !optimal {
		for _, rule := range budgetCauseRules {
			holds, err := evaluateRule(eval, rule.expression, variables)
			if err != nil {
				return nil, err
			}
			if holds {
				cause = rule.cause
				break
			}
		}
	}

	return &BudgetEvaluation{
		Optimal:  optimal,
		Cause:    cause,
		Feedback: budgetFeedback[cause],
		Nudge:    budgetNudge,
	}, nil
}

func evaluateRule(eval *goval.Evaluator, expression string, variables map[string]interface{}) (bool, error) {
	result, err := eval.Evaluate(expression, variables, nil)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q: %w", expression, err)
	}
	holds, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("rule %q returned %T, expected bool", expression, result)
	}
	return holds, nil
}
