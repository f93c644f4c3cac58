package calculator

import (
	"fmt"
	"math"

	"finsim/internal/domain"

	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

const (
	DefaultImpactYears = 10
	annualReturn       = 0.08

	futureValueExpression = "amount * pow(1.0 + rate, years)"
	longTermImpactNudge   = "Time Machine: Every dollar saved today is worth more in the future."
)

type LongTermImpactResult struct {
	OriginalAmount decimal.Decimal
	// rounded to the nearest whole unit
	FutureValue decimal.Decimal
	Years       int
	Nudge       string
}

var impactFunctions = map[string]goval.ExpressionFunction{
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		base, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		exponent, err := toFloat(args[1])
		if err != nil {
			return nil, err
		}
		return math.Pow(base, exponent), nil
	},
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

// LongTermImpact projects amount forward at an 8% annual return. years
// defaults to 10 when zero
func LongTermImpact(amount decimal.Decimal, years int) (*LongTermImpactResult, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative, got %s", domain.ErrInvalidInput, amount.String())
	}
	if years < 0 {
		return nil, fmt.Errorf("%w: years cannot be negative, got %d", domain.ErrInvalidInput, years)
	}
	if years == 0 {
		years = DefaultImpactYears
	}

	result, err := goval.NewEvaluator().Evaluate(
		futureValueExpression,
		map[string]interface{}{
			"amount": amount.InexactFloat64(),
			"rate":   annualReturn,
			"years":  float64(years),
		},
		impactFunctions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute future value: %w", err)
	}
	futureValue, err := toFloat(result)
	if err != nil {
		return nil, fmt.Errorf("failed to compute future value: %w", err)
	}

	return &LongTermImpactResult{
		OriginalAmount: amount,
		FutureValue:    decimal.NewFromFloat(math.Round(futureValue)),
		Years:          years,
		Nudge:          longTermImpactNudge,
	}, nil
}
