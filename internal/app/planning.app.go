package app

import (
	"context"

	"finsim/internal/calculator"
	"finsim/internal/logger"
	"finsim/internal/notifier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stress tests always read as a high risk situation
const stressTestRiskLevel = 90

// PlanningApp runs the stateless planning calculators for a user and asks
// the notification channel for a follow up nudge where one applies
type PlanningApp interface {
	EvaluateBudget(ctx context.Context, userAccountID uuid.UUID, allocation calculator.BudgetAllocation) (*calculator.BudgetEvaluation, error)
	StressTest(ctx context.Context, userAccountID uuid.UUID, in calculator.StressTestInput) (*calculator.StressTestResult, error)
	LongTermImpact(ctx context.Context, userAccountID uuid.UUID, amount decimal.Decimal, years int) (*calculator.LongTermImpactResult, error)
}

type planningAppHandler struct {
	Notifier notifier.Notifier
}

func NewPlanningApp(n notifier.Notifier) PlanningApp {
	return &planningAppHandler{
		Notifier: n,
	}
}

func (h *planningAppHandler) EvaluateBudget(ctx context.Context, userAccountID uuid.UUID, allocation calculator.BudgetAllocation) (*calculator.BudgetEvaluation, error) {
	result, err := calculator.EvaluateBudget(allocation)
	if err != nil {
		return nil, err
	}
	if !result.Optimal {
		logger.FromContext(ctx).Infof("budget for user %s is off target: %s", userAccountID.String(), result.Cause)
	}
	return result, nil
}

func (h *planningAppHandler) StressTest(ctx context.Context, userAccountID uuid.UUID, in calculator.StressTestInput) (*calculator.StressTestResult, error) {
	result, err := calculator.RunStressTest(in)
	if err != nil {
		return nil, err
	}

	h.Notifier.Emit(notifier.Topic_NudgeRequest, notifier.NudgeRequest{
		UserAccountID: userAccountID,
		Context:       notifier.NudgeContext_InvestmentDecision,
		Data: map[string]any{
			"riskLevel": stressTestRiskLevel,
		},
	})

	return result, nil
}

func (h *planningAppHandler) LongTermImpact(ctx context.Context, userAccountID uuid.UUID, amount decimal.Decimal, years int) (*calculator.LongTermImpactResult, error) {
	result, err := calculator.LongTermImpact(amount, years)
	if err != nil {
		return nil, err
	}

	h.Notifier.Emit(notifier.Topic_NudgeRequest, notifier.NudgeRequest{
		UserAccountID: userAccountID,
		Context:       notifier.NudgeContext_Budgeting,
		Data: map[string]any{
			"amount": amount.InexactFloat64(),
		},
	})

	return result, nil
}
