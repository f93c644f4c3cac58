package app

import (
	"context"
	"errors"
	"testing"

	"finsim/internal/calculator"
	"finsim/internal/domain"
	"finsim/internal/notifier"
	mock_notifier "finsim/internal/notifier/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_planningAppHandler(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("stress test asks for an investment nudge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_notifier.NewMockNotifier(ctrl)
		handler := planningAppHandler{Notifier: n}

		n.EXPECT().
			Emit(notifier.Topic_NudgeRequest, gomock.Any()).
			Do(func(topic string, req notifier.NudgeRequest) {
				require.Equal(t, "", cmp.Diff(notifier.NudgeRequest{
					UserAccountID: userID,
					Context:       notifier.NudgeContext_InvestmentDecision,
					Data:          map[string]any{"riskLevel": 90},
				}, req))
			})

		result, err := handler.StressTest(ctx, userID, calculator.StressTestInput{
			MonthlyIncome:   decimal.NewFromInt(15000000),
			MonthlyExpenses: decimal.NewFromInt(10000000),
			EmergencyFund:   decimal.NewFromInt(60000000),
		})
		require.NoError(t, err)
		require.Equal(t, "6.0", result.SurvivalMonths)
		require.Equal(t, "5.5", result.InflationStress.NewSurvivalMonths)
	})

	t.Run("a failed stress test emits nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_notifier.NewMockNotifier(ctrl)
		handler := planningAppHandler{Notifier: n}
		n.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.StressTest(ctx, userID, calculator.StressTestInput{
			MonthlyExpenses: decimal.Zero,
		})
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("long term impact asks for a budgeting nudge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_notifier.NewMockNotifier(ctrl)
		handler := planningAppHandler{Notifier: n}

		n.EXPECT().
			Emit(notifier.Topic_NudgeRequest, gomock.Any()).
			Do(func(topic string, req notifier.NudgeRequest) {
				require.Equal(t, notifier.NudgeContext_Budgeting, req.Context)
				require.Equal(t, map[string]any{"amount": 1000000.0}, req.Data)
			})

		result, err := handler.LongTermImpact(ctx, userID, decimal.NewFromInt(1000000), 0)
		require.NoError(t, err)
		require.True(t, result.FutureValue.Equal(decimal.NewFromInt(2158925)))
	})

	t.Run("budget evaluation is silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := mock_notifier.NewMockNotifier(ctrl)
		handler := planningAppHandler{Notifier: n}
		n.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(0)

		result, err := handler.EvaluateBudget(ctx, userID, calculator.BudgetAllocation{
			Needs:   decimal.NewFromInt(40),
			Wants:   decimal.NewFromInt(40),
			Savings: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		require.False(t, result.Optimal)
		require.Equal(t, calculator.BudgetCause_HighWants, result.Cause)
	})
}
