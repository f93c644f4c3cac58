package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCommitment_Withdrawal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("early withdrawal pays the penalty", func(t *testing.T) {
		c := Commitment{
			CommitmentID: uuid.New(),
			LockedAmount: decimal.NewFromInt(60000),
			PenaltyRate:  DefaultPenaltyRate,
			UnlockDate:   now.AddDate(0, 0, 45),
		}

		result := c.Withdrawal(now)
		require.True(t, result.Early)
		require.True(t, result.Payout.Equal(decimal.NewFromInt(54000)))
		require.True(t, result.Penalty.Equal(decimal.NewFromInt(6000)))
		require.Equal(t, "Early withdrawal! You lost 10% of your savings due to lack of discipline.", result.Message)
	})

	t.Run("message quotes the stored rate", func(t *testing.T) {
		c := Commitment{
			LockedAmount: decimal.NewFromInt(1000),
			PenaltyRate:  decimal.RequireFromString("0.25"),
			UnlockDate:   now.Add(time.Hour),
		}

		result := c.Withdrawal(now)
		require.Contains(t, result.Message, "You lost 25% of your savings")
		require.True(t, result.Penalty.Equal(decimal.NewFromInt(250)))
	})

	t.Run("payout is locked times one minus rate", func(t *testing.T) {
		rates := []string{"0", "0.1", "0.25", "1"}
		for _, r := range rates {
			rate := decimal.RequireFromString(r)
			c := Commitment{
				LockedAmount: decimal.RequireFromString("1234.56"),
				PenaltyRate:  rate,
				UnlockDate:   now.Add(time.Hour),
			}
			result := c.Withdrawal(now)
			want := c.LockedAmount.Mul(decimal.NewFromInt(1).Sub(rate))
			require.True(t, result.Payout.Equal(want), "rate %s got %s want %s", r, result.Payout, want)
		}
	})

	t.Run("withdrawal at the unlock instant is on time", func(t *testing.T) {
		c := Commitment{
			LockedAmount: decimal.NewFromInt(60000),
			PenaltyRate:  DefaultPenaltyRate,
			UnlockDate:   now,
		}

		result := c.Withdrawal(now)
		require.False(t, result.Early)
		require.True(t, result.Payout.Equal(decimal.NewFromInt(60000)))
		require.True(t, result.Penalty.IsZero())
	})

	t.Run("withdrawal after unlock is on time", func(t *testing.T) {
		c := Commitment{
			LockedAmount: decimal.NewFromInt(500),
			PenaltyRate:  DefaultPenaltyRate,
			UnlockDate:   now.Add(-24 * time.Hour),
		}

		result := c.Withdrawal(now)
		require.False(t, result.Early)
		require.True(t, result.Payout.Equal(decimal.NewFromInt(500)))
		require.Equal(t, onTimeWithdrawalMessage, result.Message)
	})
}

func TestUnlockDateFrom(t *testing.T) {
	start := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	require.Equal(t, time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC), UnlockDateFrom(start, 1))
	require.Equal(t, time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC), UnlockDateFrom(start, 6))
	require.Equal(t, time.Date(2027, 1, 15, 9, 30, 0, 0, time.UTC), UnlockDateFrom(start, 12))
}

func TestNewEarlyWithdrawalLog(t *testing.T) {
	c := Commitment{
		CommitmentID:  uuid.New(),
		UserAccountID: uuid.New(),
		LockedAmount:  decimal.NewFromInt(60000),
		PenaltyRate:   DefaultPenaltyRate,
		UnlockDate:    time.Now().Add(time.Hour),
	}
	result := c.Withdrawal(time.Now())

	log := NewEarlyWithdrawalLog(c, result)
	require.Equal(t, c.UserAccountID, log.UserAccountID)
	require.Equal(t, BehaviorLogEvent_EarlyWithdrawPenalty, log.EventType)
	require.Equal(t, BehaviorLogSession_SimulationEngine, log.SessionID)

	bytes, err := json.Marshal(log.Payload)
	require.NoError(t, err)
	require.JSONEq(
		t,
		`{"commitmentId":"`+c.CommitmentID.String()+`","penalty":6000,"originalAmount":60000}`,
		string(bytes),
	)
}
