package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultPenaltyRate = decimal.RequireFromString("0.1")

const (
	earlyWithdrawalMessage  = "Early withdrawal! You lost %s%% of your savings due to lack of discipline."
	onTimeWithdrawalMessage = "Goal achieved! Your locked funds have been returned to your balance."
)

// Commitment locks part of a portfolio balance until UnlockDate
type Commitment struct {
	CommitmentID  uuid.UUID
	UserAccountID uuid.UUID
	GoalName      string
	TargetAmount  decimal.Decimal
	LockedAmount  decimal.Decimal
	UnlockDate    time.Time
	PenaltyRate   decimal.Decimal
	CreatedAt     time.Time
}

// UnlockDateFrom adds calendar months, so Jan 15 + 1 month is Feb 15
// regardless of the month length
func UnlockDateFrom(now time.Time, months int) time.Time {
	return now.AddDate(0, months, 0)
}

// IsEarly reports whether now is strictly before the unlock date. the
// unlock instant itself counts as on time
func (c Commitment) IsEarly(now time.Time) bool {
	return now.Before(c.UnlockDate)
}

type WithdrawalResult struct {
	CommitmentID uuid.UUID
	Payout       decimal.Decimal
	Penalty      decimal.Decimal
	Early        bool
	Message      string
}

func (c Commitment) Withdrawal(now time.Time) WithdrawalResult {
	if !c.IsEarly(now) {
		return WithdrawalResult{
			CommitmentID: c.CommitmentID,
			Payout:       c.LockedAmount,
			Penalty:      decimal.Zero,
			Early:        false,
			Message:      onTimeWithdrawalMessage,
		}
	}

	penalty := c.LockedAmount.Mul(c.PenaltyRate)
	return WithdrawalResult{
		CommitmentID: c.CommitmentID,
		Payout:       c.LockedAmount.Sub(penalty),
		Penalty:      penalty,
		Early:        true,
		Message:      fmt.Sprintf(earlyWithdrawalMessage, c.PenaltyRate.Shift(2).String()),
	}
}
