package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	BehaviorLogSession_SimulationEngine   = "simulation-engine"
	BehaviorLogPath_EarlyWithdrawal       = "/simulation/commitment/withdraw-early"
	BehaviorLogEvent_EarlyWithdrawPenalty = "EARLY_WITHDRAWAL_PENALTY"
)

type BehaviorLog struct {
	BehaviorLogID uuid.UUID
	UserAccountID uuid.UUID
	SessionID     string
	Path          string
	EventType     string
	Payload       any
	CreatedAt     time.Time
}

type EarlyWithdrawalPenaltyPayload struct {
	CommitmentID   uuid.UUID `json:"commitmentId"`
	Penalty        float64   `json:"penalty"`
	OriginalAmount float64   `json:"originalAmount"`
}

func NewEarlyWithdrawalLog(c Commitment, result WithdrawalResult) BehaviorLog {
	return BehaviorLog{
		UserAccountID: c.UserAccountID,
		SessionID:     BehaviorLogSession_SimulationEngine,
		Path:          BehaviorLogPath_EarlyWithdrawal,
		EventType:     BehaviorLogEvent_EarlyWithdrawPenalty,
		Payload: EarlyWithdrawalPenaltyPayload{
			CommitmentID:   c.CommitmentID,
			Penalty:        result.Penalty.InexactFloat64(),
			OriginalAmount: c.LockedAmount.InexactFloat64(),
		},
	}
}
