package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finsim/internal/domain"
	"finsim/internal/logger"
	"finsim/internal/notifier"
	"finsim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommitmentService interface {
	Create(ctx context.Context, in CreateCommitmentInput) (*domain.Commitment, error)
	Withdraw(ctx context.Context, userAccountID, commitmentID uuid.UUID) (*domain.WithdrawalResult, error)
	List(ctx context.Context, userAccountID uuid.UUID) ([]domain.Commitment, error)
	// NotifyMatured emits a nudge request for every commitment that unlocked
	// at or before now and returns how many were announced
	NotifyMatured(ctx context.Context, now time.Time) (int, error)
}

type CreateCommitmentInput struct {
	UserAccountID uuid.UUID
	GoalName      string
	TargetAmount  decimal.Decimal
	LockedAmount  decimal.Decimal
	Months        int
}

func (in CreateCommitmentInput) validate() error {
	if strings.TrimSpace(in.GoalName) == "" {
		return fmt.Errorf("%w: goal name is required", domain.ErrInvalidInput)
	}
	if !in.LockedAmount.IsPositive() {
		return fmt.Errorf("%w: locked amount must be positive, got %s", domain.ErrInvalidInput, in.LockedAmount.String())
	}
	if in.TargetAmount.IsNegative() {
		return fmt.Errorf("%w: target amount cannot be negative", domain.ErrInvalidInput)
	}
	if in.Months < 1 {
		return fmt.Errorf("%w: months must be at least 1, got %d", domain.ErrInvalidInput, in.Months)
	}
	return nil
}

type commitmentServiceHandler struct {
	UnitOfWork            repository.UnitOfWork
	PortfolioRepository   repository.VirtualPortfolioRepository
	CommitmentRepository  repository.CommitmentRepository
	BehaviorLogRepository repository.BehaviorLogRepository
	Notifier              notifier.Notifier
	Now                   func() time.Time
}

func NewCommitmentService(
	unitOfWork repository.UnitOfWork,
	portfolioRepository repository.VirtualPortfolioRepository,
	commitmentRepository repository.CommitmentRepository,
	behaviorLogRepository repository.BehaviorLogRepository,
	n notifier.Notifier,
) CommitmentService {
	return commitmentServiceHandler{
		UnitOfWork:            unitOfWork,
		PortfolioRepository:   portfolioRepository,
		CommitmentRepository:  commitmentRepository,
		BehaviorLogRepository: behaviorLogRepository,
		Notifier:              n,
		Now:                   time.Now,
	}
}

func (h commitmentServiceHandler) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

func (h commitmentServiceHandler) Create(ctx context.Context, in CreateCommitmentInput) (*domain.Commitment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := h.now()

	var out *domain.Commitment
	err := h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		if _, err := h.PortfolioRepository.GetOrCreate(tx, in.UserAccountID); err != nil {
			return fmt.Errorf("failed to get portfolio: %w", err)
		}
		portfolio, err := h.PortfolioRepository.GetForUpdate(tx, in.UserAccountID)
		if err != nil {
			return err
		}

		debited, err := portfolio.Debit(in.LockedAmount)
		if err != nil {
			return err
		}
		if _, err := h.PortfolioRepository.Update(tx, *debited); err != nil {
			return fmt.Errorf("failed to debit portfolio: %w", err)
		}

		out, err = h.CommitmentRepository.Add(tx, domain.Commitment{
			UserAccountID: in.UserAccountID,
			GoalName:      strings.TrimSpace(in.GoalName),
			TargetAmount:  in.TargetAmount,
			LockedAmount:  in.LockedAmount,
			UnlockDate:    domain.UnlockDateFrom(now, in.Months),
			PenaltyRate:   domain.DefaultPenaltyRate,
		})
		if err != nil {
			return fmt.Errorf("failed to add commitment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof(
		"locked %s for %q until %s for user %s",
		out.LockedAmount.String(), out.GoalName, out.UnlockDate.Format(time.DateOnly), in.UserAccountID.String(),
	)

	return out, nil
}

func (h commitmentServiceHandler) Withdraw(ctx context.Context, userAccountID, commitmentID uuid.UUID) (*domain.WithdrawalResult, error) {
	now := h.now()

	var result domain.WithdrawalResult
	err := h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		commitment, err := h.CommitmentRepository.GetForUpdate(tx, commitmentID)
		if err != nil {
			return err
		}
		if commitment.UserAccountID != userAccountID {
			return fmt.Errorf("commitment %s: %w", commitmentID.String(), domain.ErrNotFound)
		}

		result = commitment.Withdrawal(now)

		portfolio, err := h.PortfolioRepository.GetForUpdate(tx, userAccountID)
		if err != nil {
			return err
		}
		credited, err := portfolio.Credit(result.Payout)
		if err != nil {
			return err
		}
		if _, err := h.PortfolioRepository.Update(tx, *credited); err != nil {
			return fmt.Errorf("failed to credit portfolio: %w", err)
		}

		if err := h.CommitmentRepository.Delete(tx, commitmentID); err != nil {
			return err
		}

		if result.Early {
			if _, err := h.BehaviorLogRepository.Add(tx, domain.NewEarlyWithdrawalLog(*commitment, result)); err != nil {
				return fmt.Errorf("failed to record early withdrawal: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Early {
		logger.FromContext(ctx).Warnf(
			"early withdrawal of commitment %s by user %s, penalty %s",
			commitmentID.String(), userAccountID.String(), result.Penalty.String(),
		)
	}

	return &result, nil
}

func (h commitmentServiceHandler) List(ctx context.Context, userAccountID uuid.UUID) ([]domain.Commitment, error) {
	commitments, err := h.CommitmentRepository.List(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	return commitments, nil
}

func (h commitmentServiceHandler) NotifyMatured(ctx context.Context, now time.Time) (int, error) {
	matured, err := h.CommitmentRepository.ListMatured(now)
	if err != nil {
		return 0, fmt.Errorf("failed to list matured commitments: %w", err)
	}
	if len(matured) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(matured))
	for _, c := range matured {
		ids = append(ids, c.CommitmentID)
	}
	// only rows this sweep stamped are announced. an overlapping sweep or a
	// withdrawal since ListMatured leaves them out
	var stamped []domain.Commitment
	err = h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		var err error
		stamped, err = h.CommitmentRepository.MarkMaturedNotified(tx, ids, now)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark matured commitments: %w", err)
	}

	// emitted after commit so a rolled back sweep announces nothing
	for _, c := range stamped {
		h.Notifier.Emit(notifier.Topic_NudgeRequest, notifier.NudgeRequest{
			UserAccountID: c.UserAccountID,
			Context:       notifier.NudgeContext_CommitmentMatured,
			Data: map[string]any{
				"commitmentId": c.CommitmentID.String(),
				"goalName":     c.GoalName,
				"lockedAmount": c.LockedAmount.InexactFloat64(),
			},
		})
	}

	logger.FromContext(ctx).Infof("announced %d of %d matured commitments", len(stamped), len(matured))

	return len(stamped), nil
}
