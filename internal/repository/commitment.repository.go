package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finsim/internal/db/models/postgres/public/model"
	"finsim/internal/db/models/postgres/public/table"
	"finsim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type CommitmentRepository interface {
	Add(tx *sql.Tx, c domain.Commitment) (*domain.Commitment, error)
	GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.Commitment, error)
	List(userAccountID uuid.UUID) ([]domain.Commitment, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
	// ListMatured returns commitments unlocked at or before now that have not
	// been announced yet
	ListMatured(now time.Time) ([]domain.Commitment, error)
	// MarkMaturedNotified stamps the commitments that are still unannounced
	// and returns only those. rows already stamped or gone are skipped
	MarkMaturedNotified(tx *sql.Tx, ids []uuid.UUID, at time.Time) ([]domain.Commitment, error)
}

type commitmentRepositoryHandler struct {
	Db *sql.DB
}

func NewCommitmentRepository(db *sql.DB) CommitmentRepository {
	return commitmentRepositoryHandler{Db: db}
}

func commitmentToDomain(m model.SimulationCommitment) domain.Commitment {
	return domain.Commitment{
		CommitmentID:  m.SimulationCommitmentID,
		UserAccountID: m.UserAccountID,
		GoalName:      m.GoalName,
		TargetAmount:  m.TargetAmount,
		LockedAmount:  m.LockedAmount,
		UnlockDate:    m.UnlockDate,
		PenaltyRate:   m.PenaltyRate,
		CreatedAt:     m.CreatedAt,
	}
}

func (h commitmentRepositoryHandler) Add(tx *sql.Tx, c domain.Commitment) (*domain.Commitment, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.SimulationCommitment{}
	if err := insertCommitmentQuery(c, time.Now().UTC()).Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert commitment: %w", err)
	}

	result := commitmentToDomain(out)
	return &result, nil
}

func (h commitmentRepositoryHandler) GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.Commitment, error) {
	if tx == nil {
		return nil, fmt.Errorf("GetForUpdate requires a transaction")
	}

	out := model.SimulationCommitment{}
	err := lockCommitmentQuery(id).Query(tx, &out)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("commitment %s: %w", id.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get commitment: %w", err)
	}

	result := commitmentToDomain(out)
	return &result, nil
}

func (h commitmentRepositoryHandler) List(userAccountID uuid.UUID) ([]domain.Commitment, error) {
	t := table.SimulationCommitment
	query := t.SELECT(t.AllColumns).
		WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(t.UnlockDate.ASC())

	out := []model.SimulationCommitment{}
	if err := query.Query(h.Db, &out); err != nil {
		return nil, fmt.Errorf("failed to list commitments: %w", err)
	}

	results := []domain.Commitment{}
	for _, m := range out {
		results = append(results, commitmentToDomain(m))
	}
	return results, nil
}

func (h commitmentRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := deleteCommitmentQuery(id).Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete commitment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted commitments: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("commitment %s: %w", id.String(), domain.ErrNotFound)
	}

	return nil
}

func (h commitmentRepositoryHandler) ListMatured(now time.Time) ([]domain.Commitment, error) {
	out := []model.SimulationCommitment{}
	if err := listMaturedCommitmentsQuery(now).Query(h.Db, &out); err != nil {
		return nil, fmt.Errorf("failed to list matured commitments: %w", err)
	}

	results := []domain.Commitment{}
	for _, m := range out {
		results = append(results, commitmentToDomain(m))
	}
	return results, nil
}

func (h commitmentRepositoryHandler) MarkMaturedNotified(tx *sql.Tx, ids []uuid.UUID, at time.Time) ([]domain.Commitment, error) {
	if len(ids) == 0 {
		return []domain.Commitment{}, nil
	}
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.SimulationCommitment{}
	if err := markMaturedNotifiedQuery(ids, at).Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to mark commitments notified: %w", err)
	}

	results := []domain.Commitment{}
	for _, m := range out {
		results = append(results, commitmentToDomain(m))
	}
	return results, nil
}

func insertCommitmentQuery(c domain.Commitment, now time.Time) postgres.InsertStatement {
	t := table.SimulationCommitment
	return t.INSERT(
		t.UserAccountID,
		t.GoalName,
		t.TargetAmount,
		t.LockedAmount,
		t.UnlockDate,
		t.PenaltyRate,
		t.CreatedAt,
	).MODEL(model.SimulationCommitment{
		UserAccountID: c.UserAccountID,
		GoalName:      c.GoalName,
		TargetAmount:  c.TargetAmount,
		LockedAmount:  c.LockedAmount,
		UnlockDate:    c.UnlockDate.UTC(),
		PenaltyRate:   c.PenaltyRate,
		CreatedAt:     now,
	}).RETURNING(t.AllColumns)
}

func lockCommitmentQuery(id uuid.UUID) postgres.SelectStatement {
	t := table.SimulationCommitment
	return t.SELECT(t.AllColumns).
		WHERE(t.SimulationCommitmentID.EQ(postgres.UUID(id))).
		FOR(postgres.UPDATE())
}

func deleteCommitmentQuery(id uuid.UUID) postgres.DeleteStatement {
	t := table.SimulationCommitment
	return t.DELETE().WHERE(t.SimulationCommitmentID.EQ(postgres.UUID(id)))
}

func listMaturedCommitmentsQuery(now time.Time) postgres.SelectStatement {
	t := table.SimulationCommitment
	return t.SELECT(t.AllColumns).
		WHERE(postgres.AND(
			t.UnlockDate.LT_EQ(postgres.TimestampT(now.UTC())),
			t.MaturedNotifiedAt.IS_NULL(),
		)).
		ORDER_BY(t.UnlockDate.ASC())
}

// the IS NULL guard makes a second overlapping sweep a no-op for rows the
// first one already claimed
func markMaturedNotifiedQuery(ids []uuid.UUID, at time.Time) postgres.UpdateStatement {
	idExpressions := []postgres.Expression{}
	for _, id := range ids {
		idExpressions = append(idExpressions, postgres.UUID(id))
	}

	t := table.SimulationCommitment
	return t.UPDATE(t.MaturedNotifiedAt).
		SET(postgres.TimestampT(at.UTC())).
		WHERE(postgres.AND(
			t.SimulationCommitmentID.IN(idExpressions...),
			t.MaturedNotifiedAt.IS_NULL(),
		)).
		RETURNING(t.AllColumns)
}
