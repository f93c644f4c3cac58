package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finsim/internal/db/models/postgres/public/model"
	"finsim/internal/db/models/postgres/public/table"
	"finsim/internal/domain"
	"finsim/internal/schema"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SimulationScenarioRepository interface {
	Add(tx *sql.Tx, scenario domain.SimulationScenario) (*domain.SimulationScenario, error)
	Get(id uuid.UUID) (*domain.SimulationScenario, error)
	GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.SimulationScenario, error)
	Update(tx *sql.Tx, scenario domain.SimulationScenario) (*domain.SimulationScenario, error)
}

type simulationScenarioRepositoryHandler struct {
	Db *sql.DB
}

func NewSimulationScenarioRepository(db *sql.DB) SimulationScenarioRepository {
	return simulationScenarioRepositoryHandler{Db: db}
}

func simulationScenarioToDomain(m model.SimulationScenario) (*domain.SimulationScenario, error) {
	status, err := schema.SimulationStatus([]byte(m.CurrentStatus))
	if err != nil {
		return nil, fmt.Errorf("stored status for scenario %s is invalid: %w", m.SimulationScenarioID.String(), err)
	}
	decisions, err := schema.SimulationDecisions([]byte(m.Decisions))
	if err != nil {
		return nil, fmt.Errorf("stored decisions for scenario %s are invalid: %w", m.SimulationScenarioID.String(), err)
	}

	return &domain.SimulationScenario{
		SimulationScenarioID: m.SimulationScenarioID,
		UserAccountID:        m.UserAccountID,
		CurrentStatus:        *status,
		Decisions:            decisions,
		IsActive:             m.IsActive,
		CreatedAt:            m.CreatedAt,
		ModifiedAt:           m.ModifiedAt,
	}, nil
}

// simulationScenarioToModel re-validates both json columns before they
// reach the table
func simulationScenarioToModel(s domain.SimulationScenario) (*model.SimulationScenario, error) {
	status, err := schema.EncodeSimulationStatus(s.CurrentStatus)
	if err != nil {
		return nil, err
	}
	decisions, err := schema.EncodeSimulationDecisions(s.Decisions)
	if err != nil {
		return nil, err
	}
	return &model.SimulationScenario{
		SimulationScenarioID: s.SimulationScenarioID,
		UserAccountID:        s.UserAccountID,
		CurrentStatus:        string(status),
		Decisions:            string(decisions),
		IsActive:             s.IsActive,
		CreatedAt:            s.CreatedAt,
		ModifiedAt:           s.ModifiedAt,
	}, nil
}

func (h simulationScenarioRepositoryHandler) Add(tx *sql.Tx, scenario domain.SimulationScenario) (*domain.SimulationScenario, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	now := time.Now().UTC()
	scenario.CreatedAt = now
	scenario.ModifiedAt = now
	m, err := simulationScenarioToModel(scenario)
	if err != nil {
		return nil, err
	}

	out := model.SimulationScenario{}
	if err := insertSimulationScenarioQuery(*m).Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert simulation scenario: %w", err)
	}

	return simulationScenarioToDomain(out)
}

func (h simulationScenarioRepositoryHandler) get(db qrm.Queryable, id uuid.UUID, forUpdate bool) (*domain.SimulationScenario, error) {
	out := model.SimulationScenario{}
	err := selectSimulationScenarioQuery(id, forUpdate).Query(db, &out)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("simulation scenario %s: %w", id.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get simulation scenario: %w", err)
	}

	return simulationScenarioToDomain(out)
}

func (h simulationScenarioRepositoryHandler) Get(id uuid.UUID) (*domain.SimulationScenario, error) {
	return h.get(h.Db, id, false)
}

func (h simulationScenarioRepositoryHandler) GetForUpdate(tx *sql.Tx, id uuid.UUID) (*domain.SimulationScenario, error) {
	if tx == nil {
		return nil, fmt.Errorf("GetForUpdate requires a transaction")
	}
	return h.get(tx, id, true)
}

func (h simulationScenarioRepositoryHandler) Update(tx *sql.Tx, scenario domain.SimulationScenario) (*domain.SimulationScenario, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	scenario.ModifiedAt = time.Now().UTC()
	m, err := simulationScenarioToModel(scenario)
	if err != nil {
		return nil, err
	}

	out := model.SimulationScenario{}
	err = updateSimulationScenarioQuery(*m).Query(db, &out)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("simulation scenario %s: %w", scenario.SimulationScenarioID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update simulation scenario: %w", err)
	}

	return simulationScenarioToDomain(out)
}

func insertSimulationScenarioQuery(m model.SimulationScenario) postgres.InsertStatement {
	t := table.SimulationScenario
	return t.INSERT(
		t.UserAccountID,
		t.CurrentStatus,
		t.Decisions,
		t.IsActive,
		t.CreatedAt,
		t.ModifiedAt,
	).MODEL(m).RETURNING(t.AllColumns)
}

func selectSimulationScenarioQuery(id uuid.UUID, forUpdate bool) postgres.SelectStatement {
	t := table.SimulationScenario
	query := t.SELECT(t.AllColumns).
		WHERE(t.SimulationScenarioID.EQ(postgres.UUID(id)))
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}
	return query
}

func updateSimulationScenarioQuery(m model.SimulationScenario) postgres.UpdateStatement {
	t := table.SimulationScenario
	return t.UPDATE(t.CurrentStatus, t.Decisions, t.IsActive, t.ModifiedAt).
		MODEL(m).
		WHERE(t.SimulationScenarioID.EQ(postgres.UUID(m.SimulationScenarioID))).
		RETURNING(t.AllColumns)
}
