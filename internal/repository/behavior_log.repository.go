package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"finsim/internal/db/models/postgres/public/model"
	"finsim/internal/db/models/postgres/public/table"
	"finsim/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// BehaviorLogRepository is append only
type BehaviorLogRepository interface {
	Add(tx *sql.Tx, log domain.BehaviorLog) (*domain.BehaviorLog, error)
}

type behaviorLogRepositoryHandler struct {
	Db *sql.DB
}

func NewBehaviorLogRepository(db *sql.DB) BehaviorLogRepository {
	return behaviorLogRepositoryHandler{Db: db}
}

func (h behaviorLogRepositoryHandler) Add(tx *sql.Tx, log domain.BehaviorLog) (*domain.BehaviorLog, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	payload, err := json.Marshal(log.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode behavior log payload: %w", err)
	}

	out := model.BehaviorLog{}
	if err := insertBehaviorLogQuery(log, string(payload), time.Now().UTC()).Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to insert behavior log: %w", err)
	}

	log.BehaviorLogID = out.BehaviorLogID
	log.CreatedAt = out.CreatedAt
	return &log, nil
}

func insertBehaviorLogQuery(log domain.BehaviorLog, payload string, now time.Time) postgres.InsertStatement {
	t := table.BehaviorLog
	return t.INSERT(t.MutableColumns).
		MODEL(model.BehaviorLog{
			UserAccountID: log.UserAccountID,
			SessionID:     log.SessionID,
			Path:          log.Path,
			EventType:     log.EventType,
			Payload:       payload,
			CreatedAt:     now,
		}).
		RETURNING(t.AllColumns)
}
