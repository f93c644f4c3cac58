package repository

import (
	"database/sql"
	"fmt"

	"finsim/internal/db/models/postgres/public/model"
	"finsim/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// ApiRequestRepository records every http request the api serves
type ApiRequestRepository interface {
	Add(ar model.APIRequest) (*model.APIRequest, error)
	Update(ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{Db: db}
}

func (h apiRequestRepositoryHandler) Add(ar model.APIRequest) (*model.APIRequest, error) {
	ar.RequestID = uuid.New()

	out := &model.APIRequest{}
	err := insertApiRequestQuery(ar).Query(h.Db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(ar model.APIRequest) error {
	_, err := updateApiRequestQuery(ar).Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update api request %s: %w", ar.RequestID.String(), err)
	}

	return nil
}

func insertApiRequestQuery(ar model.APIRequest) postgres.InsertStatement {
	t := table.APIRequest
	return t.INSERT(t.AllColumns).
		MODEL(ar).
		RETURNING(t.AllColumns)
}

func updateApiRequestQuery(ar model.APIRequest) postgres.UpdateStatement {
	t := table.APIRequest
	return t.UPDATE(t.UserID, t.DurationMs, t.StatusCode, t.ResponseBody).
		MODEL(ar).
		WHERE(t.RequestID.EQ(postgres.UUID(ar.RequestID)))
}
