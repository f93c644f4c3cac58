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
	"github.com/shopspring/decimal"
)

type VirtualPortfolioRepository interface {
	// GetOrCreate is idempotent. a new portfolio starts with the default
	// balance and no assets
	GetOrCreate(tx *sql.Tx, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error)
	// GetForUpdate locks the row until tx ends. tx is required
	GetForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error)
	Update(tx *sql.Tx, portfolio domain.VirtualPortfolio) (*domain.VirtualPortfolio, error)
}

type virtualPortfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewVirtualPortfolioRepository(db *sql.DB) VirtualPortfolioRepository {
	return virtualPortfolioRepositoryHandler{Db: db}
}

func virtualPortfolioToDomain(m model.VirtualPortfolio) (*domain.VirtualPortfolio, error) {
	assets, err := schema.PortfolioAssets([]byte(m.Assets))
	if err != nil {
		return nil, fmt.Errorf("stored assets for portfolio %s are invalid: %w", m.VirtualPortfolioID.String(), err)
	}
	return &domain.VirtualPortfolio{
		VirtualPortfolioID: m.VirtualPortfolioID,
		UserAccountID:      m.UserAccountID,
		Balance:            m.Balance,
		Assets:             assets,
	}, nil
}

func insertVirtualPortfolioQuery(userAccountID uuid.UUID, now time.Time) postgres.InsertStatement {
	t := table.VirtualPortfolio
	return t.INSERT(
		t.UserAccountID,
		t.Balance,
		t.Assets,
		t.CreatedAt,
		t.ModifiedAt,
	).MODEL(model.VirtualPortfolio{
		UserAccountID: userAccountID,
		Balance:       domain.DefaultStartingBalance,
		Assets:        "{}",
		CreatedAt:     now,
		ModifiedAt:    now,
	}).ON_CONFLICT(t.UserAccountID).DO_NOTHING()
}

func selectVirtualPortfolioQuery(userAccountID uuid.UUID, forUpdate bool) postgres.SelectStatement {
	t := table.VirtualPortfolio
	query := t.SELECT(t.AllColumns).
		WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID)))
	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}
	return query
}

func (h virtualPortfolioRepositoryHandler) GetOrCreate(tx *sql.Tx, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error) {
	var execDb qrm.Executable = h.Db
	var queryDb qrm.Queryable = h.Db
	if tx != nil {
		execDb = tx
		queryDb = tx
	}

	if _, err := insertVirtualPortfolioQuery(userAccountID, time.Now().UTC()).Exec(execDb); err != nil {
		return nil, fmt.Errorf("failed to create virtual portfolio: %w", err)
	}

	out := model.VirtualPortfolio{}
	if err := selectVirtualPortfolioQuery(userAccountID, false).Query(queryDb, &out); err != nil {
		return nil, fmt.Errorf("failed to get virtual portfolio: %w", err)
	}

	return virtualPortfolioToDomain(out)
}

func (h virtualPortfolioRepositoryHandler) GetForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error) {
	if tx == nil {
		return nil, fmt.Errorf("GetForUpdate requires a transaction")
	}
	out := model.VirtualPortfolio{}
	err := selectVirtualPortfolioQuery(userAccountID, true).Query(tx, &out)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("virtual portfolio for user %s: %w", userAccountID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to lock virtual portfolio: %w", err)
	}

	return virtualPortfolioToDomain(out)
}

func (h virtualPortfolioRepositoryHandler) Update(tx *sql.Tx, portfolio domain.VirtualPortfolio) (*domain.VirtualPortfolio, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	if portfolio.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative, got %s", domain.ErrValidation, portfolio.Balance.String())
	}
	assets, err := schema.EncodePortfolioAssets(portfolio.Assets)
	if err != nil {
		return nil, err
	}

	out := model.VirtualPortfolio{}
	err = updateVirtualPortfolioQuery(portfolio.UserAccountID, portfolio.Balance, string(assets), time.Now().UTC()).Query(db, &out)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("virtual portfolio for user %s: %w", portfolio.UserAccountID.String(), domain.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update virtual portfolio: %w", err)
	}

	return virtualPortfolioToDomain(out)
}

func updateVirtualPortfolioQuery(userAccountID uuid.UUID, balance decimal.Decimal, assets string, now time.Time) postgres.UpdateStatement {
	t := table.VirtualPortfolio
	return t.UPDATE(t.Balance, t.Assets, t.ModifiedAt).
		MODEL(model.VirtualPortfolio{
			Balance:    balance,
			Assets:     assets,
			ModifiedAt: now,
		}).
		WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID))).
		RETURNING(t.AllColumns)
}
