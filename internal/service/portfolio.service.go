package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"finsim/internal/domain"
	"finsim/internal/logger"
	"finsim/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	GetOrCreate(ctx context.Context, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error)
	Trade(ctx context.Context, in TradeInput) (*domain.VirtualPortfolio, error)
	// ImportTrades applies rows in order, one unit of work per row, and
	// stops at the first failure
	ImportTrades(ctx context.Context, userAccountID uuid.UUID, rows []TradeInput) (*ImportTradesResult, error)
}

type TradeInput struct {
	UserAccountID uuid.UUID
	Symbol        string
	Quantity      decimal.Decimal
	Side          domain.TradeSide
	UnitPrice     decimal.Decimal
}

type ImportTradesResult struct {
	Applied   int
	Portfolio *domain.VirtualPortfolio
}

type portfolioServiceHandler struct {
	UnitOfWork          repository.UnitOfWork
	PortfolioRepository repository.VirtualPortfolioRepository
}

func NewPortfolioService(
	unitOfWork repository.UnitOfWork,
	portfolioRepository repository.VirtualPortfolioRepository,
) PortfolioService {
	return portfolioServiceHandler{
		UnitOfWork:          unitOfWork,
		PortfolioRepository: portfolioRepository,
	}
}

func (h portfolioServiceHandler) GetOrCreate(ctx context.Context, userAccountID uuid.UUID) (*domain.VirtualPortfolio, error) {
	portfolio, err := h.PortfolioRepository.GetOrCreate(nil, userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return portfolio, nil
}

func (h portfolioServiceHandler) Trade(ctx context.Context, in TradeInput) (*domain.VirtualPortfolio, error) {
	trade := domain.ProposedTrade{
		Symbol:    strings.ToUpper(strings.TrimSpace(in.Symbol)),
		Side:      in.Side,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	if err := trade.Validate(); err != nil {
		return nil, err
	}

	var out *domain.VirtualPortfolio
	err := h.UnitOfWork.Do(ctx, func(tx *sql.Tx) error {
		if _, err := h.PortfolioRepository.GetOrCreate(tx, in.UserAccountID); err != nil {
			return fmt.Errorf("failed to get portfolio: %w", err)
		}
		current, err := h.PortfolioRepository.GetForUpdate(tx, in.UserAccountID)
		if err != nil {
			return err
		}

		next, err := current.ApplyTrade(trade)
		if err != nil {
			return err
		}

		out, err = h.PortfolioRepository.Update(tx, *next)
		if err != nil {
			return fmt.Errorf("failed to save trade: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infof(
		"%s %s %s @ %s for user %s",
		trade.Side, trade.Quantity.String(), trade.Symbol, trade.UnitPrice.String(), in.UserAccountID.String(),
	)

	return out, nil
}

func (h portfolioServiceHandler) ImportTrades(ctx context.Context, userAccountID uuid.UUID, rows []TradeInput) (*ImportTradesResult, error) {
	result := &ImportTradesResult{}
	for i, row := range rows {
		row.UserAccountID = userAccountID
		portfolio, err := h.Trade(ctx, row)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", i+1, err)
		}
		result.Applied++
		result.Portfolio = portfolio
	}

	if result.Portfolio == nil {
		portfolio, err := h.GetOrCreate(ctx, userAccountID)
		if err != nil {
			return result, err
		}
		result.Portfolio = portfolio
	}

	return result, nil
}
