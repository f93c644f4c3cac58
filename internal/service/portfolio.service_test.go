package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"finsim/internal/domain"
	mock_repository "finsim/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// runInline makes the mocked unit of work call fn with a nil tx, the way
// repositories fall back to the plain db handle
func runInline(uow *mock_repository.MockUnitOfWork) *gomock.Call {
	return uow.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})
}

func Test_portfolioServiceHandler_Trade(t *testing.T) {
	userID := uuid.New()
	ctx := context.Background()

	t.Run("buy debits balance and adds the asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		start := domain.NewVirtualPortfolio(userID)
		runInline(uow)
		portfolioRepository.EXPECT().GetOrCreate(nil, userID).Return(start, nil)
		portfolioRepository.EXPECT().GetForUpdate(nil, userID).Return(start, nil)
		portfolioRepository.EXPECT().
			Update(nil, gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, p domain.VirtualPortfolio) (*domain.VirtualPortfolio, error) {
				return &p, nil
			})

		out, err := handler.Trade(ctx, TradeInput{
			UserAccountID: userID,
			Symbol:        " btc ",
			Quantity:      decimal.NewFromInt(1),
			Side:          domain.TradeSide_Buy,
			UnitPrice:     decimal.NewFromInt(40000),
		})
		require.NoError(t, err)
		require.True(t, out.Balance.Equal(decimal.NewFromInt(60000)))
		require.Equal(t, "", cmp.Diff(map[string]decimal.Decimal{"BTC": decimal.NewFromInt(1)}, out.Assets))
	})

	t.Run("insufficient balance never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		poor := &domain.VirtualPortfolio{
			UserAccountID: userID,
			Balance:       decimal.NewFromInt(10),
			Assets:        map[string]decimal.Decimal{},
		}
		runInline(uow)
		portfolioRepository.EXPECT().GetOrCreate(nil, userID).Return(poor, nil)
		portfolioRepository.EXPECT().GetForUpdate(nil, userID).Return(poor, nil)
		portfolioRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Trade(ctx, TradeInput{
			UserAccountID: userID,
			Symbol:        "BTC",
			Quantity:      decimal.NewFromInt(1),
			Side:          domain.TradeSide_Buy,
			UnitPrice:     decimal.NewFromInt(40000),
		})
		require.True(t, errors.Is(err, domain.ErrInsufficientBalance))
	})

	t.Run("selling an unheld asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		start := domain.NewVirtualPortfolio(userID)
		runInline(uow)
		portfolioRepository.EXPECT().GetOrCreate(nil, userID).Return(start, nil)
		portfolioRepository.EXPECT().GetForUpdate(nil, userID).Return(start, nil)

		_, err := handler.Trade(ctx, TradeInput{
			UserAccountID: userID,
			Symbol:        "AAPL",
			Quantity:      decimal.NewFromInt(1),
			Side:          domain.TradeSide_Sell,
			UnitPrice:     decimal.NewFromInt(100),
		})
		require.True(t, errors.Is(err, domain.ErrInsufficientAssets))
	})

	t.Run("invalid input is rejected before the unit of work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		_, err := handler.Trade(ctx, TradeInput{
			UserAccountID: userID,
			Symbol:        "AAPL",
			Quantity:      decimal.Zero,
			Side:          domain.TradeSide_Buy,
			UnitPrice:     decimal.NewFromInt(100),
		})
		require.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("a failed write surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		start := domain.NewVirtualPortfolio(userID)
		runInline(uow)
		portfolioRepository.EXPECT().GetOrCreate(nil, userID).Return(start, nil)
		portfolioRepository.EXPECT().GetForUpdate(nil, userID).Return(start, nil)
		portfolioRepository.EXPECT().Update(nil, gomock.Any()).Return(nil, domain.ErrValidation)

		_, err := handler.Trade(ctx, TradeInput{
			UserAccountID: userID,
			Symbol:        "BTC",
			Quantity:      decimal.NewFromInt(1),
			Side:          domain.TradeSide_Buy,
			UnitPrice:     decimal.NewFromInt(1),
		})
		require.True(t, errors.Is(err, domain.ErrValidation))
	})
}

func Test_portfolioServiceHandler_ImportTrades(t *testing.T) {
	userID := uuid.New()

	t.Run("stops at the first failing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := mock_repository.NewMockUnitOfWork(ctrl)
		portfolioRepository := mock_repository.NewMockVirtualPortfolioRepository(ctrl)
		handler := portfolioServiceHandler{
			UnitOfWork:          uow,
			PortfolioRepository: portfolioRepository,
		}

		current := domain.NewVirtualPortfolio(userID)
		runInline(uow).Times(2)
		portfolioRepository.EXPECT().GetOrCreate(nil, userID).Return(current, nil).Times(2)
		portfolioRepository.EXPECT().
			GetForUpdate(nil, userID).
			DoAndReturn(func(tx *sql.Tx, id uuid.UUID) (*domain.VirtualPortfolio, error) {
				return current, nil
			}).
			Times(2)
		portfolioRepository.EXPECT().
			Update(nil, gomock.Any()).
			DoAndReturn(func(tx *sql.Tx, p domain.VirtualPortfolio) (*domain.VirtualPortfolio, error) {
				current = &p
				return &p, nil
			})

		result, err := handler.ImportTrades(context.Background(), userID, []TradeInput{
			{Symbol: "AAPL", Quantity: decimal.NewFromInt(2), Side: domain.TradeSide_Buy, UnitPrice: decimal.NewFromInt(100)},
			{Symbol: "AAPL", Quantity: decimal.NewFromInt(3), Side: domain.TradeSide_Sell, UnitPrice: decimal.NewFromInt(100)},
			{Symbol: "MSFT", Quantity: decimal.NewFromInt(1), Side: domain.TradeSide_Buy, UnitPrice: decimal.NewFromInt(100)},
		})
		require.True(t, errors.Is(err, domain.ErrInsufficientAssets))
		require.ErrorContains(t, err, "row 2")
		require.Equal(t, 1, result.Applied)
		require.True(t, result.Portfolio.Balance.Equal(decimal.NewFromInt(99800)))
	})
}
