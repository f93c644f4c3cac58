package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestPortfolio(balance int64, assets map[string]decimal.Decimal) VirtualPortfolio {
	if assets == nil {
		assets = map[string]decimal.Decimal{}
	}
	return VirtualPortfolio{
		UserAccountID: uuid.New(),
		Balance:       decimal.NewFromInt(balance),
		Assets:        assets,
	}
}

func TestVirtualPortfolio_ApplyTrade(t *testing.T) {
	t.Run("buy btc from default balance", func(t *testing.T) {
		p := newTestPortfolio(100000, nil)

		out, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "BTC",
			Side:      TradeSide_Buy,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(40000),
		})
		require.NoError(t, err)

		require.True(t, out.Balance.Equal(decimal.NewFromInt(60000)))
		require.Equal(t, "", cmp.Diff(map[string]decimal.Decimal{"BTC": decimal.NewFromInt(1)}, out.Assets))
	})

	t.Run("buy debits exactly quantity times price", func(t *testing.T) {
		cases := []struct {
			quantity string
			price    string
		}{
			{"1", "1"},
			{"0.5", "30000"},
			{"3", "333.33"},
			{"0.0001", "61234.56"},
		}
		for _, c := range cases {
			p := newTestPortfolio(100000, map[string]decimal.Decimal{"ETH": decimal.NewFromInt(2)})
			q := decimal.RequireFromString(c.quantity)
			price := decimal.RequireFromString(c.price)

			out, err := p.ApplyTrade(ProposedTrade{Symbol: "ETH", Side: TradeSide_Buy, Quantity: q, UnitPrice: price})
			require.NoError(t, err)
			require.True(t, out.Balance.Equal(p.Balance.Sub(q.Mul(price))), "balance for %s x %s", c.quantity, c.price)
			require.True(t, out.Assets["ETH"].Equal(decimal.NewFromInt(2).Add(q)))
		}
	})

	t.Run("buy with insufficient balance", func(t *testing.T) {
		p := newTestPortfolio(100, nil)

		_, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "BTC",
			Side:      TradeSide_Buy,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(40000),
		})
		require.True(t, errors.Is(err, ErrInsufficientBalance))
		require.True(t, p.Balance.Equal(decimal.NewFromInt(100)))
		require.Empty(t, p.Assets)
	})

	t.Run("selling the full position removes the symbol", func(t *testing.T) {
		p := newTestPortfolio(0, map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(10),
			"MSFT": decimal.NewFromInt(1),
		})

		out, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "AAPL",
			Side:      TradeSide_Sell,
			Quantity:  decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(150),
		})
		require.NoError(t, err)

		_, ok := out.Assets["AAPL"]
		require.False(t, ok)
		require.True(t, out.Balance.Equal(decimal.NewFromInt(1500)))
		require.Equal(t, []string{"MSFT"}, out.HeldSymbols())
	})

	t.Run("partial sell keeps the remainder", func(t *testing.T) {
		p := newTestPortfolio(0, map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(10)})

		out, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "AAPL",
			Side:      TradeSide_Sell,
			Quantity:  decimal.NewFromFloat(2.5),
			UnitPrice: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		require.True(t, out.Assets["AAPL"].Equal(decimal.NewFromFloat(7.5)))
		require.True(t, out.Balance.Equal(decimal.NewFromInt(250)))
	})

	t.Run("sell more than held", func(t *testing.T) {
		p := newTestPortfolio(0, map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(1)})

		_, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "AAPL",
			Side:      TradeSide_Sell,
			Quantity:  decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(100),
		})
		require.True(t, errors.Is(err, ErrInsufficientAssets))
	})

	t.Run("sell symbol never held", func(t *testing.T) {
		p := newTestPortfolio(1000, nil)

		_, err := p.ApplyTrade(ProposedTrade{
			Symbol:    "DOGE",
			Side:      TradeSide_Sell,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(1),
		})
		require.True(t, errors.Is(err, ErrInsufficientAssets))
	})

	t.Run("buy then sell round trips", func(t *testing.T) {
		start := newTestPortfolio(100000, map[string]decimal.Decimal{"GOOG": decimal.NewFromInt(3)})
		q := decimal.RequireFromString("0.75")
		price := decimal.RequireFromString("1234.5")

		bought, err := start.ApplyTrade(ProposedTrade{Symbol: "BTC", Side: TradeSide_Buy, Quantity: q, UnitPrice: price})
		require.NoError(t, err)
		sold, err := bought.ApplyTrade(ProposedTrade{Symbol: "BTC", Side: TradeSide_Sell, Quantity: q, UnitPrice: price})
		require.NoError(t, err)

		require.True(t, sold.Balance.Equal(start.Balance))
		require.Equal(t, "", cmp.Diff(start.Assets, sold.Assets))
	})

	t.Run("rejects non positive inputs", func(t *testing.T) {
		p := newTestPortfolio(100000, nil)
		trades := []ProposedTrade{
			{Symbol: "BTC", Side: TradeSide_Buy, Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
			{Symbol: "BTC", Side: TradeSide_Buy, Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(1)},
			{Symbol: "BTC", Side: TradeSide_Buy, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero},
			{Symbol: " ", Side: TradeSide_Buy, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
			{Symbol: "BTC", Side: "HOLD", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		}
		for _, trade := range trades {
			_, err := p.ApplyTrade(trade)
			require.True(t, errors.Is(err, ErrInvalidInput), "trade %+v", trade)
		}
	})
}

func TestVirtualPortfolio_DebitCredit(t *testing.T) {
	p := newTestPortfolio(1000, nil)

	_, err := p.Debit(decimal.NewFromInt(1001))
	require.True(t, errors.Is(err, ErrInsufficientBalance))

	debited, err := p.Debit(decimal.NewFromInt(400))
	require.NoError(t, err)
	require.True(t, debited.Balance.Equal(decimal.NewFromInt(600)))
	require.True(t, p.Balance.Equal(decimal.NewFromInt(1000)))

	credited, err := debited.Credit(decimal.NewFromInt(360))
	require.NoError(t, err)
	require.True(t, credited.Balance.Equal(decimal.NewFromInt(960)))
}

func TestParseTradeSide(t *testing.T) {
	side, err := ParseTradeSide(" buy ")
	require.NoError(t, err)
	require.Equal(t, TradeSide_Buy, side)

	side, err = ParseTradeSide("SELL")
	require.NoError(t, err)
	require.Equal(t, TradeSide_Sell, side)

	_, err = ParseTradeSide("short")
	require.True(t, errors.Is(err, ErrInvalidInput))
}
