package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var DefaultStartingBalance = decimal.NewFromInt(100000)

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "BUY"
	TradeSide_Sell TradeSide = "SELL"
)

func ParseTradeSide(s string) (TradeSide, error) {
	switch TradeSide(strings.ToUpper(strings.TrimSpace(s))) {
	case TradeSide_Buy:
		return TradeSide_Buy, nil
	case TradeSide_Sell:
		return TradeSide_Sell, nil
	}
	return "", fmt.Errorf("%w: side must be BUY or SELL, got %q", ErrInvalidInput, s)
}

// VirtualPortfolio is a user's sandboxed cash balance and holdings. Assets
// never contains a zero or negative quantity; a missing symbol means zero
type VirtualPortfolio struct {
	VirtualPortfolioID uuid.UUID
	UserAccountID      uuid.UUID
	Balance            decimal.Decimal
	Assets             map[string]decimal.Decimal
}

func NewVirtualPortfolio(userAccountID uuid.UUID) *VirtualPortfolio {
	return &VirtualPortfolio{
		UserAccountID: userAccountID,
		Balance:       DefaultStartingBalance,
		Assets:        map[string]decimal.Decimal{},
	}
}

func (p VirtualPortfolio) DeepCopy() *VirtualPortfolio {
	assets := make(map[string]decimal.Decimal, len(p.Assets))
	for symbol, quantity := range p.Assets {
		assets[symbol] = quantity
	}
	return &VirtualPortfolio{
		VirtualPortfolioID: p.VirtualPortfolioID,
		UserAccountID:      p.UserAccountID,
		Balance:            p.Balance,
		Assets:             assets,
	}
}

func (p VirtualPortfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Assets {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

func (p VirtualPortfolio) Quantity(symbol string) decimal.Decimal {
	q, ok := p.Assets[symbol]
	if !ok {
		return decimal.Zero
	}
	return q
}

type ProposedTrade struct {
	Symbol    string
	Side      TradeSide
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

func (t ProposedTrade) Amount() decimal.Decimal {
	return t.Quantity.Mul(t.UnitPrice)
}

func (t ProposedTrade) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if t.Side != TradeSide_Buy && t.Side != TradeSide_Sell {
		return fmt.Errorf("%w: side must be BUY or SELL, got %q", ErrInvalidInput, t.Side)
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be > 0, got %s", ErrInvalidInput, t.Quantity.String())
	}
	if !t.UnitPrice.IsPositive() {
		return fmt.Errorf("%w: unit price must be > 0, got %s", ErrInvalidInput, t.UnitPrice.String())
	}
	return nil
}

// ApplyTrade returns the portfolio that results from executing the trade.
// the receiver is left untouched so a failed write never leaks a partial state
func (p VirtualPortfolio) ApplyTrade(t ProposedTrade) (*VirtualPortfolio, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	out := p.DeepCopy()
	amount := t.Amount()
	held := p.Quantity(t.Symbol)

	switch t.Side {
	case TradeSide_Buy:
		if p.Balance.LessThan(amount) {
			return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientBalance, amount.String(), p.Balance.String())
		}
		out.Balance = p.Balance.Sub(amount)
		out.Assets[t.Symbol] = held.Add(t.Quantity)
	case TradeSide_Sell:
		if held.LessThan(t.Quantity) {
			return nil, fmt.Errorf("%w: cannot sell %s %s, holding %s", ErrInsufficientAssets, t.Quantity.String(), t.Symbol, held.String())
		}
		out.Balance = p.Balance.Add(amount)
		remaining := held.Sub(t.Quantity)
		if remaining.IsZero() {
			delete(out.Assets, t.Symbol)
		} else {
			out.Assets[t.Symbol] = remaining
		}
	}

	return out, nil
}

// Debit removes cash from the balance, e.g. to lock it in a commitment
func (p VirtualPortfolio) Debit(amount decimal.Decimal) (*VirtualPortfolio, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: debit amount must be > 0, got %s", ErrInvalidInput, amount.String())
	}
	if p.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientBalance, amount.String(), p.Balance.String())
	}
	out := p.DeepCopy()
	out.Balance = p.Balance.Sub(amount)
	return out, nil
}

func (p VirtualPortfolio) Credit(amount decimal.Decimal) (*VirtualPortfolio, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: credit amount must be >= 0, got %s", ErrInvalidInput, amount.String())
	}
	out := p.DeepCopy()
	out.Balance = p.Balance.Add(amount)
	return out, nil
}
