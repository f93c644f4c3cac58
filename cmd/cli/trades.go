package main

import (
	"fmt"
	"io"
	"os"

	"finsim/internal/domain"
	"finsim/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type tradeRow struct {
	Symbol    string `csv:"symbol"`
	Side      string `csv:"side"`
	Quantity  string `csv:"quantity"`
	UnitPrice string `csv:"price"`
}

func parseTradeRows(r io.Reader) ([]service.TradeInput, error) {
	rows := []tradeRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read trades csv: %w", err)
	}

	out := make([]service.TradeInput, 0, len(rows))
	for i, row := range rows {
		side, err := domain.ParseTradeSide(row.Side)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		quantity, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: quantity %q", i+1, domain.ErrInvalidInput, row.Quantity)
		}
		unitPrice, err := decimal.NewFromString(row.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: price %q", i+1, domain.ErrInvalidInput, row.UnitPrice)
		}
		out = append(out, service.TradeInput{
			Symbol:    row.Symbol,
			Side:      side,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}
	return out, nil
}

func newTradesCmd() *cobra.Command {
	tradesCmd := &cobra.Command{
		Use:   "trades",
		Short: "Manage virtual portfolio trades",
	}

	var file, user string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Replay a csv of trades (symbol,side,quantity,price) against a user's portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			userAccountID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", file, err)
			}
			defer f.Close()

			rows, err := parseTradeRows(f)
			if err != nil {
				return err
			}

			deps, err := initializeDependencies()
			if err != nil {
				return err
			}
			defer closeDependencies(deps)

			result, err := deps.ApiHandler.PortfolioService.ImportTrades(cmd.Context(), userAccountID, rows)
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d of %d trades\n", result.Applied, len(rows))
				if result.Portfolio != nil {
					printJson(cmd, result.Portfolio)
				}
			}
			return err
		},
	}
	importCmd.Flags().StringVar(&file, "file", "", "path to the trades csv")
	importCmd.Flags().StringVar(&user, "user", "", "user account id")
	_ = importCmd.MarkFlagRequired("file")
	_ = importCmd.MarkFlagRequired("user")

	tradesCmd.AddCommand(importCmd)
	return tradesCmd
}
