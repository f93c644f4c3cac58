package main

import (
	"encoding/json"
	"fmt"
	"os"

	"finsim/cmd"
	"finsim/internal/app"
	"finsim/internal/calculator"
	"finsim/internal/logger"
	"finsim/internal/notifier"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	initializeDependencies = cmd.InitializeDependencies
	closeDependencies      = cmd.CloseDependencies
)

func main() {
	lg := logger.New()
	nudges := notifier.NewAsyncNotifier(16, lg, notifier.LogHandler(lg))
	planningApp := app.NewPlanningApp(nudges)

	root := &cobra.Command{
		Use:          "finsim",
		Short:        "Financial simulation engine tools",
		SilenceUsage: true,
	}

	root.AddCommand(
		newBudgetCmd(planningApp),
		newStressTestCmd(planningApp),
		newImpactCmd(planningApp),
		newTradesCmd(),
	)

	err := root.Execute()
	nudges.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printJson(c *cobra.Command, v any) {
	bytes, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(c.ErrOrStderr(), err)
		return
	}
	fmt.Fprintln(c.OutOrStdout(), string(bytes))
}

func decimalArg(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return d, nil
}

// the cli has no logged in user, so nudges are attributed to the nil id
// unless --user is given
func userFlag(c *cobra.Command) (uuid.UUID, error) {
	user, _ := c.Flags().GetString("user")
	if user == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(user)
}

func newBudgetCmd(planningApp app.PlanningApp) *cobra.Command {
	c := &cobra.Command{
		Use:   "budget <needs> <wants> <savings>",
		Short: "Check a percent split of income against the 50/30/20 rule",
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			userAccountID, err := userFlag(c)
			if err != nil {
				return err
			}
			allocation := calculator.BudgetAllocation{}
			for i, target := range []*decimal.Decimal{&allocation.Needs, &allocation.Wants, &allocation.Savings} {
				*target, err = decimalArg([]string{"needs", "wants", "savings"}[i], args[i])
				if err != nil {
					return err
				}
			}

			result, err := planningApp.EvaluateBudget(c.Context(), userAccountID, allocation)
			if err != nil {
				return err
			}
			printJson(c, result)
			return nil
		},
	}
	c.Flags().String("user", "", "user account id")
	return c
}

func newStressTestCmd(planningApp app.PlanningApp) *cobra.Command {
	var income, expenses, fund string
	c := &cobra.Command{
		Use:   "stress-test",
		Short: "See how long an emergency fund lasts, with and without a 10% inflation shock",
		RunE: func(c *cobra.Command, args []string) error {
			userAccountID, err := userFlag(c)
			if err != nil {
				return err
			}
			in := calculator.StressTestInput{}
			if in.MonthlyIncome, err = decimalArg("income", income); err != nil {
				return err
			}
			if in.MonthlyExpenses, err = decimalArg("expenses", expenses); err != nil {
				return err
			}
			if in.EmergencyFund, err = decimalArg("fund", fund); err != nil {
				return err
			}

			result, err := planningApp.StressTest(c.Context(), userAccountID, in)
			if err != nil {
				return err
			}
			printJson(c, result)
			return nil
		},
	}
	c.Flags().StringVar(&income, "income", "0", "monthly income")
	c.Flags().StringVar(&expenses, "expenses", "", "monthly expenses")
	c.Flags().StringVar(&fund, "fund", "", "emergency fund")
	c.Flags().String("user", "", "user account id")
	_ = c.MarkFlagRequired("expenses")
	_ = c.MarkFlagRequired("fund")
	return c
}

func newImpactCmd(planningApp app.PlanningApp) *cobra.Command {
	var years int
	c := &cobra.Command{
		Use:   "impact <amount>",
		Short: "Project an amount forward at an 8% annual return",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			userAccountID, err := userFlag(c)
			if err != nil {
				return err
			}
			amount, err := decimalArg("amount", args[0])
			if err != nil {
				return err
			}

			result, err := planningApp.LongTermImpact(c.Context(), userAccountID, amount, years)
			if err != nil {
				return err
			}
			printJson(c, result)
			return nil
		},
	}
	c.Flags().IntVar(&years, "years", calculator.DefaultImpactYears, "years to project")
	c.Flags().String("user", "", "user account id")
	return c
}
