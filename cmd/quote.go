package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/service"
)

var (
	quoteCycle  string
	quoteOutput string
)

var quoteCmd = &cobra.Command{
	Use:   "quote [plan]",
	Short: "Print plan prices for a billing cycle",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cycle, err := entity.ParseBillingCycle(quoteCycle)
		if err != nil {
			return err
		}

		app, cleanup := mustCreateApplication(nil)
		defer cleanup()

		ctx := context.Background()
		var quotes []service.PlanQuote
		if len(args) == 1 {
			quote, err := app.pricingService.Quote(ctx, args[0], cycle)
			if err != nil {
				return err
			}
			quotes = []service.PlanQuote{quote}
		} else {
			quotes, err = app.pricingService.ListQuotes(ctx, cycle)
			if err != nil {
				return err
			}
		}

		return writeQuotes(cmd.OutOrStdout(), quoteOutput, quoteRows(quotes))
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteCycle, "cycle", string(entity.BillingCycleMonthly), "Billing cycle: monthly or annual")
	quoteCmd.Flags().StringVarP(&quoteOutput, "output", "o", outputTable, "Output format: table, json or yaml")
}
