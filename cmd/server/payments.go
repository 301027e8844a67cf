package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ahmed-Ehab99/rentiful-realestate/internal/payments"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Payment maintenance tasks",
}

var paymentsRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Realize due payments and flag overdue ones once, then exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		realizer := payments.NewRealizer(store, payments.WithGracePeriod(cfg.PaymentGracePeriod))
		result, err := realizer.Run(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "leases=%d created=%d overdue=%d failed=%d\n",
			result.Leases, result.Created, result.Overdue, result.Failed)
		return err
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsRunCmd)
}
