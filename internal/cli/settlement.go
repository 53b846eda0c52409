package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettlementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Settlement lifecycle commands",
	}

	cmd.AddCommand(newSettlementPayCmd())
	cmd.AddCommand(newSettlementForgiveCmd())
	cmd.AddCommand(newSettlementPendingCmd())

	return cmd
}

func newSettlementPayCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "pay <settlement-id>",
		Short: "Mark a settlement as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"method": method}

			var result Settlement

			if err := client.Post(fmt.Sprintf("/api/v1/settlements/%s/pay", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "cash", "Payment method: cash, venmo, zelle, other")

	return cmd
}

func newSettlementForgiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgive <settlement-id>",
		Short: "Forgive a pending settlement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Settlement

			if err := client.Post(fmt.Sprintf("/api/v1/settlements/%s/forgive", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSettlementPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List the active profile's pending settlements",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PendingSettlements

			if err := client.Get("/api/v1/settlements/pending", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
