package cli

import (
	"github.com/spf13/cobra"
)

func newWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Show the active profile's wallet ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []WalletTransaction

			if err := client.Get("/api/v1/wallet", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
