package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "caddie",
		Short: "CLI tool for the caddiebook API",
		Long: `caddie is a CLI tool for the caddiebook wagering API.

It covers profiles, events, scoring, game configuration, payout
breakdowns, settlement collection, and the wallet ledger.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load active profile from file if not provided via flag/env
			if err := cfg.LoadProfile(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.ProfileID)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CADDIEBOOK_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProfileID, "profile", cfg.ProfileID, "Calling profile id (env: CADDIEBOOK_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.ProfileFile, "profile-file", cfg.ProfileFile, "Profile file path (env: CADDIEBOOK_PROFILE_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newSettlementCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
