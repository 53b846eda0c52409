package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile management commands",
	}

	cmd.AddCommand(newProfileCreateCmd())
	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileUseCmd())
	cmd.AddCommand(newProfileHandicapCmd())

	return cmd
}

func newProfileCreateCmd() *cobra.Command {
	var handicapIndex float64

	cmd := &cobra.Command{
		Use:   "create <display-name>",
		Short: "Register a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"display_name": args[0]}
			if cmd.Flags().Changed("handicap-index") {
				req["handicap_index"] = handicapIndex
			}

			var result Profile

			if err := client.Post("/api/v1/profiles", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&handicapIndex, "handicap-index", 0, "Established handicap index")

	return cmd
}

func newProfileGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get profile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Get(fmt.Sprintf("/api/v1/profiles/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Profile

			if err := client.Get("/api/v1/profiles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Set the active profile for subsequent commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.SaveProfile(args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Active profile set to %s", args[0]))
			return nil
		},
	}
}

func newProfileHandicapCmd() *cobra.Command {
	var handicapIndex float64

	cmd := &cobra.Command{
		Use:   "handicap <id>",
		Short: "Update a profile's handicap index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"handicap_index": handicapIndex}

			var result Profile

			if err := client.Patch(fmt.Sprintf("/api/v1/profiles/%s/handicap", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&handicapIndex, "index", 0, "New handicap index")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}
