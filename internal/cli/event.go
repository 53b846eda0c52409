package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Event management commands",
	}

	cmd.AddCommand(newEventCreateCmd())
	cmd.AddCommand(newEventGetCmd())
	cmd.AddCommand(newEventAddGolferCmd())
	cmd.AddCommand(newEventScoreCmd())
	cmd.AddCommand(newEventNassauCmd())
	cmd.AddCommand(newEventSkinsCmd())
	cmd.AddCommand(newEventSideBetCmd("pinky", "pinkies"))
	cmd.AddCommand(newEventSideBetCmd("greenie", "greenies"))
	cmd.AddCommand(newEventCountCmd())
	cmd.AddCommand(newEventCompleteCmd())
	cmd.AddCommand(newEventPayoutsCmd())
	cmd.AddCommand(newEventSettleCmd())
	cmd.AddCommand(newEventSettlementsCmd())

	return cmd
}

func newEventCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": args[0]}

			var result Event

			if err := client.Post("/api/v1/events", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <event-id>",
		Short: "Get event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Event

			if err := client.Get(fmt.Sprintf("/api/v1/events/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventAddGolferCmd() *cobra.Command {
	var profileID, customName string
	var override float64

	cmd := &cobra.Command{
		Use:   "add-golfer <event-id>",
		Short: "Add a golfer to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if profileID != "" {
				req["profile_id"] = profileID
			}
			if customName != "" {
				req["custom_name"] = customName
			}
			if cmd.Flags().Changed("override") {
				req["handicap_override"] = override
			}

			var result Golfer

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/golfers", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Registered profile id")
	cmd.Flags().StringVar(&customName, "name", "", "Ad hoc golfer name")
	cmd.Flags().Float64Var(&override, "override", 0, "Per-event handicap override")

	return cmd
}

func newEventScoreCmd() *cobra.Command {
	var golferID string
	var hole, strokes int

	cmd := &cobra.Command{
		Use:   "score <event-id>",
		Short: "Record a gross score for one hole",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"golfer_id": golferID,
				"hole":      hole,
				"strokes":   strokes,
			}

			if err := client.Put(fmt.Sprintf("/api/v1/events/%s/scores", args[0]), req); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Recorded %d on hole %d for %s", strokes, hole, golferID))
			return nil
		},
	}

	cmd.Flags().StringVar(&golferID, "golfer", "", "Golfer id")
	cmd.Flags().IntVar(&hole, "hole", 0, "Hole number")
	cmd.Flags().IntVar(&strokes, "strokes", 0, "Gross strokes")
	_ = cmd.MarkFlagRequired("golfer")
	_ = cmd.MarkFlagRequired("hole")
	_ = cmd.MarkFlagRequired("strokes")

	return cmd
}

func newEventNassauCmd() *cobra.Command {
	var fee float64
	var net bool
	var golfers []string
	var teams []string
	var bestCount int

	cmd := &cobra.Command{
		Use:   "nassau <event-id>",
		Short: "Attach a Nassau game to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"fee": fee,
				"net": net,
			}
			if len(golfers) > 0 {
				req["golfer_ids"] = golfers
			}
			if len(teams) > 0 {
				// Each --team flag is a comma-separated list of golfer ids
				teamBodies := make([]map[string]any, 0, len(teams))
				for _, t := range teams {
					teamBodies = append(teamBodies, map[string]any{
						"golfer_ids": strings.Split(t, ","),
					})
				}
				req["teams"] = teamBodies
			}
			if bestCount > 0 {
				req["team_best_count"] = bestCount
			}

			var result GameConfig

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/games/nassau", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Nassau %s added (fee %.2f per segment)", result.ID, result.Fee))
			return nil
		},
	}

	cmd.Flags().Float64Var(&fee, "fee", 0, "Fee per segment")
	cmd.Flags().BoolVar(&net, "net", false, "Use handicap-adjusted scores")
	cmd.Flags().StringSliceVar(&golfers, "golfer", nil, "Participating golfer ids (default: all)")
	cmd.Flags().StringArrayVar(&teams, "team", nil, "Team as comma-separated golfer ids (repeatable)")
	cmd.Flags().IntVar(&bestCount, "best", 0, "Member scores counted per hole in team mode")
	_ = cmd.MarkFlagRequired("fee")

	return cmd
}

func newEventSkinsCmd() *cobra.Command {
	var fee float64
	var net, carryovers bool
	var golfers []string

	cmd := &cobra.Command{
		Use:   "skins <event-id>",
		Short: "Attach a skins game to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"fee":        fee,
				"net":        net,
				"carryovers": carryovers,
			}
			if len(golfers) > 0 {
				req["golfer_ids"] = golfers
			}

			var result GameConfig

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/games/skins", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Skins %s added (fee %.2f per hole)", result.ID, result.Fee))
			return nil
		},
	}

	cmd.Flags().Float64Var(&fee, "fee", 0, "Fee per hole per golfer")
	cmd.Flags().BoolVar(&net, "net", false, "Use handicap-adjusted scores")
	cmd.Flags().BoolVar(&carryovers, "carryovers", true, "Carry tied holes to the next hole")
	cmd.Flags().StringSliceVar(&golfers, "golfer", nil, "Participating golfer ids (default: all)")
	_ = cmd.MarkFlagRequired("fee")

	return cmd
}

func newEventSideBetCmd(name, path string) *cobra.Command {
	var fee float64
	var golfers []string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <event-id>", name),
		Short: fmt.Sprintf("Attach a %s game to an event", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"fee": fee}
			if len(golfers) > 0 {
				req["golfer_ids"] = golfers
			}

			var result GameConfig

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/games/%s", args[0], path), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("%s %s added (fee %.2f)", strings.ToUpper(name[:1])+name[1:], result.ID, result.Fee))
			return nil
		},
	}

	cmd.Flags().Float64Var(&fee, "fee", 0, "Fee per declared count")
	cmd.Flags().StringSliceVar(&golfers, "golfer", nil, "Participating golfer ids (default: all)")
	_ = cmd.MarkFlagRequired("fee")

	return cmd
}

func newEventCountCmd() *cobra.Command {
	var golferID string
	var count int

	cmd := &cobra.Command{
		Use:   "count <event-id> <game-id>",
		Short: "Declare a pinky or greenie count for a golfer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"golfer_id": golferID,
				"count":     count,
			}

			if err := client.Put(fmt.Sprintf("/api/v1/events/%s/games/%s/counts", args[0], args[1]), req); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Recorded count %d for %s", count, golferID))
			return nil
		},
	}

	cmd.Flags().StringVar(&golferID, "golfer", "", "Golfer id")
	cmd.Flags().IntVar(&count, "count", 0, "Declared count")
	_ = cmd.MarkFlagRequired("golfer")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func newEventCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <event-id>",
		Short: "Complete an event, freezing scores and configs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Event

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/complete", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventPayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payouts <event-id>",
		Short: "Show the payout breakdown for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PayoutResult

			if err := client.Get(fmt.Sprintf("/api/v1/events/%s/payouts", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventSettleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <event-id>",
		Short: "Derive pairwise settlements for a completed event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Settlement

			if err := client.Post(fmt.Sprintf("/api/v1/events/%s/settle", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newEventSettlementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settlements <event-id>",
		Short: "List settlements derived from an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Settlement

			if err := client.Get(fmt.Sprintf("/api/v1/events/%s/settlements", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
