package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "In-game table actions",
	}

	cmd.AddCommand(newTableMoveCmd())
	cmd.AddCommand(newTableLifeCmd())
	cmd.AddCommand(newTableRevealCmd())

	return cmd
}

func newTableMoveCmd() *cobra.Command {
	var (
		cardID      string
		sourceZone  string
		sourceOwner string
		targetZone  string
		targetOwner string
		targetIndex int
	)

	cmd := &cobra.Command{
		Use:   "move <game-id>",
		Short: "Move a card between zones",
		Long: `Move a card from one zone to another: hand, inventory and played belong
to a player (set --from-owner/--to-owner); unused, community and used are
shared. The card lands at --index in the target zone, shifting the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{
				"card_id":      cardID,
				"source_zone":  sourceZone,
				"source_owner": sourceOwner,
				"target_zone":  targetZone,
				"target_owner": targetOwner,
				"target_index": targetIndex,
			}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/move", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cardID, "card", "", "Card id (required)")
	cmd.Flags().StringVar(&sourceZone, "from", "", "Source zone (required)")
	cmd.Flags().StringVar(&sourceOwner, "from-owner", "", "Source zone owner, for player zones")
	cmd.Flags().StringVar(&targetZone, "to", "", "Target zone (required)")
	cmd.Flags().StringVar(&targetOwner, "to-owner", "", "Target zone owner, for player zones")
	cmd.Flags().IntVar(&targetIndex, "index", 0, "Position in the target zone")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTableLifeCmd() *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "life <game-id>",
		Short: "Adjust your life total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]int{"delta": delta}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/life", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "delta", 0, "Life change, e.g. -1 or 2 (required)")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

func newTableRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <game-id>",
		Short: "Reveal your role card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/reveal", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
