package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game session and lobby commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameAuthorizeCmd())
	cmd.AddCommand(newGameKickCmd())
	cmd.AddCommand(newGameStartCmd())

	return cmd
}

func parseGameID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid game id %q", arg)
	}
	return id, nil
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games you are a member of",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's full state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Get(fmt.Sprintf("/api/v1/games/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%d", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <game-id>",
		Short: "Request to join a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/join", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAuthorizeCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "authorize <game-id>",
		Short: "Admit a pending join request (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			req := map[string]int64{"user_id": userID}
			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/authorize", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id to admit (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newGameKickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kick <game-id> <name>",
		Short: "Remove a member before the game starts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/games/%d/members/%s", id, args[1])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Member removed")
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <game-id>",
		Short: "Deal roles, characters and hands (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/start", id), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
