package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank yourself against the rival roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.Leaderboard(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, "Leaderboard"))
			for _, e := range entries {
				name := e.Username
				if e.IsLocal {
					name = ui.Gold.Render(name + " (you)")
				}
				style := ui.LevelStyle(engine.LevelColor(e.Level))
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s — %d XP %s\n",
					e.Rank, name, e.XP, style.Render(engine.LevelName(e.Level)))
			}
			return nil
		},
	}

	return cmd
}
