package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <mission_id>",
		Short: fmt.Sprintf("Accept a reported quest (+%d XP)", engine.XPClaim),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Accept(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Quest accepted"),
				ui.Muted.Render(res.Mission.Title),
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			printReward(cmd, res.LevelUp, res.LevelAfter, "")
			return nil
		},
	}

	return cmd
}
