package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/ui"
)

func newCheerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheer <mission_id>",
		Short: "Cheer a quest (once per quest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Cheer(ctx, args[0])
			if err != nil {
				return err
			}

			if !res.Cheered {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already cheered this quest."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Good.Render(ui.IconCheer+" Cheered!"),
				ui.Muted.Render(fmt.Sprintf("%d cheers", res.Upvotes)))
			if res.BonusFired {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconBolt+" Quest reached 5 cheers — reporter earns a bonus!"))
			}
			return nil
		},
	}

	return cmd
}
