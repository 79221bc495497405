package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

// envImagePicker falls back to TQ_PHOTO when no --photo flag is given.
// An empty result means the user has nothing to attach.
var envImagePicker = engine.ImageFunc(func(ctx context.Context) (string, error) {
	return os.Getenv("TQ_PHOTO"), nil
})

func newCompleteCmd() *cobra.Command {
	var photos []string

	cmd := &cobra.Command{
		Use:   "complete <mission_id>",
		Short: fmt.Sprintf("Complete a claimed quest with after photos (+%d XP)", engine.XPComplete),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(photos) == 0 {
				if p, err := envImagePicker.PickImage(ctx); err == nil && p != "" {
					photos = append(photos, p)
				}
			}

			res, err := svc.Complete(ctx, args[0], photos)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Quest complete"),
				ui.Muted.Render(res.Mission.Title),
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("Cleanups so far: %d", res.Cleanups)))
			printReward(cmd, res.LevelUp, res.LevelAfter, res.BadgeUnlocked)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&photos, "photo", "p", nil, "After photo path (repeatable)")

	return cmd
}
