package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your profile, XP, streak and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := svc.CurrentUser(ctx)
			if err != nil {
				return err
			}

			levelStyle := ui.LevelStyle(engine.LevelColor(u.Level))
			nextAt := engine.XPForNextLevel(u.XP)
			bar := ui.XPBar(engine.ProgressWithinLevel(u.XP), 30)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Player", u.Username))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", levelStyle.Render(fmt.Sprintf("%d — %s", u.Level, engine.LevelName(u.Level)))))
			if u.Level >= engine.MaxLevel {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d %s %s", u.XP, bar, ui.Gold.Render("MAX"))))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d %s next at %d", u.XP, bar, nextAt)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, u.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range engine.AllBadges() {
				info := b.Info()
				if engine.HasBadge(u, b) {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", info.Icon, ui.LevelStyle(info.Color).Render(info.Name), ui.Muted.Render(info.Description))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ui.Dim.Render("🔒 "+info.Name+" — "+info.Description))
				}
			}

			admin, err := svc.IsAdmin(ctx)
			if err != nil {
				return err
			}
			if admin {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Admin mode is ON"))
			}
			return nil
		},
	}

	return cmd
}
