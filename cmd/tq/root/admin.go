package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/ui"
)

func newAdminCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Toggle admin mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			on, err := svc.IsAdmin(ctx)
			if err != nil {
				return err
			}

			if show {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Admin mode", onOff(on)))
				return nil
			}

			if err := svc.SetAdmin(ctx, !on); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Admin mode", onOff(!on)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the current flag without toggling")

	return cmd
}

func onOff(v bool) string {
	if v {
		return ui.Warn.Render("ON")
	}
	return ui.Muted.Render("off")
}
