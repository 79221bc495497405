package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the quest board with sample missions (empty board only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			seeds := engine.DefaultSeedMissions()
			if file != "" {
				seeds, err = engine.LoadSeedFile(file)
				if err != nil {
					return err
				}
			}

			n, err := svc.SeedMissions(ctx, seeds)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Board already has quests; nothing seeded."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d quest(s) seeded\n", ui.Good.Render(ui.IconQuest+" Done:"), n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML fixture file (defaults to the built-in board)")

	return cmd
}
