package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/storage"
	"trashquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		status string
		near   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests on the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var missions []storage.Mission
			if status != "" {
				st, ok := engine.ParseStatus(status)
				if !ok {
					return fmt.Errorf("unknown status %q (needs|progress|cleaned)", status)
				}
				missions, err = svc.MissionRepo().ListByStatus(ctx, string(st))
			} else {
				missions, err = svc.MissionRepo().ListAll(ctx)
			}
			if err != nil {
				return err
			}

			var from *engine.Coordinates
			if near != "" {
				from, err = parseCoords(near)
				if err != nil {
					return err
				}
				engine.SortByDistance(missions, *from)
			}

			if len(missions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty board — try `tq seed`)"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest Board"))
			for i := range missions {
				m := &missions[i]
				line := fmt.Sprintf("- %s %s  %s  %s %s",
					ui.TrashIcon(m.TrashType),
					m.Title,
					ui.StatusPill(m.Status),
					ui.IconCheer,
					ui.Muted.Render(strconv.Itoa(m.Upvotes)))
				if from != nil {
					d := engine.DistanceMiles(*from, engine.Coordinates{Lat: m.Lat, Lng: m.Lng})
					line += "  " + ui.Muted.Render(fmt.Sprintf("%.1f mi", d))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.Dim.Render(m.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (needs|progress|cleaned)")
	cmd.Flags().StringVar(&near, "near", "", "Sort nearest-first from \"lat,lng\"")

	return cmd
}

func parseCoords(s string) (*engine.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("coordinates must be \"lat,lng\"")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude: %w", err)
	}
	return &engine.Coordinates{Lat: lat, Lng: lng}, nil
}
