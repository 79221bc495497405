package root

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"trashquest/internal/engine"
	"trashquest/internal/ui"
)

// envLocation reads TQ_LAT/TQ_LNG as the device location. Absent or
// malformed values mean "no location selected".
var envLocation = engine.LocationFunc(func(ctx context.Context) (*engine.Coordinates, error) {
	latStr, lngStr := os.Getenv("TQ_LAT"), os.Getenv("TQ_LNG")
	if latStr == "" || lngStr == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, nil
	}
	return &engine.Coordinates{Lat: lat, Lng: lng}, nil
})

func newReportCmd() *cobra.Command {
	var (
		desc      string
		trashType string
		bags      int
		lat       float64
		lng       float64
		here      bool
		photos    []string
	)

	cmd := &cobra.Command{
		Use:   "report <title>",
		Short: fmt.Sprintf("Drop a new quest (+%d XP, max %d/day)", engine.XPReport, engine.DailyReportLimit),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var loc *engine.Coordinates
			switch {
			case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng"):
				loc = &engine.Coordinates{Lat: lat, Lng: lng}
			case here:
				loc, err = envLocation.CurrentLocation(ctx)
				if err != nil {
					return err
				}
			}

			res, err := svc.Report(ctx, engine.ReportInput{
				Title:        args[0],
				Description:  desc,
				TrashType:    engine.ParseTrashType(trashType),
				EstBags:      bags,
				Location:     loc,
				PhotosBefore: photos,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPin+" Quest dropped"),
				ui.Muted.Render(res.Mission.ID),
				ui.Gold.Render(fmt.Sprintf("+%d XP", res.XPAwarded)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("Reports today: %d/%d", res.ReportsToday, engine.DailyReportLimit)))
			printReward(cmd, res.LevelUp, res.LevelAfter, res.BadgeUnlocked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description (30-500 characters)")
	cmd.Flags().StringVar(&trashType, "type", "bags", "Trash type (bags|construction|illegal_dump|misc)")
	cmd.Flags().IntVarP(&bags, "bags", "b", 1, "Estimated bags (1-100)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the litter spot")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude of the litter spot")
	cmd.Flags().BoolVar(&here, "here", false, "Use the device location (TQ_LAT/TQ_LNG)")
	cmd.Flags().StringArrayVarP(&photos, "photo", "p", nil, "Before photo path (repeatable)")

	return cmd
}

func printReward(cmd *cobra.Command, levelUp bool, levelAfter int, badge engine.Badge) {
	if levelUp {
		style := ui.LevelStyle(engine.LevelColor(levelAfter))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			ui.BadgeLevelUp,
			style.Render(fmt.Sprintf("Level %d — %s", levelAfter, engine.LevelName(levelAfter))))
	}
	if badge != "" {
		info := badge.Info()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			ui.Gold.Render(ui.IconTrophy+" Badge unlocked:"),
			info.Icon+" "+info.Name,
			ui.Muted.Render("("+info.Description+")"))
	}
}
