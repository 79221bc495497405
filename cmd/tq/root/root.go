package root

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"trashquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "tq",
	Short:         "TrashQuest — local-first litter cleanup quest tracker",
	Long:          "TrashQuest is a local-first CLI/TUI for reporting litter spots, cleaning them up and earning XP, levels, badges and streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// Optional .env (TQ_DB, TQ_LAT, TQ_LNG). Missing file is fine.
	_ = godotenv.Load()

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newReportCmd(),
		newAcceptCmd(),
		newCompleteCmd(),
		newCheerCmd(),
		newListCmd(),
		newStatusCmd(),
		newLeaderboardCmd(),
		newSeedCmd(),
		newAdminCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
