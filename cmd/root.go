package cmd

import (
	"github.com/Ahnaf-Jamil-52/idolcode-gemini-3/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "idolcode",
	Short: "Burnout-aware coaching engine for competitive coding practice",
	Long: "Idolcode coach — watches practice signals (wrong-answer bursts, ghost race losses,\n" +
		"late-night grinding), scores burnout risk, and decides when and how to intervene.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COACH_DB env var)")

	rootCmd.AddCommand(signalCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
