package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newsarchive-kr/newsarchive/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagSource string
	flagSort   string
)

var rootCmd = &cobra.Command{
	Use:   "newsarchive",
	Short: "TUI viewer for a Korean news archive",
	Long:  "newsarchive browses a published news archive in the terminal: search, category filters, sorting and AI summaries.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "archive URL or file path (overrides config)")
	rootCmd.Flags().StringVar(&flagSort, "sort", "", "initial sort: latest, oldest, title, category")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsarchive %s (commit: %s, built: %s)\n", version, commit, date)
		if res := update.Check(cmd.Context(), version); res != nil {
			fmt.Printf("Update available: v%s\n", res.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
