package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagKeywords        []string
	flagDays            int
	flagLimit           int
	flagAllowNonEnglish bool
	flagConfig          string
	flagEnrich          bool
	flagPublish         bool
)

var rootCmd = &cobra.Command{
	Use:   "bazar-khobor <subject>",
	Short: "Search stock and company news",
	Long: "bazar-khobor searches the GDELT DOC API for recent news articles mentioning a\n" +
		"stock symbol or company name, with optional keyword, recency, and language filters.",
	Args: cobra.ExactArgs(1),
	RunE: runSearch,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&flagKeywords, "keyword", "k", nil, "keyword to include (min 3 chars, repeatable)")
	rootCmd.Flags().IntVarP(&flagDays, "days", "d", 3, "how many days back to search (0 = all available)")
	rootCmd.Flags().IntVarP(&flagLimit, "limit", "l", 25, "max articles to return (1-250)")
	rootCmd.Flags().BoolVar(&flagAllowNonEnglish, "allow-non-english", false, "disable the English-only filter")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagEnrich, "enrich", false, "scrape article pages for better titles and descriptions")
	rootCmd.Flags().BoolVar(&flagPublish, "publish", false, "forward matched articles to configured publishers")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bazar-khobor %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// Execute runs the root command; the process exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
