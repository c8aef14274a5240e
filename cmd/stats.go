package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
	"github.com/newsarchive-kr/newsarchive/internal/config"
	"github.com/newsarchive-kr/newsarchive/internal/loader"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive statistics",
	Long:  "Fetch the archive once and print post counts per category plus the collection time range.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagSource != "" {
			cfg.DataSource = flagSource
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
		defer cancel()

		posts, err := loader.New(cfg.DataSource, cfg.Timeout()).Load(ctx)
		if err != nil {
			return fmt.Errorf("loading archive: %w", err)
		}

		fmt.Print(archiveStats(posts, cfg.DataSource))
		return nil
	},
}

// archiveStats formats the stats report. Categories are listed in the
// same collation order the viewer's filter tabs use.
func archiveStats(posts []archive.Post, source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s\n", source)
	fmt.Fprintf(&b, "Posts: %d\n", len(posts))
	if len(posts) == 0 {
		return b.String()
	}

	counts := make(map[string]int)
	for _, p := range posts {
		c := p.Category
		if c == "" {
			c = "(none)"
		}
		counts[c]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	collator := archive.NewCollator()
	sort.Slice(names, func(i, j int) bool {
		return collator.CompareString(names[i], names[j]) < 0
	})
	fmt.Fprintln(&b, "Categories:")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %d\n", name, counts[name])
	}

	newest, oldest := posts[0].CollectedAt(), posts[0].CollectedAt()
	for _, p := range posts[1:] {
		t := p.CollectedAt()
		if t.After(newest) {
			newest = t
		}
		if t.Before(oldest) {
			oldest = t
		}
	}
	fmt.Fprintf(&b, "Newest: %s\n", newest.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Oldest: %s\n", oldest.Format("2006-01-02 15:04"))
	return b.String()
}
