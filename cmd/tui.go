package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newsarchive-kr/newsarchive/internal/archive"
	"github.com/newsarchive-kr/newsarchive/internal/config"
	"github.com/newsarchive-kr/newsarchive/internal/loader"
	"github.com/newsarchive-kr/newsarchive/internal/logging"
	"github.com/newsarchive-kr/newsarchive/internal/prefs"
	"github.com/newsarchive-kr/newsarchive/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSource != "" {
		cfg.DataSource = flagSource
	}

	var sort archive.SortKey
	if flagSort != "" {
		if sort, err = archive.ResolveSortKey(flagSort); err != nil {
			return fmt.Errorf("invalid --sort value: %w", err)
		}
	}

	// The TUI owns the terminal; logs go to a file only.
	if err := logging.Init(config.LogDir(), cfg.Level()); err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logging.Close()

	store, err := prefs.Open(config.PrefsPath())
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer store.Close()

	logging.Info("starting viewer", "source", cfg.DataSource, "version", version)

	return tui.Run(tui.RunOpts{
		Cfg:    cfg,
		Store:  store,
		Loader: loader.New(cfg.DataSource, cfg.Timeout()),
		Sort:   sort,
	})
}
