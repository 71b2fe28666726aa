package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docxgen/internal/watch"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

func newWatchCommand() *cobra.Command {
	var (
		patterns []string
		ignore   []string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Rebuild blueprints whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := "."
			if len(args) == 1 {
				baseDir = args[0]
			}

			logger := docxgen.GetLogger()
			var w *watch.Watcher
			w, err := watch.New(watch.Config{
				BaseDir:  baseDir,
				Patterns: patterns,
				Ignore:   ignore,
				Debounce: debounce,
				Logger:   logger,
				OnChange: func(_ context.Context, changed []string) error {
					_, err := buildAll(absolute(w.BaseDir(), changed))
					return err
				},
			})
			if err != nil {
				return fmt.Errorf("failed to start watcher: %w", err)
			}

			existing, err := w.Scan()
			if err != nil {
				return err
			}
			if _, err := buildAll(absolute(w.BaseDir(), existing)); err != nil {
				logger.Warn("initial build incomplete", "err", err)
			}

			logger.Info("watching for changes", "dir", w.BaseDir())
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().StringSliceVar(&patterns, "pattern", nil, "blueprint globs (default yaml, yml and toml)")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "globs to ignore")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "quiet period before rebuilding")
	return cmd
}

func absolute(base string, rel []string) []string {
	paths := make([]string, len(rel))
	for i, r := range rel {
		paths[i] = filepath.Join(base, filepath.FromSlash(r))
	}
	return paths
}
