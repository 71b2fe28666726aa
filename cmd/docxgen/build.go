package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docxgen/pkg/blueprint"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <blueprint|glob>...",
		Short: "Build documents from blueprint files",
		Long: `Build one document per blueprint. Arguments may be doublestar globs
such as 'reports/**/*.yaml'. Each document is saved as
<output_dir>/<identity><extension>.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandBlueprints(args)
			if err != nil {
				return err
			}
			built, err := buildAll(paths)
			fmt.Fprintf(cmd.OutOrStdout(), "built %d of %d document(s)\n", built, len(paths))
			return err
		},
	}
}

// expandBlueprints resolves globs, keeping plain paths as given
func expandBlueprints(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no blueprint matches %q", arg)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// buildAll builds every blueprint, continuing past failures
func buildAll(paths []string) (int, error) {
	if err := os.MkdirAll(docxgen.GetGlobalConfig().OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		built int
		errs  []error
	)
	for _, path := range paths {
		if err := buildOne(path); err != nil {
			docxgen.GetLogger().Error("build failed", "blueprint", path, "err", err)
			errs = append(errs, err)
			continue
		}
		built++
	}
	return built, errors.Join(errs...)
}

func buildOne(path string) error {
	bp, err := blueprint.Load(path)
	if err != nil {
		return err
	}
	doc, err := bp.Document()
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc.Save()
}
